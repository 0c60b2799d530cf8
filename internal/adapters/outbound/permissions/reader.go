// Package permissions reads the cached credential permission set that
// platform tooling drops alongside a project. Live verification
// against the platform is an external collaborator; this reader is
// the best-effort local stand-in and never blocks generation.
package permissions

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

const cachePath = ".clodo/permissions.json"

// Reader implements domain.PermissionReader.
type Reader struct{}

func New() *Reader { return &Reader{} }

type permissionFile struct {
	Permissions []string `json:"permissions"`
}

// Permissions returns the cached permission strings, or (nil, nil)
// when no cache exists or it cannot be parsed. Degradation, never
// failure: discovery treats a nil set as "no contribution".
func (r *Reader) Permissions(projectPath string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, cachePath))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, nil
	}

	var pf permissionFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, nil
	}
	return pf.Permissions, nil
}
