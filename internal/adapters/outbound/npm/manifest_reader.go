// Package npm parses the package.json dependency manifest.
package npm

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

const fileName = "package.json"

// Reader implements domain.DependencyReader.
type Reader struct{}

func New() *Reader { return &Reader{} }

type packageFile struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Read parses projectPath/package.json. A missing manifest returns
// (nil, nil); a malformed one returns a wrapped parse error.
func (r *Reader) Read(projectPath string) (*domain.DependencyManifest, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	var pf packageFile
	if err := json.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fileName, err)
	}

	return &domain.DependencyManifest{
		Name:            pf.Name,
		Version:         pf.Version,
		Scripts:         pf.Scripts,
		Dependencies:    pf.Dependencies,
		DevDependencies: pf.DevDependencies,
	}, nil
}
