// Package manifeststore persists the Service Manifest as YAML under
// the project's .clodo directory.
package manifeststore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// Store is the file-based implementation of domain.ManifestStore.
type Store struct{}

func New() *Store { return &Store{} }

// Load reads a project's manifest. Returns (nil, nil) if none exists:
// hand-built projects that were never generated are first-class.
func (s *Store) Load(projectPath string) (*domain.ServiceManifest, error) {
	data, err := os.ReadFile(s.Path(projectPath))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var m domain.ServiceManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}

// Save writes the manifest, creating the .clodo directory as needed.
// The manifest always overwrites: it records the latest run.
func (s *Store) Save(projectPath string, m *domain.ServiceManifest) error {
	if err := os.MkdirAll(filepath.Dir(s.Path(projectPath)), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	return os.WriteFile(s.Path(projectPath), data, 0644)
}

// Path returns the manifest location for a project root.
func (s *Store) Path(projectPath string) string {
	return filepath.Join(projectPath, ".clodo", "manifest.yaml")
}
