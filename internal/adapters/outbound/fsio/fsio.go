// Package fsio implements domain.FileSystem on the local disk.
package fsio

import (
	"os"
	"sort"
)

// DiskFS is the real-filesystem adapter used by generation and
// validation. All writes go through here.
type DiskFS struct{}

func New() *DiskFS { return &DiskFS{} }

// MkdirAll creates a directory tree; an existing tree is not an error.
func (f *DiskFS) MkdirAll(path string) error {
	return os.MkdirAll(path, 0755)
}

func (f *DiskFS) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (f *DiskFS) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *DiskFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ListDir returns sorted entry names; a missing directory returns an
// empty list rather than an error.
func (f *DiskFS) ListDir(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	sort.Strings(names)
	return names, nil
}
