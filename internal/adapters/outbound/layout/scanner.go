// Package layout implements domain.LayoutScanner by walking the
// project directory tree.
package layout

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	"dist":         true,
	"vendor":       true,
	".wrangler":    true,
}

// Scanner walks a project tree for discovery's layout analysis.
type Scanner struct{}

func New() *Scanner { return &Scanner{} }

func (s *Scanner) Scan(projectPath string) (*domain.LayoutScan, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, err
	}

	result := &domain.LayoutScan{RootPath: absPath}

	err = filepath.WalkDir(absPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, _ := filepath.Rel(absPath, path)
		relPath = filepath.ToSlash(relPath)
		if relPath == "." {
			return nil
		}

		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			result.Dirs = append(result.Dirs, relPath)
			if d.Name() == "test" || d.Name() == "tests" || d.Name() == "__tests__" {
				result.HasTests = true
			}
			return nil
		}

		result.Files = append(result.Files, relPath)

		switch {
		case relPath == "src/index.js" || relPath == "src/index.ts":
			result.HasSrcEntry = true
		case strings.HasPrefix(relPath, ".github/workflows/"):
			result.HasCI = true
		case d.Name() == ".env" || strings.HasPrefix(d.Name(), ".env.") || d.Name() == ".dev.vars":
			result.EnvFiles = append(result.EnvFiles, relPath)
		}

		return nil
	})

	return result, err
}
