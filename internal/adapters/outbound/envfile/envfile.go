// Package envfile reads dotenv-style files via godotenv.
package envfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Reader implements domain.EnvReader.
type Reader struct{}

func New() *Reader { return &Reader{} }

// Read parses one dotenv file. A missing file yields an empty map so
// discovery and diagnosis can treat absence as "no contribution".
func (r *Reader) Read(path string) (map[string]string, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return vars, nil
}
