package envfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/envfile"
)

func TestReader_MissingFileYieldsEmptyMap(t *testing.T) {
	vars, err := envfile.New().Read(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)
	assert.Empty(t, vars)
	assert.NotNil(t, vars)
}

func TestReader_ParsesDotenv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env.example")
	require.NoError(t, os.WriteFile(path, []byte(`
# platform credentials
AUTH_SECRET=changeme
LOG_LEVEL=warn
API_BASE_PATH=/api/v1
`), 0644))

	vars, err := envfile.New().Read(path)
	require.NoError(t, err)

	assert.Equal(t, "changeme", vars["AUTH_SECRET"])
	assert.Equal(t, "warn", vars["LOG_LEVEL"])
	assert.Equal(t, "/api/v1", vars["API_BASE_PATH"])
	assert.NotContains(t, vars, "# platform credentials")
}
