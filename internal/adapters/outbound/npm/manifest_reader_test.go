package npm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/npm"
)

func writePackage(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}

func TestReader_MissingFileReturnsNilNil(t *testing.T) {
	dir := t.TempDir()

	man, err := npm.New().Read(dir)
	require.NoError(t, err)
	assert.Nil(t, man)
}

func TestReader_ParsesManifest(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, `{
  "name": "billing-api",
  "version": "0.1.0",
  "scripts": {"dev": "wrangler dev"},
  "dependencies": {"hono": "^4.6.0"},
  "devDependencies": {"wrangler": "^3.80.0", "vitest": "^2.1.0"}
}`)

	man, err := npm.New().Read(dir)
	require.NoError(t, err)
	require.NotNil(t, man)

	assert.Equal(t, "billing-api", man.Name)
	assert.Equal(t, "0.1.0", man.Version)
	assert.Equal(t, "wrangler dev", man.Scripts["dev"])
	assert.Contains(t, man.Dependencies, "hono")
	assert.Contains(t, man.DevDependencies, "wrangler")
}

func TestReader_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writePackage(t, dir, `{"name": `)

	_, err := npm.New().Read(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "package.json")
}
