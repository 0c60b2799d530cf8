package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

func TestPathChecksum_OrderInsensitive(t *testing.T) {
	a := domain.PathChecksum([]string{"wrangler.toml", "package.json", "src/index.js"})
	b := domain.PathChecksum([]string{"src/index.js", "wrangler.toml", "package.json"})
	assert.Equal(t, a, b)
}

func TestPathChecksum_Deduplicates(t *testing.T) {
	a := domain.PathChecksum([]string{"package.json", "package.json"})
	b := domain.PathChecksum([]string{"package.json"})
	assert.Equal(t, a, b, "a path skipped on rerun must not change the checksum")
}

func TestPathChecksum_SensitiveToSet(t *testing.T) {
	a := domain.PathChecksum([]string{"package.json"})
	b := domain.PathChecksum([]string{"package.json", "README.md"})
	assert.NotEqual(t, a, b)
}

func TestOrderedDerivedValues_DeclarationOrder(t *testing.T) {
	values := domain.Derive(validInputs())

	flat := domain.OrderedDerivedValues(values)
	require.Len(t, flat, len(domain.DerivedIDs))
	for i, id := range domain.DerivedIDs {
		assert.Equal(t, id, flat[i].ID)
	}
}

func TestDerivedValueMap_RoundTrip(t *testing.T) {
	values := domain.Derive(validInputs())

	rebuilt := domain.DerivedValueMap(domain.OrderedDerivedValues(values))
	assert.Equal(t, values, rebuilt)
}

func TestManifestAllFiles_FlattensSorted(t *testing.T) {
	m := &domain.ServiceManifest{
		Files: map[string][]string{
			"core":    {"wrangler.toml", "package.json"},
			"service": {"src/index.js"},
		},
	}

	assert.Equal(t, []string{"package.json", "src/index.js", "wrangler.toml"}, m.AllFiles())
}
