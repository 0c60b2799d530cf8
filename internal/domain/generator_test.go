package domain_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/domain"
)

// fakeGen is a minimal generator for registry ordering tests.
type fakeGen struct {
	name     string
	requires []string
}

func (g *fakeGen) Name() string                       { return g.name }
func (g *fakeGen) Category() domain.GeneratorCategory { return domain.CategoryCore }
func (g *fakeGen) Requires() []string                 { return g.requires }
func (g *fakeGen) Generate(*domain.GenContext) error  { return nil }

// memFS is an in-memory domain.FileSystem for emitter tests.
type memFS struct {
	files map[string][]byte
	fail  bool
}

func newMemFS() *memFS { return &memFS{files: make(map[string][]byte)} }

func (f *memFS) MkdirAll(string) error { return nil }

func (f *memFS) WriteFile(path string, data []byte) error {
	if f.fail {
		return errors.New("disk full")
	}
	f.files[path] = data
	return nil
}

func (f *memFS) ReadFile(path string) ([]byte, error) {
	data, ok := f.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *memFS) Exists(path string) bool {
	_, ok := f.files[path]
	return ok
}

func (f *memFS) ListDir(string) ([]string, error) { return nil, nil }

func TestRegistry_RegistrationOrderPreservedWithoutDeps(t *testing.T) {
	r := domain.NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, r.Register(&fakeGen{name: name}))
	}

	ordered, err := r.Ordered()
	require.NoError(t, err)

	names := make([]string, len(ordered))
	for i, g := range ordered {
		names[i] = g.Name()
	}
	assert.Equal(t, []string{"c", "a", "b"}, names, "ties break on registration order")
}

func TestRegistry_RequiresRunFirst(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Register(&fakeGen{name: "readme", requires: []string{"entry"}}))
	require.NoError(t, r.Register(&fakeGen{name: "entry", requires: []string{"config"}}))
	require.NoError(t, r.Register(&fakeGen{name: "config"}))

	ordered, err := r.Ordered()
	require.NoError(t, err)

	pos := make(map[string]int)
	for i, g := range ordered {
		pos[g.Name()] = i
	}
	assert.Less(t, pos["config"], pos["entry"])
	assert.Less(t, pos["entry"], pos["readme"])
}

func TestRegistry_DuplicateNameRejected(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Register(&fakeGen{name: "dup"}))

	err := r.Register(&fakeGen{name: "dup"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "registered twice")
}

func TestRegistry_UnknownRequirement(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Register(&fakeGen{name: "a", requires: []string{"ghost"}}))

	_, err := r.Ordered()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRegistry_CycleDetected(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Register(&fakeGen{name: "a", requires: []string{"b"}}))
	require.NoError(t, r.Register(&fakeGen{name: "b", requires: []string{"a"}}))

	_, err := r.Ordered()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestRegistry_Lookup(t *testing.T) {
	r := domain.NewRegistry()
	require.NoError(t, r.Register(&fakeGen{name: "only"}))

	g, ok := r.Lookup("only")
	assert.True(t, ok)
	assert.Equal(t, "only", g.Name())

	_, ok = r.Lookup("missing")
	assert.False(t, ok)
}

func TestEmitter_WritesAndRecords(t *testing.T) {
	fs := newMemFS()
	e := &domain.Emitter{FS: fs, Root: "/proj", Overwrite: false}

	require.NoError(t, e.Emit("src/index.js", "export default app\n"))

	assert.Equal(t, []string{"src/index.js"}, e.Written)
	assert.Empty(t, e.Skipped)
	assert.True(t, fs.Exists(filepath.Join("/proj", "src/index.js")))
}

func TestEmitter_SkipsExistingWithoutOverwrite(t *testing.T) {
	fs := newMemFS()
	existing := filepath.Join("/proj", "wrangler.toml")
	require.NoError(t, fs.WriteFile(existing, []byte("keep me")))

	e := &domain.Emitter{FS: fs, Root: "/proj", Overwrite: false}
	require.NoError(t, e.Emit("wrangler.toml", "new content"))

	assert.Empty(t, e.Written)
	assert.Equal(t, []string{"wrangler.toml"}, e.Skipped)
	data, err := fs.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data), "existing content survives without overwrite")
}

func TestEmitter_OverwriteReplacesExisting(t *testing.T) {
	fs := newMemFS()
	existing := filepath.Join("/proj", "wrangler.toml")
	require.NoError(t, fs.WriteFile(existing, []byte("old")))

	e := &domain.Emitter{FS: fs, Root: "/proj", Overwrite: true}
	require.NoError(t, e.Emit("wrangler.toml", "new"))

	assert.Equal(t, []string{"wrangler.toml"}, e.Written)
	data, err := fs.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestEmitter_WriteFailurePropagates(t *testing.T) {
	fs := newMemFS()
	fs.fail = true
	e := &domain.Emitter{FS: fs, Root: "/proj"}

	err := e.Emit("file.txt", "content")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file.txt")
	assert.Empty(t, e.Written)
}

func TestGenContext_Value(t *testing.T) {
	values := domain.Derive(validInputs())
	ctx := &domain.GenContext{Values: values}

	assert.Equal(t, "/health", ctx.Value("health-endpoint"))
	assert.Equal(t, "", ctx.Value("unknown"))
}
