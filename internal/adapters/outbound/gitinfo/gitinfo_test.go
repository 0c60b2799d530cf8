package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamylaa/clodo-framework-sub007/internal/adapters/outbound/gitinfo"
)

func initRepoWithCommit(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0644))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &gogit.CommitOptions{
		Author: &object.Signature{Name: "test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir
}

func TestIsRepo(t *testing.T) {
	adapter := gitinfo.New()

	assert.False(t, adapter.IsRepo(t.TempDir()))
	assert.True(t, adapter.IsRepo(initRepoWithCommit(t)))
}

func TestCommitHash(t *testing.T) {
	dir := initRepoWithCommit(t)

	hash, err := gitinfo.New().CommitHash(dir)
	require.NoError(t, err)
	assert.Len(t, hash, 40)
}

func TestCommitHash_NotARepo(t *testing.T) {
	_, err := gitinfo.New().CommitHash(t.TempDir())
	require.Error(t, err)
}

func TestIsClean(t *testing.T) {
	dir := initRepoWithCommit(t)
	adapter := gitinfo.New()

	clean, err := adapter.IsClean(dir)
	require.NoError(t, err)
	assert.True(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.txt"), []byte("x"), 0644))

	clean, err = adapter.IsClean(dir)
	require.NoError(t, err)
	assert.False(t, clean)
}
