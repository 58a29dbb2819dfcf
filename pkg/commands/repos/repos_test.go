package repos_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/homelink/pkg/commands/repos"
	"github.com/arthur-debert/homelink/pkg/errors"
)

// fakeRepo creates a directory with a .git marker.
func fakeRepo(t *testing.T, root string, rel string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(root, rel, ".git"), 0755))
}

func TestList_FindsRepositories(t *testing.T) {
	root := t.TempDir()
	fakeRepo(t, root, "projects/alpha")
	fakeRepo(t, root, "projects/beta")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "projects", "not-a-repo"), 0755))

	found, err := repos.List(repos.Options{Dir: root})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join("projects", "alpha"),
		filepath.Join("projects", "beta"),
	}, found)
}

func TestList_PrunesNestedRepositories(t *testing.T) {
	root := t.TempDir()
	fakeRepo(t, root, "outer")
	fakeRepo(t, root, "outer/vendor/inner")

	found, err := repos.List(repos.Options{Dir: root})
	require.NoError(t, err)

	// Descent stops at the outer repository root.
	assert.Equal(t, []string{"outer"}, found)
}

func TestList_Absolute(t *testing.T) {
	root := t.TempDir()
	fakeRepo(t, root, "alpha")

	found, err := repos.List(repos.Options{Dir: root, Absolute: true})
	require.NoError(t, err)

	require.Len(t, found, 1)
	assert.True(t, filepath.IsAbs(found[0]))
}

func TestList_NotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain")
	require.NoError(t, os.WriteFile(file, nil, 0644))

	_, err := repos.List(repos.Options{Dir: file})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
