package filesystem_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/homelink/pkg/filesystem"
)

func TestOS_SymlinkRoundtrip(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	source := filepath.Join(dir, "source")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))

	require.NoError(t, fs.Symlink(source, link))

	dest, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, source, dest)

	// Lstat sees the link, Stat follows it.
	info, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)

	info, err = fs.Stat(link)
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestOS_CanonicalFollowsChains(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	source := filepath.Join(dir, "source")
	hop := filepath.Join(dir, "hop")
	link := filepath.Join(dir, "link")
	require.NoError(t, os.WriteFile(source, []byte("data"), 0644))
	require.NoError(t, os.Symlink(source, hop))
	require.NoError(t, os.Symlink(hop, link))

	resolved, err := fs.Canonical(link)
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(source)
	require.NoError(t, err)
	assert.Equal(t, want, resolved)
}

func TestOS_MkdirAll(t *testing.T) {
	fs := filesystem.NewOS()
	dir := t.TempDir()

	nested := filepath.Join(dir, "a", "b", "c")
	require.NoError(t, fs.MkdirAll(nested, 0755))

	info, err := os.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
