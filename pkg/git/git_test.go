package git_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/git"
)

// initRepo creates a fresh git repository, skipping the test when git
// is unavailable.
func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	cmd := exec.Command("git", "init", "--quiet")
	cmd.Dir = dir
	require.NoError(t, cmd.Run())
	return dir
}

func TestIsClean(t *testing.T) {
	dir := initRepo(t)
	runner := git.New(dir, false)

	clean, err := runner.IsClean()
	require.NoError(t, err)
	assert.True(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0644))

	clean, err = runner.IsClean()
	require.NoError(t, err)
	assert.False(t, clean)
}

func TestShortStatus(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new-file"), []byte("x"), 0644))

	status, err := git.New(dir, false).ShortStatus()
	require.NoError(t, err)
	assert.Contains(t, status, "new-file")
}

func TestDryRunSkipsMutations(t *testing.T) {
	dir := initRepo(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "file"), []byte("x"), 0644))
	runner := git.New(dir, true)

	// Under dry-run AddAll is a no-op, so the file stays untracked.
	require.NoError(t, runner.AddAll())

	status, err := runner.ShortStatus()
	require.NoError(t, err)
	assert.Contains(t, status, "??")
}

func TestCommandFailureIsWrapped(t *testing.T) {
	dir := t.TempDir() // not a repository
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	_, err := git.New(dir, false).ShortStatus()
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
}
