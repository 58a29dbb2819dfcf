// Package testutil builds scratch homelink repositories for tests.
// Fixtures live on the real filesystem (t.TempDir) because symlink
// semantics are exactly what the engine under test exercises.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// Env is a scratch repository root plus a scratch "home" area for
// link targets.
type Env struct {
	t *testing.T

	// Root is the repository root (holds home.toml, config.toml, and
	// source files).
	Root string

	// Home is a directory standing in for the user's home; tests
	// declare absolute targets under it.
	Home string
}

// NewEnv creates an isolated environment under t.TempDir.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	base := t.TempDir()

	root := filepath.Join(base, "repo")
	home := filepath.Join(base, "home")
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.MkdirAll(home, 0755))

	return &Env{t: t, Root: root, Home: home}
}

// WriteManifest writes home.toml at the repository root.
func (e *Env) WriteManifest(content string) {
	e.t.Helper()
	require.NoError(e.t, os.WriteFile(filepath.Join(e.Root, "home.toml"), []byte(content), 0644))
}

// WriteMachineConfig writes config.toml at the repository root.
func (e *Env) WriteMachineConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.WriteFile(filepath.Join(e.Root, "config.toml"), []byte(content), 0644))
}

// WriteSource writes a file under the repository root, creating parent
// directories, and returns its absolute path.
func (e *Env) WriteSource(rel, content string) string {
	e.t.Helper()
	path := filepath.Join(e.Root, rel)
	require.NoError(e.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(e.t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Target returns an absolute path under the scratch home.
func (e *Env) Target(name string) string {
	return filepath.Join(e.Home, name)
}

// Symlink creates a symlink, failing the test on error.
func (e *Env) Symlink(oldname, newname string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(filepath.Dir(newname), 0755))
	require.NoError(e.t, os.Symlink(oldname, newname))
}

// IsSymlinkTo asserts that path is a symlink resolving to dest.
func (e *Env) IsSymlinkTo(path, dest string) bool {
	e.t.Helper()
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return false
	}
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return false
	}
	want, err := filepath.EvalSymlinks(dest)
	if err != nil {
		return false
	}
	return resolved == want
}
