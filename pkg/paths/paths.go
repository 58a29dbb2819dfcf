// Package paths centralizes path handling for homelink: repository
// root discovery, home-directory expansion, and the locations of the
// manifest and machine configuration documents.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/homelink/pkg/errors"
)

// Environment variable names.
const (
	// EnvRepoRoot overrides repository root discovery.
	EnvRepoRoot = "HOMELINK_ROOT"
)

// Well-known file names inside the repository root.
const (
	// ManifestFile declares the desired symlink entries.
	ManifestFile = "home.toml"

	// MachineConfigFile declares the machine's active labels.
	MachineConfigFile = "config.toml"
)

// Paths resolves homelink's well-known locations against a repository
// root.
type Paths struct {
	repoRoot     string
	usedFallback bool
}

// New creates a Paths instance. When root is empty, the repository
// root is discovered from HOMELINK_ROOT, then the enclosing git
// worktree, then the current directory as a last resort.
func New(root string) (*Paths, error) {
	usedFallback := false

	if root == "" {
		root = os.Getenv(EnvRepoRoot)
	}

	if root == "" {
		if top, err := gitToplevel("."); err == nil {
			root = top
		}
	}

	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
		}
		root = cwd
		usedFallback = true
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid repository root %q", root)
	}

	return &Paths{repoRoot: abs, usedFallback: usedFallback}, nil
}

// RepoRoot returns the absolute repository root.
func (p *Paths) RepoRoot() string {
	return p.repoRoot
}

// UsedFallback reports whether discovery fell back to the current
// directory.
func (p *Paths) UsedFallback() bool {
	return p.usedFallback
}

// ManifestPath returns the location of home.toml.
func (p *Paths) ManifestPath() string {
	return filepath.Join(p.repoRoot, ManifestFile)
}

// MachineConfigPath returns the location of config.toml.
func (p *Paths) MachineConfigPath() string {
	return filepath.Join(p.repoRoot, MachineConfigFile)
}

// SourcePath joins a repository-relative source with the root.
func (p *Paths) SourcePath(rel string) string {
	return filepath.Join(p.repoRoot, rel)
}

// ExpandHome expands a leading ~ or ~/ in path to the user's home
// directory. Paths without the shorthand are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to determine home directory")
	}

	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}

// gitToplevel asks git for the enclosing worktree root.
func gitToplevel(dir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--show-toplevel")
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	top := strings.TrimSpace(string(out))
	if top == "" {
		return "", errors.New(errors.ErrNotFound, "not inside a git worktree")
	}
	return top, nil
}
