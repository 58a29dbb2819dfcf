// Package repos discovers git repositories under a directory. Descent
// stops at each repository root, so nested worktrees and vendored
// checkouts inside a repository are not listed separately.
package repos

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
)

// Options defines the options for the List command.
type Options struct {
	// Dir is the root directory to search. Defaults to the current
	// directory.
	Dir string

	// Absolute selects absolute paths over Dir-relative ones.
	Absolute bool
}

// List walks Dir and returns the repositories found, sorted.
func List(opts Options) ([]string, error) {
	logger := logging.GetLogger("commands.repos")

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid directory %q", dir)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound, "not a directory: %s", dir)
	}

	var found []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees are skipped, not fatal.
			logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable path")
			return fs.SkipDir
		}
		if !d.IsDir() {
			return nil
		}
		if _, err := os.Stat(filepath.Join(path, ".git")); err == nil {
			found = append(found, path)
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to walk %s", dir)
	}

	if !opts.Absolute {
		for i, path := range found {
			if rel, err := filepath.Rel(root, path); err == nil {
				found[i] = rel
			}
		}
	}
	sort.Strings(found)

	logger.Debug().Int("repositories", len(found)).Str("root", root).Msg("Walk finished")
	return found, nil
}
