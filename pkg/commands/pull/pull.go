// Package pull fetches and integrates remote changes. It refuses to
// run on a dirty worktree so local edits are never silently merged
// over.
package pull

import (
	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/git"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/paths"
)

// Options defines the options for the Pull command.
type Options struct {
	RepoRoot string
	DryRun   bool
}

// Pull fetches and pulls the repository, then updates submodules.
func Pull(opts Options) error {
	logger := logging.GetLogger("commands.pull")

	p, err := paths.New(opts.RepoRoot)
	if err != nil {
		return err
	}

	runner := git.New(p.RepoRoot(), opts.DryRun)

	clean, err := runner.IsClean()
	if err != nil {
		return err
	}
	if !clean {
		return errors.New(errors.ErrDirtyWorktree,
			"uncommitted changes detected, run 'homelink push' first")
	}

	if err := runner.Fetch(); err != nil {
		return err
	}
	if err := runner.Pull(); err != nil {
		return err
	}
	if err := runner.SubmoduleUpdate(); err != nil {
		return err
	}

	logger.Info().Msg("Repository is up to date")
	return nil
}
