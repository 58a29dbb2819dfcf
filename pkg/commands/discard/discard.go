// Package discard throws away all local changes and untracked files.
package discard

import (
	"github.com/arthur-debert/homelink/pkg/git"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/paths"
)

// Options defines the options for the Discard command.
type Options struct {
	RepoRoot string
	DryRun   bool
}

// Result reports what discard did.
type Result struct {
	// Discarded is false when the worktree was already clean.
	Discarded bool

	// Status is the short worktree status before discarding, for
	// display.
	Status string
}

// Discard resets tracked files to HEAD and removes untracked files.
// A clean worktree is a no-op.
func Discard(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.discard")

	p, err := paths.New(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	runner := git.New(p.RepoRoot(), opts.DryRun)

	clean, err := runner.IsClean()
	if err != nil {
		return nil, err
	}
	if clean {
		logger.Info().Msg("No changes to discard")
		return &Result{Discarded: false}, nil
	}

	status, err := runner.ShortStatus()
	if err != nil {
		return nil, err
	}

	if err := runner.ResetHard(); err != nil {
		return nil, err
	}
	if err := runner.CleanUntracked(); err != nil {
		return nil, err
	}

	logger.Info().Msg("Local changes discarded")
	return &Result{Discarded: true, Status: status}, nil
}
