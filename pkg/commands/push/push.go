// Package push stages, commits, and pushes every change in the
// repository.
package push

import (
	"os"

	"github.com/arthur-debert/homelink/pkg/git"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/paths"
)

// EnvCommitMessage overrides the commit message.
const EnvCommitMessage = "HOMELINK_COMMIT_MSG"

// DefaultCommitMessage is used when no message is supplied.
const DefaultCommitMessage = "Update configuration"

// Options defines the options for the Push command.
type Options struct {
	RepoRoot string
	DryRun   bool
	// Message overrides the commit message. Falls back to the
	// HOMELINK_COMMIT_MSG environment variable, then the default.
	Message string
}

// Result reports what push did.
type Result struct {
	// Pushed is false when the worktree was already clean.
	Pushed  bool
	Message string
}

// Push commits and publishes all local changes. A clean worktree is a
// no-op.
func Push(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.push")

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
		logger.Info().Msg("No changes to commit")
		return &Result{Pushed: false}, nil
	}

	message := opts.Message
	if message == "" {
		message = os.Getenv(EnvCommitMessage)
	}
	if message == "" {
		message = DefaultCommitMessage
	}

	if err := runner.AddAll(); err != nil {
		return nil, err
	}
	if err := runner.Commit(message); err != nil {
		return nil, err
	}
	if err := runner.Push(); err != nil {
		return nil, err
	}

	logger.Info().Str("message", message).Msg("Changes pushed")
	return &Result{Pushed: true, Message: message}, nil
}
