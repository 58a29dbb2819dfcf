// Package git is a thin wrapper over the git binary covering the
// operations the push/pull/discard/update commands need. homelink
// delegates all versioning to git rather than reimplementing any of
// it.
package git

import (
	"bytes"
	"os"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
)

// Runner executes git commands in a fixed working directory.
type Runner struct {
	dir    string
	dryRun bool
	logger zerolog.Logger
}

// New creates a Runner operating in dir. Under dry-run, mutating
// commands are logged but not executed; queries still run.
func New(dir string, dryRun bool) *Runner {
	return &Runner{
		dir:    dir,
		dryRun: dryRun,
		logger: logging.GetLogger("git"),
	}
}

// IsClean reports whether the worktree has no uncommitted changes or
// untracked files.
func (r *Runner) IsClean() (bool, error) {
	out, err := r.output("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// ShortStatus returns `git status --short` output.
func (r *Runner) ShortStatus() (string, error) {
	return r.output("status", "--short")
}

// AddAll stages every change.
func (r *Runner) AddAll() error {
	return r.run("add", "-A")
}

// Commit records the staged changes with the given message.
func (r *Runner) Commit(message string) error {
	return r.run("commit", "-m", message)
}

// Push publishes committed changes to the remote.
func (r *Runner) Push() error {
	return r.run("push")
}

// Fetch downloads remote refs.
func (r *Runner) Fetch() error {
	return r.run("fetch")
}

// Pull integrates remote changes into the worktree.
func (r *Runner) Pull() error {
	return r.run("pull")
}

// SubmoduleUpdate initializes and updates submodules recursively.
func (r *Runner) SubmoduleUpdate() error {
	return r.run("submodule", "update", "--init", "--recursive")
}

// ResetHard discards tracked changes back to HEAD.
func (r *Runner) ResetHard() error {
	return r.run("reset", "--hard")
}

// CleanUntracked removes untracked files and directories.
func (r *Runner) CleanUntracked() error {
	return r.run("clean", "-fd")
}

// run executes a mutating git command, honoring dry-run.
func (r *Runner) run(args ...string) error {
	r.logger.Debug().Strs("args", args).Str("dir", r.dir).Msg("Running git")

	if r.dryRun {
		r.logger.Info().Strs("args", args).Msg("Dry run, git command not executed")
		return nil
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, errors.ErrGitCommand, "git %s failed", strings.Join(args, " "))
	}
	return nil
}

// output executes a querying git command and returns its stdout.
// Queries run even under dry-run.
func (r *Runner) output(args ...string) (string, error) {
	r.logger.Debug().Strs("args", args).Str("dir", r.dir).Msg("Querying git")

	cmd := exec.Command("git", args...)
	cmd.Dir = r.dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrGitCommand,
			"git %s failed: %s", strings.Join(args, " "), strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}
