// Package reconciler applies the per-operation symlink state machine
// against the filesystem. Every decision is re-derived from live
// filesystem state on each run; the engine keeps no state of its own
// and is safe to re-run at any time.
//
// Dry-run mode takes exactly the same decision branches as a real run
// and performs no mutation; only the reported status tags differ
// (Created vs CreatedDryRun and so on).
//
// Each decision step issues its own syscall against live state with no
// atomicity across steps. The design assumes at most one homelink
// invocation at a time; concurrent runs may race each other.
package reconciler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/types"
)

// linkState is the outcome of resolving an existing symlink. The
// "treat ambiguous state as already linked" policy is an explicit
// branch on this value, never an accidental error swallow.
type linkState int

const (
	// linkResolved means the link fully resolved to a canonical path.
	linkResolved linkState = iota

	// linkBroken means resolution failed (dangling link, permission
	// error). The reconciler never mutates on a broken resolution.
	linkBroken
)

// Reconciler executes install and removal decisions for operations.
type Reconciler struct {
	fs       types.FS
	repoRoot string
	dryRun   bool
	logger   zerolog.Logger
}

// New creates a Reconciler rooted at the managed repository. repoRoot
// bounds the ownership check: symlinks resolving inside it are
// considered managed by homelink.
func New(fs types.FS, repoRoot string, dryRun bool) *Reconciler {
	// Canonicalize the root once so containment checks compare like
	// with like. A root that cannot be resolved (should not happen for
	// an existing repository) falls back to the cleaned path.
	root, err := fs.Canonical(repoRoot)
	if err != nil {
		root = filepath.Clean(repoRoot)
	}

	return &Reconciler{
		fs:       fs,
		repoRoot: root,
		dryRun:   dryRun,
		logger:   logging.GetLogger("reconciler"),
	}
}

// Reconcile applies the install flow to every active operation and the
// removal flow to every obsolete operation, in the order given.
// Removal no-ops produce no result. The first environment error
// (mkdir/symlink/remove failure) aborts the run with the results
// collected so far.
func (r *Reconciler) Reconcile(active, obsolete []types.Operation) ([]types.Result, error) {
	results := make([]types.Result, 0, len(active)+len(obsolete))

	for _, op := range active {
		result, err := r.Install(op)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	for _, op := range obsolete {
		result, err := r.Remove(op)
		if err != nil {
			return results, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}

	return results, nil
}

// Install applies the install flow to one active operation.
func (r *Reconciler) Install(op types.Operation) (types.Result, error) {
	logger := r.logger.With().Str("group", op.Group()).Str("target", op.TargetPath).Logger()

	if _, err := r.fs.Stat(op.SourcePath); err != nil {
		logger.Debug().Str("source", op.SourcePath).Msg("Source missing, skipping")
		return types.Result{Operation: op, Status: types.StatusSkippedSourceMissing}, nil
	}

	info, err := r.fs.Lstat(op.TargetPath)
	switch {
	case err == nil && info.Mode()&os.ModeSymlink != 0:
		return r.evaluateExisting(op, logger)

	case err == nil:
		// A real file or directory occupies the target. Never
		// overwrite user data.
		logger.Debug().Msg("Target is not a symlink, skipping")
		return types.Result{Operation: op, Status: types.StatusSkippedForeignFile}, nil

	case os.IsNotExist(err):
		return r.create(op, logger)

	default:
		return types.Result{}, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to inspect target %s", op.TargetPath)
	}
}

// evaluateExisting decides what to do with a symlink already present
// at the target.
func (r *Reconciler) evaluateExisting(op types.Operation, logger zerolog.Logger) (types.Result, error) {
	canonSource, err := r.fs.Canonical(op.SourcePath)
	if err != nil {
		// Source exists (checked above) but cannot be canonicalized;
		// ambiguous state, leave the link alone.
		logger.Debug().Err(err).Msg("Source resolution failed, leaving link untouched")
		return types.Result{Operation: op, Status: types.StatusAlreadyLinked}, nil
	}

	resolved, state := r.resolveLink(op.TargetPath)
	switch {
	case state == linkBroken:
		logger.Debug().Msg("Link resolution failed, leaving link untouched")
		return types.Result{Operation: op, Status: types.StatusAlreadyLinked}, nil

	case resolved == canonSource:
		return types.Result{Operation: op, Status: types.StatusAlreadyLinked}, nil

	case r.withinRoot(resolved):
		// The link points at a stale in-repo location (renamed or
		// moved source). homelink owns it; repoint it.
		return r.override(op, logger)

	default:
		// A link the user created themselves. Not ours to clobber.
		logger.Debug().Str("resolved", resolved).Msg("Foreign link at target, leaving untouched")
		return types.Result{Operation: op, Status: types.StatusAlreadyLinked}, nil
	}
}

// create makes parent directories and the symlink.
func (r *Reconciler) create(op types.Operation, logger zerolog.Logger) (types.Result, error) {
	if r.dryRun {
		logger.Info().Msg("Would create symlink")
		return types.Result{Operation: op, Status: types.StatusCreatedDryRun}, nil
	}

	if err := r.fs.MkdirAll(filepath.Dir(op.TargetPath), 0755); err != nil {
		return types.Result{}, errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create parent directory for %s", op.TargetPath)
	}
	if err := r.fs.Symlink(op.SourcePath, op.TargetPath); err != nil {
		return types.Result{}, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to create symlink %s", op.TargetPath)
	}

	logger.Info().Str("source", op.SourcePath).Msg("Symlink created")
	return types.Result{Operation: op, Status: types.StatusCreated}, nil
}

// override replaces an owned stale symlink with one pointing at the
// declared source.
func (r *Reconciler) override(op types.Operation, logger zerolog.Logger) (types.Result, error) {
	if r.dryRun {
		logger.Info().Msg("Would override stale symlink")
		return types.Result{Operation: op, Status: types.StatusOverriddenDryRun}, nil
	}

	if err := r.fs.Remove(op.TargetPath); err != nil {
		return types.Result{}, errors.Wrapf(err, errors.ErrSymlinkRemove,
			"failed to remove stale symlink %s", op.TargetPath)
	}
	if err := r.fs.Symlink(op.SourcePath, op.TargetPath); err != nil {
		return types.Result{}, errors.Wrapf(err, errors.ErrSymlinkCreate,
			"failed to recreate symlink %s", op.TargetPath)
	}

	logger.Info().Str("source", op.SourcePath).Msg("Stale symlink overridden")
	return types.Result{Operation: op, Status: types.StatusOverridden}, nil
}

// Remove applies the removal flow to one obsolete operation. It
// returns nil when there is nothing to do: the target is not a
// symlink, the ownership check fails, or resolution is ambiguous.
func (r *Reconciler) Remove(op types.Operation) (*types.Result, error) {
	logger := r.logger.With().Str("group", op.Group()).Str("target", op.TargetPath).Logger()

	info, err := r.fs.Lstat(op.TargetPath)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return nil, nil
	}

	resolved, state := r.resolveLink(op.TargetPath)
	if state == linkBroken {
		logger.Debug().Msg("Link resolution failed, not removing")
		return nil, nil
	}

	canonSource, err := r.fs.Canonical(op.SourcePath)
	if err != nil {
		// Cannot verify ownership without a resolvable source. Fail
		// safe toward inaction.
		logger.Debug().Err(err).Msg("Source resolution failed, not removing")
		return nil, nil
	}

	if resolved != canonSource {
		logger.Debug().Str("resolved", resolved).Msg("Link not owned by homelink, not removing")
		return nil, nil
	}

	if r.dryRun {
		logger.Info().Msg("Would remove obsolete symlink")
		return &types.Result{Operation: op, Status: types.StatusRemovedDryRun}, nil
	}

	if err := r.fs.Remove(op.TargetPath); err != nil {
		return nil, errors.Wrapf(err, errors.ErrSymlinkRemove,
			"failed to remove obsolete symlink %s", op.TargetPath)
	}

	logger.Info().Msg("Obsolete symlink removed")
	return &types.Result{Operation: op, Status: types.StatusRemoved}, nil
}

// resolveLink fully resolves the symlink at path: reads the link,
// anchors a relative destination at the link's directory, then
// canonicalizes the result.
func (r *Reconciler) resolveLink(path string) (string, linkState) {
	dest, err := r.fs.Readlink(path)
	if err != nil {
		return "", linkBroken
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}

	resolved, err := r.fs.Canonical(dest)
	if err != nil {
		return "", linkBroken
	}
	return resolved, linkResolved
}

// withinRoot reports whether a canonical path lies inside the managed
// repository root.
func (r *Reconciler) withinRoot(path string) bool {
	if path == r.repoRoot {
		return true
	}
	return strings.HasPrefix(path, r.repoRoot+string(filepath.Separator))
}
