// Package install implements the core reconciliation command: parse
// the manifest, filter by the machine's labels, and converge the
// filesystem's symlinks on the declaration.
package install

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/arthur-debert/homelink/pkg/config"
	"github.com/arthur-debert/homelink/pkg/errors"
	"github.com/arthur-debert/homelink/pkg/filesystem"
	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/manifest"
	"github.com/arthur-debert/homelink/pkg/paths"
	"github.com/arthur-debert/homelink/pkg/planner"
	"github.com/arthur-debert/homelink/pkg/reconciler"
	"github.com/arthur-debert/homelink/pkg/types"
)

// Options defines the options for the Install command.
type Options struct {
	// RepoRoot overrides repository root discovery.
	RepoRoot string

	// Groups limits reconciliation to the named manifest groups. A
	// filtered run is strictly additive: it never removes obsolete
	// links, since obsolescence is only meaningful against the full
	// declaration.
	Groups []string

	// DryRun reports decisions without mutating the filesystem.
	DryRun bool

	// FS overrides the filesystem, for tests. Defaults to the OS.
	FS types.FS
}

// Result is the outcome of one install run.
type Result struct {
	// Results holds one decision per operation, install flow first,
	// then removals in lexicographic target order.
	Results []types.Result

	// ParseIssues are entry-scoped manifest problems. The run proceeds
	// with the entries that parsed.
	ParseIssues []error

	// Conflicts are duplicate-target declarations that were dropped.
	Conflicts []planner.Conflict

	// Labels is the machine's active label set.
	Labels []string

	// DryRun echoes the requested mode.
	DryRun bool
}

// Install runs the reconciliation.
func Install(opts Options) (*Result, error) {
	logger := logging.GetLogger("commands.install")

	p, err := paths.New(opts.RepoRoot)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadMachine(p.MachineConfigPath())
	if err != nil {
		return nil, err
	}

	entries, issues, err := manifest.Load(p.ManifestPath())
	if err != nil {
		return nil, err
	}

	entries, err = filterGroups(entries, opts.Groups)
	if err != nil {
		return nil, err
	}

	plan, err := planner.Build(entries, p.RepoRoot(), cfg.Labels)
	if err != nil {
		return nil, err
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	obsolete := plan.Obsolete
	if len(opts.Groups) > 0 {
		obsolete = nil
	}

	rec := reconciler.New(fs, p.RepoRoot(), opts.DryRun)
	results, err := rec.Reconcile(plan.Active, obsolete)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("results", len(results)).
		Int("parseIssues", len(issues)).
		Bool("dryRun", opts.DryRun).
		Msg("Install finished")

	return &Result{
		Results:     results,
		ParseIssues: issues,
		Conflicts:   plan.Conflicts,
		Labels:      cfg.Labels,
		DryRun:      opts.DryRun,
	}, nil
}

// filterGroups restricts entries to the named groups, rejecting
// unknown names with a fuzzy-matched suggestion.
func filterGroups(entries []types.Entry, groups []string) ([]types.Entry, error) {
	if len(groups) == 0 {
		return entries, nil
	}

	known := make(map[string]bool, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !known[entry.Group] {
			known[entry.Group] = true
			names = append(names, entry.Group)
		}
	}
	sort.Strings(names)

	wanted := make(map[string]bool, len(groups))
	for _, group := range groups {
		if !known[group] {
			err := errors.Newf(errors.ErrUnknownGroup, "unknown group %q", group)
			if matches := fuzzy.RankFindNormalizedFold(group, names); len(matches) > 0 {
				sort.Sort(matches)
				err = errors.Newf(errors.ErrUnknownGroup,
					"unknown group %q (did you mean %q?)", group, matches[0].Target)
			}
			return nil, err.WithDetail("known", strings.Join(names, ", "))
		}
		wanted[group] = true
	}

	filtered := make([]types.Entry, 0, len(entries))
	for _, entry := range entries {
		if wanted[entry.Group] {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}
