// Package planner expands manifest entries into resolved symlink
// operations and partitions them into the active set (label
// requirements satisfied) and the obsolete set (declared but no
// longer matching, candidates for removal).
//
// Operation identity is the target path. The partition is computed
// over an explicit target-path-keyed index, which makes that identity
// rule a first-class invariant: an obsolete operation is any target
// path present in the full set but absent from the active set.
package planner

import (
	"path/filepath"
	"sort"

	"github.com/arthur-debert/homelink/pkg/logging"
	"github.com/arthur-debert/homelink/pkg/paths"
	"github.com/arthur-debert/homelink/pkg/types"
)

// Conflict records two entries that declared the same resolved target
// path. The first declaration wins; the second is dropped with a
// warning instead of silently collapsing.
type Conflict struct {
	TargetPath string
	Kept       types.Entry
	Dropped    types.Entry
}

// Plan is the full operation set with its active/obsolete partition.
type Plan struct {
	// All contains every declared operation, deduplicated by target
	// path, in manifest order.
	All []types.Operation

	// Active contains the operations whose entries satisfy the active
	// labels, in the same order as All.
	Active []types.Operation

	// Obsolete contains operations present in All but not in Active,
	// compared by target path, sorted lexicographically by target path
	// for reproducible removal order.
	Obsolete []types.Operation

	// Conflicts lists duplicate target declarations that were dropped.
	Conflicts []Conflict
}

// Build resolves entries against the repository root and partitions
// them by the active label set.
func Build(entries []types.Entry, repoRoot string, activeLabels []string) (*Plan, error) {
	logger := logging.GetLogger("planner")

	plan := &Plan{}
	byTarget := make(map[string]types.Operation, len(entries))

	for _, entry := range entries {
		target, err := paths.ExpandHome(entry.Target)
		if err != nil {
			return nil, err
		}

		op := types.Operation{
			Entry:      entry,
			SourcePath: filepath.Join(repoRoot, entry.Source),
			TargetPath: filepath.Clean(target),
		}

		if kept, exists := byTarget[op.TargetPath]; exists {
			logger.Warn().
				Str("target", op.TargetPath).
				Str("kept", kept.Group()).
				Str("dropped", entry.Group).
				Msg("Duplicate target declared, keeping first entry")
			plan.Conflicts = append(plan.Conflicts, Conflict{
				TargetPath: op.TargetPath,
				Kept:       kept.Entry,
				Dropped:    entry,
			})
			continue
		}

		byTarget[op.TargetPath] = op
		plan.All = append(plan.All, op)
	}

	activeTargets := make(map[string]struct{}, len(plan.All))
	for _, op := range plan.All {
		if op.Entry.MatchesLabels(activeLabels) {
			activeTargets[op.TargetPath] = struct{}{}
			plan.Active = append(plan.Active, op)
		}
	}

	// Set difference over the target-path index: full minus active.
	for _, op := range plan.All {
		if _, active := activeTargets[op.TargetPath]; !active {
			plan.Obsolete = append(plan.Obsolete, op)
		}
	}
	sort.Slice(plan.Obsolete, func(i, j int) bool {
		return plan.Obsolete[i].TargetPath < plan.Obsolete[j].TargetPath
	})

	logger.Debug().
		Int("all", len(plan.All)).
		Int("active", len(plan.Active)).
		Int("obsolete", len(plan.Obsolete)).
		Strs("labels", activeLabels).
		Msg("Plan built")

	return plan, nil
}
