package types

// Status is the machine-checkable outcome tag of a reconciliation
// decision. Tests and callers branch on the tag; the human-readable
// text lives separately in Label.
type Status string

const (
	// StatusAlreadyLinked means the target is already a symlink that
	// resolves to the declared source, or a link homelink does not own
	// and therefore leaves untouched.
	StatusAlreadyLinked Status = "already_linked"

	// StatusCreated means a new symlink was created at the target.
	StatusCreated Status = "created"

	// StatusCreatedDryRun means a symlink would have been created.
	StatusCreatedDryRun Status = "created_dry_run"

	// StatusOverridden means an owned but stale symlink was replaced
	// with one pointing at the declared source.
	StatusOverridden Status = "overridden"

	// StatusOverriddenDryRun means a stale owned symlink would have
	// been replaced.
	StatusOverriddenDryRun Status = "overridden_dry_run"

	// StatusSkippedSourceMissing means the declared source does not
	// exist; the target was not touched.
	StatusSkippedSourceMissing Status = "skipped_source_missing"

	// StatusSkippedForeignFile means a real file or directory (not a
	// symlink) occupies the target; user data is never overwritten.
	StatusSkippedForeignFile Status = "skipped_foreign_file"

	// StatusRemoved means an obsolete symlink owned by homelink was
	// removed.
	StatusRemoved Status = "removed"

	// StatusRemovedDryRun means an obsolete owned symlink would have
	// been removed.
	StatusRemovedDryRun Status = "removed_dry_run"
)

// statusLabels maps each tag to its fixed report text.
var statusLabels = map[Status]string{
	StatusAlreadyLinked:        "Exists",
	StatusCreated:              "Created",
	StatusCreatedDryRun:        "Created (dry-run)",
	StatusOverridden:           "Overridden",
	StatusOverriddenDryRun:     "Overridden (dry-run)",
	StatusSkippedSourceMissing: "Skipped (source not found)",
	StatusSkippedForeignFile:   "Skipped (not a symlink)",
	StatusRemoved:              "Removed",
	StatusRemovedDryRun:        "Removed (dry-run)",
}

// Label returns the human-readable text for reports.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Normalize maps a dry-run tag onto its real-run counterpart, so that
// dry-run and real-run decision sets can be compared directly.
func (s Status) Normalize() Status {
	switch s {
	case StatusCreatedDryRun:
		return StatusCreated
	case StatusOverriddenDryRun:
		return StatusOverridden
	case StatusRemovedDryRun:
		return StatusRemoved
	default:
		return s
	}
}

// Success reports whether the decision left the target in the desired
// linked state (or would have, under dry-run).
func (s Status) Success() bool {
	switch s.Normalize() {
	case StatusAlreadyLinked, StatusCreated, StatusOverridden:
		return true
	default:
		return false
	}
}
