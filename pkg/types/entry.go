package types

// LabelRequirement is one clause of an entry's label gate. It is
// satisfied when at least one of its labels is present in the active
// label set (OR semantics within a single requirement).
type LabelRequirement struct {
	Labels []string
}

// Matches reports whether the requirement is satisfied by the active
// labels.
func (r LabelRequirement) Matches(active []string) bool {
	for _, want := range r.Labels {
		for _, have := range active {
			if want == have {
				return true
			}
		}
	}
	return false
}

// Entry is a declared desired symlink, scoped to a named manifest
// group, with optional label gating.
type Entry struct {
	// Group is the manifest table name the entry belongs to.
	Group string

	// Source is the repository-relative path to link from. Defaults to
	// config/<group> when the manifest omits it.
	Source string

	// Target is the absolute link location on the system. May use the
	// ~ home-directory shorthand.
	Target string

	// Requirements gate the entry on the machine's active labels.
	// All requirements must be satisfied (AND across requirements).
	Requirements []LabelRequirement
}

// MatchesLabels reports whether every requirement is satisfied by the
// active labels. An entry with no requirements always matches.
func (e Entry) MatchesLabels(active []string) bool {
	for _, req := range e.Requirements {
		if !req.Matches(active) {
			return false
		}
	}
	return true
}
