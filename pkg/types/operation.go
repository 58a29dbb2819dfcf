package types

// Operation is an entry bound to resolved absolute paths, ready for
// the reconciler. Operation identity is the target path: two entries
// declaring the same target collapse into one operation slot, and the
// active/obsolete partition compares operations by TargetPath only.
type Operation struct {
	Entry      Entry
	SourcePath string
	TargetPath string
}

// Group returns the manifest group the operation originated from.
func (o Operation) Group() string {
	return o.Entry.Group
}

// Result pairs an operation with the reconciliation decision taken
// for it.
type Result struct {
	Operation Operation
	Status    Status
}

// Group returns the manifest group of the underlying operation.
func (r Result) Group() string {
	return r.Operation.Group()
}

// TargetPath returns the target path of the underlying operation.
func (r Result) TargetPath() string {
	return r.Operation.TargetPath
}
