// Package version holds build-time version metadata, set via ldflags.
package version

var (
	// Version is the semantic version of the build.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = ""

	// Date is the build date.
	Date = ""
)
