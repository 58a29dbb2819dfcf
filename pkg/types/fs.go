package types

import "io/fs"

// FS is the filesystem surface the reconciler operates on. The
// production implementation lives in pkg/filesystem; tests exercise
// the OS implementation against temporary directories because symlink
// semantics (Lstat vs Stat, link resolution) are the behavior under
// test.
type FS interface {
	// Stat follows symlinks.
	Stat(name string) (fs.FileInfo, error)

	// Lstat does not follow symlinks.
	Lstat(name string) (fs.FileInfo, error)

	// Readlink returns the destination of a symbolic link.
	Readlink(name string) (string, error)

	// Canonical fully resolves a path, following every symlink in it.
	Canonical(name string) (string, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path string, perm fs.FileMode) error

	// Symlink creates newname as a symbolic link to oldname.
	Symlink(oldname, newname string) error

	// Remove deletes a file or symlink.
	Remove(name string) error
}
