// Package types defines the core data model shared across homelink:
// manifest entries, label requirements, resolved symlink operations,
// reconciliation results, and the filesystem interface.
package types
