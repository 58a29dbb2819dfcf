// Package filesystem provides the production implementation of the
// types.FS interface over the operating system.
package filesystem
