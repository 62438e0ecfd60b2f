// Package filesystem provides filesystem implementations for npmstage.
//
// This package contains implementations of the types.FS interface,
// the standard OS filesystem and an afero-backed one used by tests, along
// with the recursive copy and remove primitives the staging engine uses.
package filesystem
