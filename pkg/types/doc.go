// Package types defines the interfaces shared across npmstage packages:
// the filesystem abstraction used by staging and the Runner used to invoke
// the package manager.
package types
