package types

import (
	"io"
	"io/fs"
)

// FS is the filesystem interface required for staging operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Symlink operations
	Symlink(oldname, newname string) error
	Readlink(name string) (string, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Execution describes a single invocation of an external tool.
type Execution struct {
	// Path is the resolved executable
	Path string
	Args []string
	// Dir is the working directory
	Dir string
	// Env holds KEY=VALUE pairs added on top of the inherited environment
	Env []string

	Stdout io.Writer
	Stderr io.Writer
}

// Runner runs an Execution to completion.
//
// Implementations return an error carrying the exit status when the process
// exits non-zero (see executor.ExitCode) and any other error when the process
// could not be started.
type Runner interface {
	Run(e Execution) error
}

// LookPathFunc resolves an executable name against the search path.
type LookPathFunc func(file string) (string, error)
