// Package executor runs external tools for npmstage.
//
// The Runner in this package is the production implementation of
// types.Runner: it starts the process with os/exec, streams its output to
// the caller's writers and blocks until it exits. There is no timeout and no
// cancellation, a hung package manager hangs the build.
//
// ExitCode distinguishes "the process ran and failed" from "the process
// could not be started", which the orchestrator reports as different errors.
package executor
