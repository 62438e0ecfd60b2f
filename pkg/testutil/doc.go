// Package testutil provides fakes for testing npmstage components.
//
// Key components:
//   - NewTestFS: in-memory types.FS backed by afero
//   - RecordingFS: types.FS wrapper counting mutating calls
//   - FakeRunner: types.Runner recording every Execution
//   - ExitError: error carrying a process exit status
//   - WriteFiles: declarative project tree setup
//
// Tests should stay in memory. Only pkg/filesystem, pkg/executor and the
// end-to-end tests of pkg/npm touch the real filesystem.
package testutil
