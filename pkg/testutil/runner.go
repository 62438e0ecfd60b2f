package testutil

import (
	"fmt"
	"strings"
	"sync"

	"github.com/arthur-debert/npmstage/pkg/types"
)

// ExitError is returned by fakes for a process that exited non-zero
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the exit status
func (e *ExitError) ExitCode() int {
	return e.Code
}

// FakeRunner records executions instead of starting processes
type FakeRunner struct {
	// OnRun, when set, decides the result of each execution
	OnRun func(e types.Execution) error

	mu         sync.Mutex
	executions []types.Execution
}

var _ types.Runner = (*FakeRunner)(nil)

// Run records e and returns OnRun's result
func (f *FakeRunner) Run(e types.Execution) error {
	f.mu.Lock()
	f.executions = append(f.executions, e)
	f.mu.Unlock()

	if f.OnRun != nil {
		return f.OnRun(e)
	}
	return nil
}

// Executions returns the recorded executions
func (f *FakeRunner) Executions() []types.Execution {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]types.Execution(nil), f.executions...)
}

// Commands returns each execution's arguments joined by spaces
func (f *FakeRunner) Commands() []string {
	var out []string
	for _, e := range f.Executions() {
		out = append(out, strings.Join(e.Args, " "))
	}
	return out
}

// FailOn returns an OnRun hook that fails executions whose arguments,
// joined by spaces, equal command.
func FailOn(command string, err error) func(types.Execution) error {
	return func(e types.Execution) error {
		if strings.Join(e.Args, " ") == command {
			return err
		}
		return nil
	}
}

// LookPathFound resolves every name to dir/name
func LookPathFound(dir string) types.LookPathFunc {
	return func(file string) (string, error) {
		return dir + "/" + file, nil
	}
}

// LookPathMissing fails every lookup
func LookPathMissing(file string) (string, error) {
	return "", fmt.Errorf("exec: %q: executable file not found in $PATH", file)
}
