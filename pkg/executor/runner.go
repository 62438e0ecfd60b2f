package executor

import (
	"errors"
	"os"
	"os/exec"

	"github.com/arthur-debert/npmstage/pkg/logging"
	"github.com/arthur-debert/npmstage/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the runner
type Options struct {
	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Runner is a types.Runner backed by os/exec
type Runner struct {
	logger zerolog.Logger
}

// New creates a new runner instance
func New(opts Options) *Runner {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Runner{logger: logger}
}

// Run starts the execution and waits for it to finish. The process inherits
// the current environment with e.Env appended, so e.Env wins on conflicts.
func (r *Runner) Run(e types.Execution) error {
	logging.LogCommand(e.Path, e.Args)

	cmd := exec.Command(e.Path, e.Args...)
	cmd.Dir = e.Dir
	cmd.Env = append(os.Environ(), e.Env...)
	cmd.Stdout = e.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = e.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err != nil {
		r.logger.Debug().
			Str("command", e.Path).
			Strs("args", e.Args).
			Str("dir", e.Dir).
			Err(err).
			Msg("Command failed")
	}
	return err
}

// LookPath resolves file against PATH
func LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// exitCoder is satisfied by *exec.ExitError
type exitCoder interface {
	ExitCode() int
}

// ExitCode reports the exit status carried by err. ok is false when err does
// not come from a process that ran to completion.
func ExitCode(err error) (code int, ok bool) {
	var ec exitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode(), true
	}
	return 0, false
}

var _ types.Runner = (*Runner)(nil)
