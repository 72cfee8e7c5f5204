package shell

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// SpawnError reports an external program that could not be started.
type SpawnError struct {
	Name string
	Err  error
}

func (e *SpawnError) Error() string {
	return e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

type IOBindings struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultExecutor starts programs through the OS and waits for them. The
// child is attached to the bindings directly, nothing is captured.
type DefaultExecutor struct{}

func (e *DefaultExecutor) Execute(ctx context.Context, name string, args []string, io IOBindings) (int, error) {

	externalCmd := exec.CommandContext(ctx, name, args...)
	externalCmd.Stdin = io.Stdin
	externalCmd.Stdout = io.Stdout
	externalCmd.Stderr = io.Stderr

	if err := externalCmd.Start(); err != nil {
		return -1, &SpawnError{Name: name, Err: err}
	}

	if err := externalCmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}

		return -1, nil
	}

	return 0, nil

}
