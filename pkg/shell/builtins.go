package shell

import (
	"errors"
	"fmt"
	"os"
)

var errCdUsage = errors.New("Expected 1 argument")

// DirectoryChangeError reports a cd target that could not be entered.
type DirectoryChangeError struct {
	Path string
	Err  error
}

func (e *DirectoryChangeError) Error() string {
	return e.Err.Error()
}

func (e *DirectoryChangeError) Unwrap() error {
	return e.Err
}

func (s *Shell) registerBuiltins() {

	// Argument count is advisory: extra arguments are reported and the first
	// one is still used.
	s.builtins["cd"] = func(args []string, s *Shell) error {

		if len(args) != 1 {
			s.report(errCdUsage)
		}

		if len(args) == 0 {
			return nil
		}

		if err := os.Chdir(args[0]); err != nil {
			return &DirectoryChangeError{Path: args[0], Err: err}
		}

		return nil
	}

	s.builtins["exit"] = func(args []string, s *Shell) error {
		return ErrExit
	}

	s.builtins["history"] = func(args []string, s *Shell) error {
		for line := range s.history.All() {
			fmt.Fprintln(s.Out, line)
		}

		return nil
	}
}
