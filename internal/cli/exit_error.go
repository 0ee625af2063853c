package cli

import (
	"errors"
	"fmt"
	"io"
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the process exit code carried by the error.
func (e *ExitError) ExitCode() int {
	return e.Code
}

// Report prints err to w and returns the exit code for it. An ExitError
// without a cause prints nothing.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(w, "Error: %v\n", exitErr.Err)
		}
		return exitErr.Code
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return 1
}
