package cmds

import (
	"errors"
	"fmt"
)

// ErrUsage is matched by every error caused by malformed command line arguments.
var ErrUsage = errors.New("usage error")

type UsageError struct {
	Command string
	Err     error
}

func (e *UsageError) Error() string {
	if e.Command == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

func (e *UsageError) Unwrap() []error {
	return []error{ErrUsage, e.Err}
}
