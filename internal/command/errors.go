package command

import (
	"errors"
	"fmt"
)

// Sentinel errors reported through Result.Err.
var (
	// ErrInvalidCommand is returned when a command carries data the domain rejects.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrStorePanic wraps a panic recovered from the repository.
	ErrStorePanic = errors.New("repository panicked")

	// ErrUnknownFailure is the cause of a failure built without one.
	ErrUnknownFailure = errors.New("unknown failure")
)

// CommandError wraps a failure with the name of the command that produced it.
type CommandError struct {
	// Command is the command that failed (e.g., "register_task")
	Command string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for CommandError.
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s command failed: %v", e.Command, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CommandError) Unwrap() error {
	return e.Err
}

func newCommandError(command string, err error) error {
	return &CommandError{Command: command, Err: err}
}

// guard runs fn and turns a panic into an error wrapping ErrStorePanic.
func guard(fn func() error) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = fmt.Errorf("%w: %w", ErrStorePanic, perr)
				return
			}
			err = fmt.Errorf("%w: %v", ErrStorePanic, p)
		}
	}()
	return fn()
}
