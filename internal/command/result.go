package command

// Result is the outcome of a handler invocation: either success, or
// failure carrying the error that caused it. The zero value is a success.
type Result struct {
	err error
}

// Success returns a successful Result.
func Success() Result {
	return Result{}
}

// Failure returns a failed Result carrying err. A nil err is replaced by
// ErrUnknownFailure so that a failure always has a cause.
func Failure(err error) Result {
	if err == nil {
		err = ErrUnknownFailure
	}
	return Result{err: err}
}

// IsSuccess reports whether the command succeeded.
func (r Result) IsSuccess() bool {
	return r.err == nil
}

// IsFailure reports whether the command failed.
func (r Result) IsFailure() bool {
	return r.err != nil
}

// Err returns the failure cause, or nil on success.
func (r Result) Err() error {
	return r.err
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.err == nil {
		return "success"
	}
	return "failure: " + r.err.Error()
}
