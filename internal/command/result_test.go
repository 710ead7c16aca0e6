package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult(t *testing.T) {
	t.Parallel()

	t.Run("zero value is success", func(t *testing.T) {
		var r Result
		assert.True(t, r.IsSuccess())
		assert.False(t, r.IsFailure())
		assert.NoError(t, r.Err())
		assert.Equal(t, "success", r.String())
	})

	t.Run("failure carries its cause", func(t *testing.T) {
		cause := errors.New("boom")
		r := Failure(cause)
		assert.False(t, r.IsSuccess())
		assert.True(t, r.IsFailure())
		assert.Same(t, cause, r.Err())
		assert.Equal(t, "failure: boom", r.String())
	})

	t.Run("failure without cause is never empty", func(t *testing.T) {
		r := Failure(nil)
		require.True(t, r.IsFailure())
		assert.ErrorIs(t, r.Err(), ErrUnknownFailure)
	})
}

func TestGuard(t *testing.T) {
	t.Parallel()

	t.Run("returns the function error", func(t *testing.T) {
		cause := errors.New("plain")
		assert.Same(t, cause, guard(func() error { return cause }))
	})

	t.Run("recovers an error panic", func(t *testing.T) {
		cause := errors.New("exploded")
		err := guard(func() error { panic(cause) })
		assert.ErrorIs(t, err, ErrStorePanic)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("recovers a non-error panic", func(t *testing.T) {
		err := guard(func() error { panic("bad state") })
		assert.ErrorIs(t, err, ErrStorePanic)
		assert.Contains(t, err.Error(), "bad state")
	})
}

func TestCommandError(t *testing.T) {
	t.Parallel()

	cause := errors.New("db down")
	err := newCommandError("register_task", cause)

	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, "register_task", cmdErr.Command)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "register_task command failed: db down", err.Error())
}
