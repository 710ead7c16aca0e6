package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"task not found", store.ErrTaskNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("complete: %w", store.ErrTaskNotFound), http.StatusNotFound},
		{"already done", domain.ErrTaskAlreadyDone, http.StatusConflict},
		{"duplicate", store.ErrTaskExists, http.StatusConflict},
		{"invalid command", fmt.Errorf("%w: %w", command.ErrInvalidCommand, domain.ErrEmptyTaskTitle), http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"panic", command.ErrStorePanic, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "Task is already done", GetSafeErrorMessage(domain.ErrTaskAlreadyDone))
	assert.Equal(t, "Invalid category: required field",
		GetSafeErrorMessage(fmt.Errorf("%w: %w", domain.ErrValidation, domain.ErrEmptyCategoryName)))
	assert.Equal(t, "Invalid task data", GetSafeErrorMessage(command.ErrInvalidCommand))
	assert.Equal(t, "An unexpected error occurred",
		GetSafeErrorMessage(errors.New("pq: password authentication failed for user todo")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  RegisterTaskRequest
		want string
	}{
		{"missing title", RegisterTaskRequest{Category: "Estudo", DueDate: "2022-02-19"}, "Invalid title: required field"},
		{"missing category", RegisterTaskRequest{Title: "a", DueDate: "2022-02-19"}, "Invalid category: required field"},
		{"bad date", RegisterTaskRequest{Title: "a", Category: "Estudo", DueDate: "2022-13-40"}, "Invalid duedate: invalid date format"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := shared.ValidateRequest(&tc.req)
			assert.Equal(t, tc.want, SanitizeValidationError(err))
		})
	}

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("not a validator error")))
}
