package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrTaskAlreadyDone),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	case errors.Is(err, command.ErrInvalidCommand),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that reveals
// nothing about internals.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"

	case errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	case errors.Is(err, domain.ErrTaskAlreadyDone):
		return "Task is already done"

	case errors.Is(err, store.ErrDuplicate):
		return "Task already exists"

	case errors.Is(err, domain.ErrEmptyTaskTitle):
		return "Invalid title: required field"

	case errors.Is(err, domain.ErrEmptyCategoryName):
		return "Invalid category: required field"

	case errors.Is(err, domain.ErrEmptyDueDate):
		return "Invalid due_date: required field"

	case errors.Is(err, command.ErrInvalidCommand),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid task data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the error response for err, using defaultMsg in
// place of the generic message for server errors when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	status := MapErrorToStatusCode(err)

	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}

	shared.RespondWithErrorAndLog(w, r, status, msg, err)
}

// RespondWithFailure writes the error response for a failed command
// Result. The command handler has already logged the failure, so nothing
// is logged here.
func RespondWithFailure(w http.ResponseWriter, r *http.Request, result command.Result, defaultMsg string) {
	err := result.Err()
	status := MapErrorToStatusCode(err)

	msg := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && defaultMsg != "" {
		msg = defaultMsg
	}

	shared.RespondWithError(w, r, status, msg)
}

// SanitizeValidationError turns a validator error into a message naming the
// first failing field and the rule it broke.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "datetime":
		return "invalid date format"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
