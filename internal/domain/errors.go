// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyTaskTitle is returned when a task has no title.
	ErrEmptyTaskTitle = errors.New("task title cannot be empty")

	// ErrEmptyCategoryName is returned when a category has no name.
	ErrEmptyCategoryName = errors.New("category name cannot be empty")

	// ErrEmptyDueDate is returned when a task has no due date.
	ErrEmptyDueDate = errors.New("task due date cannot be empty")

	// ErrEmptyTaskID is returned when a task has a nil ID.
	ErrEmptyTaskID = errors.New("task ID cannot be empty")

	// ErrInvalidTaskStatus is returned when a task status is not recognised.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrTaskAlreadyDone is returned when completing a task that is already done.
	ErrTaskAlreadyDone = errors.New("task already done")
)
