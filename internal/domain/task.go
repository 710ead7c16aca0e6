package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

// Possible task status values
const (
	TaskStatusCreated TaskStatus = "created"
	TaskStatusOverdue TaskStatus = "overdue"
	TaskStatusDone    TaskStatus = "done"
)

// Task is a to-do item with a title, a category and the day it is due.
type Task struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	DueDate     time.Time  `json:"due_date"`
	Status      TaskStatus `json:"status"`
	ConcludedAt *time.Time `json:"concluded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new Task in the created status.
// The due date is truncated to its calendar day in UTC.
// Returns an error if validation fails.
func NewTask(title string, category Category, dueDate time.Time) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(title),
		Category:  Category{Name: strings.TrimSpace(category.Name)},
		DueDate:   StartOfDay(dueDate),
		Status:    TaskStatusCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTaskID)
	}

	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyTaskTitle)
	}

	if err := t.Category.Validate(); err != nil {
		return err
	}

	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: %w", ErrValidation, ErrEmptyDueDate)
	}

	if !IsValidTaskStatus(t.Status) {
		return fmt.Errorf("%w: %w", ErrValidation, ErrInvalidTaskStatus)
	}

	return nil
}

// IsOverdue reports whether the task is still open and its due day
// ended before the day of now.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.Status == TaskStatusDone {
		return false
	}
	return t.DueDate.Before(StartOfDay(now))
}

// MarkOverdue moves an open, past-due task to the overdue status.
// It returns true when the status changed.
func (t *Task) MarkOverdue(now time.Time) bool {
	if t.Status != TaskStatusCreated || !t.IsOverdue(now) {
		return false
	}

	t.Status = TaskStatusOverdue
	t.UpdatedAt = now.UTC()
	return true
}

// Complete marks the task as done at the given instant.
func (t *Task) Complete(at time.Time) error {
	if t.Status == TaskStatusDone {
		return ErrTaskAlreadyDone
	}

	concludedAt := at.UTC()
	t.Status = TaskStatusDone
	t.ConcludedAt = &concludedAt
	t.UpdatedAt = concludedAt
	return nil
}

// IsValidTaskStatus checks if the given status is a valid TaskStatus.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusCreated, TaskStatusOverdue, TaskStatusDone:
		return true
	default:
		return false
	}
}

// StartOfDay returns midnight UTC of the calendar day t falls on in UTC.
func StartOfDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
