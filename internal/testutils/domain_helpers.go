package testutils

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// ReferenceDueDate is the due date used by the canonical test command.
var ReferenceDueDate = time.Date(2022, time.February, 19, 0, 0, 0, 0, time.UTC)

// TaskOption customises a task built by MustCreateTask.
type TaskOption func(*domain.Task)

// WithTitle sets the task title.
func WithTitle(title string) TaskOption {
	return func(t *domain.Task) { t.Title = title }
}

// WithCategory sets the task category.
func WithCategory(name string) TaskOption {
	return func(t *domain.Task) { t.Category = domain.Category{Name: name} }
}

// WithDueDate sets the task due date, truncated to its day.
func WithDueDate(due time.Time) TaskOption {
	return func(t *domain.Task) { t.DueDate = domain.StartOfDay(due) }
}

// WithStatus sets the task status.
func WithStatus(status domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = status }
}

// MustCreateTask creates a valid task with a unique title in the "Estudo"
// category, due on ReferenceDueDate, then applies opts.
// It does not save the task anywhere.
func MustCreateTask(t *testing.T, opts ...TaskOption) *domain.Task {
	t.Helper()

	task, err := domain.NewTask(
		fmt.Sprintf("Test task %s", uuid.New().String()[:8]),
		domain.Category{Name: "Estudo"},
		ReferenceDueDate,
	)
	require.NoError(t, err, "Failed to create test task")

	for _, opt := range opts {
		opt(task)
	}
	require.NoError(t, task.Validate(), "Test task options produced an invalid task")

	return task
}
