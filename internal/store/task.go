package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
)

// TaskPredicate selects tasks in GetTasks. A nil predicate selects every task.
type TaskPredicate func(task *domain.Task) bool

// Match reports whether the task satisfies the predicate.
func (p TaskPredicate) Match(task *domain.Task) bool {
	return p == nil || p(task)
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// IncludeTasks saves new tasks and creates their categories on demand.
	// Either every task is stored or none is.
	// Returns ErrTaskExists if a task with the same ID is already stored.
	IncludeTasks(ctx context.Context, tasks ...*domain.Task) error

	// UpdateTasks saves changes to existing tasks. Either every task is
	// updated or none is.
	// Returns ErrTaskNotFound if any of the tasks does not exist.
	UpdateTasks(ctx context.Context, tasks ...*domain.Task) error

	// DeleteTasks removes the tasks with the given IDs.
	// Returns ErrTaskNotFound if any of the tasks does not exist.
	DeleteTasks(ctx context.Context, ids ...uuid.UUID) error

	// GetTasks returns every stored task that matches the predicate,
	// in insertion order. Returns an empty slice if nothing matches.
	GetTasks(ctx context.Context, predicate TaskPredicate) ([]*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// GetCategories returns every known category ordered by name.
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

// ByTitle selects tasks whose title equals title.
func ByTitle(title string) TaskPredicate {
	return func(task *domain.Task) bool {
		return task.Title == title
	}
}

// ByCategory selects tasks classified under the named category.
func ByCategory(name string) TaskPredicate {
	return func(task *domain.Task) bool {
		return task.Category.Name == name
	}
}

// ByStatus selects tasks in the given status.
func ByStatus(status domain.TaskStatus) TaskPredicate {
	return func(task *domain.Task) bool {
		return task.Status == status
	}
}

// All combines predicates; a task must match every one of them.
// Nil predicates are ignored.
func All(predicates ...TaskPredicate) TaskPredicate {
	return func(task *domain.Task) bool {
		for _, p := range predicates {
			if !p.Match(task) {
				return false
			}
		}
		return true
	}
}
