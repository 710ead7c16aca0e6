package command

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// Handler executes one kind of command.
type Handler[C any] interface {
	Execute(ctx context.Context, cmd C) Result
}

// TaskRepository is the persistence capability the handlers depend on.
// store.TaskStore satisfies it.
type TaskRepository interface {
	IncludeTasks(ctx context.Context, tasks ...*domain.Task) error
	UpdateTasks(ctx context.Context, tasks ...*domain.Task) error
	GetTasks(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
}

// RegisterTask asks for a new task to be recorded.
type RegisterTask struct {
	Title    string
	Category domain.Category
	DueDate  time.Time
}

// NewRegisterTask builds a RegisterTask command.
func NewRegisterTask(title string, category domain.Category, dueDate time.Time) RegisterTask {
	return RegisterTask{Title: title, Category: category, DueDate: dueDate}
}

// ManageDeadlines asks for every open task due before Now's day to be
// flagged as overdue.
type ManageDeadlines struct {
	Now time.Time
}

// NewManageDeadlines builds a ManageDeadlines command.
func NewManageDeadlines(now time.Time) ManageDeadlines {
	return ManageDeadlines{Now: now}
}

// CompleteTask asks for a task to be marked as done at the given instant.
type CompleteTask struct {
	TaskID uuid.UUID
	At     time.Time
}

// NewCompleteTask builds a CompleteTask command.
func NewCompleteTask(id uuid.UUID, at time.Time) CompleteTask {
	return CompleteTask{TaskID: id, At: at}
}
