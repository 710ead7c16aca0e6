package command_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockTaskRepository is a testify mock of command.TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) IncludeTasks(ctx context.Context, tasks ...*domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTasks(ctx context.Context, tasks ...*domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

func (m *MockTaskRepository) GetTasks(
	ctx context.Context,
	predicate store.TaskPredicate,
) ([]*domain.Task, error) {
	args := m.Called(ctx, predicate)
	var tasks []*domain.Task
	if arg := args.Get(0); arg != nil {
		tasks = arg.([]*domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	args := m.Called(ctx, id)
	var task *domain.Task
	if arg := args.Get(0); arg != nil {
		task = arg.(*domain.Task)
	}
	return task, args.Error(1)
}
