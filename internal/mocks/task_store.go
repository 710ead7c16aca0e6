package mocks

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing.
// Unset function fields return empty results and no error; every call is
// counted by method name.
type MockTaskStore struct {
	IncludeTasksFn  func(ctx context.Context, tasks ...*domain.Task) error
	UpdateTasksFn   func(ctx context.Context, tasks ...*domain.Task) error
	DeleteTasksFn   func(ctx context.Context, ids ...uuid.UUID) error
	GetTasksFn      func(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error)
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetCategoriesFn func(ctx context.Context) ([]domain.Category, error)

	mu    sync.Mutex
	calls map[string]int
}

var _ store.TaskStore = (*MockTaskStore)(nil)

func (m *MockTaskStore) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[method]++
}

// Calls returns how many times method was invoked.
func (m *MockTaskStore) Calls(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[method]
}

// IncludeTasks implements store.TaskStore.
func (m *MockTaskStore) IncludeTasks(ctx context.Context, tasks ...*domain.Task) error {
	m.record("IncludeTasks")
	if m.IncludeTasksFn != nil {
		return m.IncludeTasksFn(ctx, tasks...)
	}
	return nil
}

// UpdateTasks implements store.TaskStore.
func (m *MockTaskStore) UpdateTasks(ctx context.Context, tasks ...*domain.Task) error {
	m.record("UpdateTasks")
	if m.UpdateTasksFn != nil {
		return m.UpdateTasksFn(ctx, tasks...)
	}
	return nil
}

// DeleteTasks implements store.TaskStore.
func (m *MockTaskStore) DeleteTasks(ctx context.Context, ids ...uuid.UUID) error {
	m.record("DeleteTasks")
	if m.DeleteTasksFn != nil {
		return m.DeleteTasksFn(ctx, ids...)
	}
	return nil
}

// GetTasks implements store.TaskStore.
func (m *MockTaskStore) GetTasks(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error) {
	m.record("GetTasks")
	if m.GetTasksFn != nil {
		return m.GetTasksFn(ctx, predicate)
	}
	return []*domain.Task{}, nil
}

// GetByID implements store.TaskStore.
func (m *MockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	m.record("GetByID")
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

// GetCategories implements store.TaskStore.
func (m *MockTaskStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	m.record("GetCategories")
	if m.GetCategoriesFn != nil {
		return m.GetCategoriesFn(ctx)
	}
	return []domain.Category{}, nil
}
