package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskStore keeps tasks in memory. Tasks are copied on the way in and on
// the way out, so callers never share state with the store.
type TaskStore struct {
	mu         sync.RWMutex
	order      []uuid.UUID
	tasks      map[uuid.UUID]*domain.Task
	categories map[string]domain.Category
}

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:      make(map[uuid.UUID]*domain.Task),
		categories: make(map[string]domain.Category),
	}
}

var _ store.TaskStore = (*TaskStore)(nil)

// IncludeTasks implements store.TaskStore.IncludeTasks.
func (s *TaskStore) IncludeTasks(ctx context.Context, tasks ...*domain.Task) error {
	if err := validateAll(tasks); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(tasks))
	for _, t := range tasks {
		if _, exists := s.tasks[t.ID]; exists {
			return fmt.Errorf("%w: %s", store.ErrTaskExists, t.ID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: %s", store.ErrTaskExists, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	for _, t := range tasks {
		s.tasks[t.ID] = copyTask(t)
		s.order = append(s.order, t.ID)
		s.categories[t.Category.Name] = t.Category
	}

	return nil
}

// UpdateTasks implements store.TaskStore.UpdateTasks.
func (s *TaskStore) UpdateTasks(ctx context.Context, tasks ...*domain.Task) error {
	if err := validateAll(tasks); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range tasks {
		if _, exists := s.tasks[t.ID]; !exists {
			return fmt.Errorf("%w: %s", store.ErrTaskNotFound, t.ID)
		}
	}

	for _, t := range tasks {
		s.tasks[t.ID] = copyTask(t)
		s.categories[t.Category.Name] = t.Category
	}

	return nil
}

// DeleteTasks implements store.TaskStore.DeleteTasks.
func (s *TaskStore) DeleteTasks(ctx context.Context, ids ...uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range ids {
		if _, exists := s.tasks[id]; !exists {
			return fmt.Errorf("%w: %s", store.ErrTaskNotFound, id)
		}
	}

	drop := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		delete(s.tasks, id)
		drop[id] = struct{}{}
	}

	kept := s.order[:0]
	for _, id := range s.order {
		if _, gone := drop[id]; !gone {
			kept = append(kept, id)
		}
	}
	s.order = kept

	return nil
}

// GetTasks implements store.TaskStore.GetTasks.
func (s *TaskStore) GetTasks(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := []*domain.Task{}
	for _, id := range s.order {
		t := copyTask(s.tasks[id])
		if predicate.Match(t) {
			result = append(result, t)
		}
	}
	return result, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, exists := s.tasks[id]
	if !exists {
		return nil, store.ErrTaskNotFound
	}
	return copyTask(t), nil
}

// GetCategories implements store.TaskStore.GetCategories.
func (s *TaskStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Category, 0, len(s.categories))
	for _, c := range s.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func validateAll(tasks []*domain.Task) error {
	for _, t := range tasks {
		if t == nil {
			return fmt.Errorf("%w: nil task", store.ErrInvalidEntity)
		}
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
		}
	}
	return nil
}

func copyTask(t *domain.Task) *domain.Task {
	c := *t
	if t.ConcludedAt != nil {
		at := *t.ConcludedAt
		c.ConcludedAt = &at
	}
	return &c
}
