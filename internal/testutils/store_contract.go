package testutils

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TaskStoreFactory returns an empty store for one contract subtest.
type TaskStoreFactory func(t *testing.T) store.TaskStore

// AssertSameTask compares the persisted fields of two tasks. Timestamps are
// compared with millisecond tolerance because databases truncate them.
func AssertSameTask(t *testing.T, want, got *domain.Task) {
	t.Helper()

	require.NotNil(t, got)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.Title, got.Title)
	assert.Equal(t, want.Category, got.Category)
	assert.True(t, want.DueDate.Equal(got.DueDate), "due date: want %s, got %s", want.DueDate, got.DueDate)
	assert.Equal(t, want.Status, got.Status)
	assert.WithinDuration(t, want.CreatedAt, got.CreatedAt, time.Millisecond)
	assert.WithinDuration(t, want.UpdatedAt, got.UpdatedAt, time.Millisecond)
	if want.ConcludedAt == nil {
		assert.Nil(t, got.ConcludedAt)
	} else {
		require.NotNil(t, got.ConcludedAt)
		assert.WithinDuration(t, *want.ConcludedAt, *got.ConcludedAt, time.Millisecond)
	}
}

// RunTaskStoreContract exercises the behaviour every store.TaskStore
// implementation must share.
func RunTaskStoreContract(t *testing.T, newStore TaskStoreFactory) {
	t.Helper()

	t.Run("included task is returned by a matching predicate", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t, WithTitle("Estudar xUnit"))
		other := MustCreateTask(t, WithTitle("Estudar Moq"))
		require.NoError(t, s.IncludeTasks(ctx, task, other))

		got, err := s.GetTasks(ctx, store.ByTitle("Estudar xUnit"))
		require.NoError(t, err)
		require.Len(t, got, 1)
		AssertSameTask(t, task, got[0])
	})

	t.Run("tasks are returned in insertion order", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		first := MustCreateTask(t)
		second := MustCreateTask(t)
		third := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, first, second))
		require.NoError(t, s.IncludeTasks(ctx, third))

		got, err := s.GetTasks(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
		assert.Equal(t, third.ID, got[2].ID)
	})

	t.Run("no match returns an empty slice", func(t *testing.T) {
		s := newStore(t)

		got, err := s.GetTasks(context.Background(), store.ByTitle("nothing"))
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("including nothing is a no-op", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.IncludeTasks(context.Background()))
	})

	t.Run("duplicate include stores nothing", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		existing := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, existing))

		fresh := MustCreateTask(t)
		dup := *existing
		err := s.IncludeTasks(ctx, fresh, &dup)
		require.Error(t, err)
		assert.True(t, store.IsDuplicateError(err), "got %v", err)

		_, err = s.GetByID(ctx, fresh.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("get by id", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, task))

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		AssertSameTask(t, task, got)

		_, err = s.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})

	t.Run("returned tasks are detached from the store", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t, WithTitle("original"))
		require.NoError(t, s.IncludeTasks(ctx, task))
		task.Title = "changed after include"

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", got.Title)

		got.Title = "changed after get"
		again, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, "original", again.Title)
	})

	t.Run("update persists changes", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, task))

		require.NoError(t, task.Complete(time.Now()))
		task.Category = domain.Category{Name: "Trabalho"}
		require.NoError(t, s.UpdateTasks(ctx, task))

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		AssertSameTask(t, task, got)
	})

	t.Run("update of unknown task changes nothing", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, task))

		changed := *task
		changed.Status = domain.TaskStatusOverdue
		unknown := MustCreateTask(t)

		err := s.UpdateTasks(ctx, &changed, unknown)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		got, err := s.GetByID(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.TaskStatusCreated, got.Status)
	})

	t.Run("invalid task is rejected", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		task := MustCreateTask(t)
		task.Title = ""

		err := s.IncludeTasks(ctx, task)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrEmptyTaskTitle)
	})

	t.Run("delete removes tasks", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		keep := MustCreateTask(t)
		drop := MustCreateTask(t)
		require.NoError(t, s.IncludeTasks(ctx, keep, drop))

		require.NoError(t, s.DeleteTasks(ctx, drop.ID))

		got, err := s.GetTasks(ctx, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, keep.ID, got[0].ID)

		err = s.DeleteTasks(ctx, keep.ID, uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)

		_, err = s.GetByID(ctx, keep.ID)
		assert.NoError(t, err, "failed delete must not remove anything")
	})

	t.Run("categories are created on demand and listed by name", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()

		require.NoError(t, s.IncludeTasks(ctx,
			MustCreateTask(t, WithCategory("Trabalho")),
			MustCreateTask(t, WithCategory("Estudo")),
			MustCreateTask(t, WithCategory("Trabalho")),
		))

		got, err := s.GetCategories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []domain.Category{{Name: "Estudo"}, {Name: "Trabalho"}}, got)
	})
}
