package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

const taskColumns = `id, title, category_name, due_date, status, concluded_at, created_at, updated_at`

// TaskStore implements store.TaskStore on SQLite.
type TaskStore struct {
	db store.DBTX
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates a TaskStore over db, which must already carry the
// schema (see the migrate package).
func NewTaskStore(db store.DBTX) *TaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}
	return &TaskStore{db: db}
}

// IncludeTasks implements store.TaskStore.IncludeTasks.
func (s *TaskStore) IncludeTasks(ctx context.Context, tasks ...*domain.Task) error {
	if err := validateTasks(tasks); err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	err := store.WithinTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		for _, t := range tasks {
			var existing int
			if err := q.QueryRowContext(ctx,
				`SELECT COUNT(1) FROM tasks WHERE id = ?`, t.ID.String()).Scan(&existing); err != nil {
				return mapError(err)
			}
			if existing > 0 {
				return fmt.Errorf("%w: %s", store.ErrTaskExists, t.ID)
			}

			if err := ensureCategory(ctx, q, t.Category); err != nil {
				return err
			}

			_, err := q.ExecContext(ctx,
				`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID.String(), t.Title, t.Category.Name, formatDate(t.DueDate), string(t.Status),
				formatTimePtr(t.ConcludedAt), formatTime(t.CreatedAt), formatTime(t.UpdatedAt),
			)
			if err != nil {
				mapped := mapError(err)
				if store.IsDuplicateError(mapped) {
					return fmt.Errorf("%w: %s", store.ErrTaskExists, t.ID)
				}
				return mapped
			}
		}
		return nil
	})
	if err != nil {
		return store.NewStoreError("task", "include", "failed to include tasks", err)
	}

	return nil
}

// UpdateTasks implements store.TaskStore.UpdateTasks.
func (s *TaskStore) UpdateTasks(ctx context.Context, tasks ...*domain.Task) error {
	if err := validateTasks(tasks); err != nil {
		return err
	}
	if len(tasks) == 0 {
		return nil
	}

	err := store.WithinTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		for _, t := range tasks {
			if err := ensureCategory(ctx, q, t.Category); err != nil {
				return err
			}

			result, err := q.ExecContext(ctx, `
				UPDATE tasks
				SET title = ?, category_name = ?, due_date = ?, status = ?,
					concluded_at = ?, updated_at = ?
				WHERE id = ?`,
				t.Title, t.Category.Name, formatDate(t.DueDate), string(t.Status),
				formatTimePtr(t.ConcludedAt), formatTime(t.UpdatedAt), t.ID.String(),
			)
			if err != nil {
				return mapError(err)
			}
			if err := checkRowsAffected(result); err != nil {
				return fmt.Errorf("%w: %s", store.ErrTaskNotFound, t.ID)
			}
		}
		return nil
	})
	if err != nil {
		return store.NewStoreError("task", "update", "failed to update tasks", err)
	}

	return nil
}

// DeleteTasks implements store.TaskStore.DeleteTasks.
func (s *TaskStore) DeleteTasks(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := store.WithinTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		for _, id := range ids {
			result, err := q.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id.String())
			if err != nil {
				return mapError(err)
			}
			if err := checkRowsAffected(result); err != nil {
				return fmt.Errorf("%w: %s", store.ErrTaskNotFound, id)
			}
		}
		return nil
	})
	if err != nil {
		return store.NewStoreError("task", "delete", "failed to delete tasks", err)
	}

	return nil
}

// GetTasks implements store.TaskStore.GetTasks.
func (s *TaskStore) GetTasks(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, store.NewStoreError("task", "query", "failed to query tasks", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	tasks := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, store.NewStoreError("task", "query", "failed to scan task", err)
		}
		if predicate.Match(t) {
			tasks = append(tasks, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("task", "query", "failed to iterate tasks", err)
	}

	return tasks, nil
}

// GetByID implements store.TaskStore.GetByID.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id.String())

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, store.ErrTaskNotFound
		}
		return nil, store.NewStoreError("task", "get", "failed to get task", mapError(err))
	}
	return t, nil
}

// GetCategories implements store.TaskStore.GetCategories.
func (s *TaskStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, store.NewStoreError("category", "query", "failed to query categories", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Name); err != nil {
			return nil, store.NewStoreError("category", "query", "failed to scan category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("category", "query", "failed to iterate categories", err)
	}

	return categories, nil
}

func ensureCategory(ctx context.Context, q store.DBTX, c domain.Category) error {
	_, err := q.ExecContext(ctx, `INSERT OR IGNORE INTO categories (name) VALUES (?)`, c.Name)
	return mapError(err)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.Task, error) {
	var (
		t                                     domain.Task
		id, dueDate, status, created, updated string
		concludedAt                           sql.NullString
	)

	if err := row.Scan(&id, &t.Title, &t.Category.Name, &dueDate, &status,
		&concludedAt, &created, &updated); err != nil {
		return nil, err
	}

	var err error
	if t.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid task id %q: %w", id, err)
	}
	if t.DueDate, err = parseDate(dueDate); err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", dueDate, err)
	}
	if t.ConcludedAt, err = parseTimePtr(concludedAt); err != nil {
		return nil, fmt.Errorf("invalid concluded_at: %w", err)
	}
	if t.CreatedAt, err = parseTime(created); err != nil {
		return nil, fmt.Errorf("invalid created_at %q: %w", created, err)
	}
	if t.UpdatedAt, err = parseTime(updated); err != nil {
		return nil, fmt.Errorf("invalid updated_at %q: %w", updated, err)
	}
	t.Status = domain.TaskStatus(status)

	return &t, nil
}

func validateTasks(tasks []*domain.Task) error {
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
