package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

const taskColumns = `id, title, category_name, due_date, status, concluded_at, created_at, updated_at`

// PostgresTaskStore implements the store.TaskStore interface
// using a PostgreSQL database as the storage backend.
type PostgresTaskStore struct {
	db store.DBTX
}

// NewPostgresTaskStore creates a new PostgreSQL implementation of the TaskStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// The store does not log: failures are returned to the caller, which reports them.
func NewPostgresTaskStore(db store.DBTX) *PostgresTaskStore {
	if db == nil {
		// ALLOW-PANIC: constructor misuse
		panic("db cannot be nil")
	}

	return &PostgresTaskStore{db: db}
}

// Ensure PostgresTaskStore implements store.TaskStore interface
var _ store.TaskStore = (*PostgresTaskStore)(nil)

// WithTx returns a store that runs every statement on tx.
func (s *PostgresTaskStore) WithTx(tx *sql.Tx) *PostgresTaskStore {
	return &PostgresTaskStore{db: tx}
}

// IncludeTasks implements store.TaskStore.IncludeTasks.
// All tasks are inserted in one transaction; categories are created on demand.
func (s *PostgresTaskStore) IncludeTasks(ctx context.Context, tasks ...*domain.Task) error {
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

			_, err := q.ExecContext(ctx, `
				INSERT INTO tasks (`+taskColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				t.ID, t.Title, t.Category.Name, t.DueDate, string(t.Status),
				timeOrNil(t.ConcludedAt), t.CreatedAt.UTC(), t.UpdatedAt.UTC(),
			)
			if err != nil {
				if IsUniqueViolation(err) {
					return fmt.Errorf("%w: %s", store.ErrTaskExists, t.ID)
				}
				return MapError(err)
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
func (s *PostgresTaskStore) UpdateTasks(ctx context.Context, tasks ...*domain.Task) error {
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
				SET title = $2, category_name = $3, due_date = $4, status = $5,
					concluded_at = $6, updated_at = $7
				WHERE id = $1`,
				t.ID, t.Title, t.Category.Name, t.DueDate, string(t.Status),
				timeOrNil(t.ConcludedAt), t.UpdatedAt.UTC(),
			)
			if err != nil {
				return MapError(err)
			}
			if err := CheckRowsAffected(result, "task"); err != nil {
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
func (s *PostgresTaskStore) DeleteTasks(ctx context.Context, ids ...uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	err := store.WithinTx(ctx, s.db, func(ctx context.Context, q store.DBTX) error {
		for _, id := range ids {
			result, err := q.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
			if err != nil {
				return MapError(err)
			}
			if err := CheckRowsAffected(result, "task"); err != nil {
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
// Predicates are Go functions, so rows are filtered after they are read.
func (s *PostgresTaskStore) GetTasks(
	ctx context.Context,
	predicate store.TaskPredicate,
) ([]*domain.Task, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+taskColumns+` FROM tasks ORDER BY seq`)
	if err != nil {
		return nil, store.NewStoreError("task", "query", "failed to query tasks", MapError(err))
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
func (s *PostgresTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id)

	t, err := scanTask(row)
	if err != nil {
		if IsNotFoundError(err) {
			return nil, store.ErrTaskNotFound
		}
		return nil, store.NewStoreError("task", "get", "failed to get task", MapError(err))
	}
	return t, nil
}

// GetCategories implements store.TaskStore.GetCategories.
func (s *PostgresTaskStore) GetCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, store.NewStoreError("category", "query", "failed to query categories", MapError(err))
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
	_, err := q.ExecContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, c.Name)
	return MapError(err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var (
		t           domain.Task
		status      string
		concludedAt sql.NullTime
	)

	err := row.Scan(
		&t.ID, &t.Title, &t.Category.Name, &t.DueDate, &status,
		&concludedAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = domain.TaskStatus(status)
	t.DueDate = domain.StartOfDay(t.DueDate)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if concludedAt.Valid {
		at := concludedAt.Time.UTC()
		t.ConcludedAt = &at
	}
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

// timeOrNil keeps nil pointers as SQL NULL.
func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}
