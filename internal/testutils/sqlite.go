package testutils

import (
	"context"
	"database/sql"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/stretchr/testify/require"
)

// OpenSQLiteTestDB opens a private in-memory SQLite database with the
// schema applied. The database is closed when the test ends.
func OpenSQLiteTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, ":memory:")
	require.NoError(t, err, "Failed to open sqlite database")
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrate.New(config.DriverSQLite, db, nil)
	require.NoError(t, err, "Failed to create migrator")
	require.NoError(t, m.Up(ctx), "Failed to apply migrations")

	return db
}
