package migrate_test

import (
	"context"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteMigrator(t *testing.T) *migrate.Migrator {
	t.Helper()

	db, err := sqlite.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	m, err := migrate.New(config.DriverSQLite, db, nil)
	require.NoError(t, err)
	return m
}

func TestMigrator_UpDownStatus(t *testing.T) {
	ctx := context.Background()
	m := newSQLiteMigrator(t)

	v, err := m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, s := range statuses {
		assert.False(t, s.Applied, "migration %d should be pending", s.Version)
	}

	require.NoError(t, m.Up(ctx))

	v, err = m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	statuses, err = m.Status(ctx)
	require.NoError(t, err)
	for _, s := range statuses {
		assert.True(t, s.Applied, "migration %d should be applied", s.Version)
	}
	assert.Contains(t, statuses[0].Name, "00001_create_tasks.sql")

	require.NoError(t, m.Up(ctx), "a second up is a no-op")

	require.NoError(t, m.Down(ctx))
	v, err = m.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := migrate.New(config.DriverMemory, nil, nil)
	assert.ErrorIs(t, err, migrate.ErrUnsupportedDriver)
}
