package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/api"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/memory"
	"github.com/phrazzld/todo-api/internal/platform/migrate"
	"github.com/phrazzld/todo-api/internal/platform/postgres"
	"github.com/phrazzld/todo-api/internal/platform/sqlite"
	"github.com/phrazzld/todo-api/internal/redact"
	"github.com/phrazzld/todo-api/internal/store"
)

// application holds the shared dependencies of every subcommand and
// releases them on cleanup.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil for the memory driver.
	db        *sql.DB
	taskStore store.TaskStore
	commands  api.TaskHandlers
}

// newApplication opens the configured store, brings its schema up to date
// and builds the command handlers on top of it.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	db, err := openDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	app.db = db

	if db != nil {
		if err := migrateUp(ctx, cfg.Database.Driver, db, logger); err != nil {
			app.cleanup()
			return nil, err
		}
	}

	switch cfg.Database.Driver {
	case config.DriverPostgres:
		app.taskStore = postgres.NewPostgresTaskStore(db)
	case config.DriverSQLite:
		app.taskStore = sqlite.NewTaskStore(db)
	default:
		app.taskStore = memory.NewTaskStore()
	}

	app.commands = api.TaskHandlers{
		Register:  command.NewRegisterTaskHandler(app.taskStore, logger),
		Complete:  command.NewCompleteTaskHandler(app.taskStore, logger),
		Deadlines: command.NewManageDeadlinesHandler(app.taskStore, logger),
	}

	logger.Info("application initialized", slog.String("driver", cfg.Database.Driver))
	return app, nil
}

// openDatabase connects to the SQL database for cfg. It returns a nil
// *sql.DB for the memory driver.
func openDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory task store, tasks are lost on exit")
		return nil, nil
	case config.DriverPostgres:
		db, err = postgres.Open(ctx, cfg.URL)
	case config.DriverSQLite:
		db, err = sqlite.Open(ctx, cfg.URL)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.Driver, err)
	}

	logger.Info("database connection established",
		slog.String("driver", cfg.Driver),
		slog.String("url", redact.DatabaseURL(cfg.URL)))
	return db, nil
}

func migrateUp(ctx context.Context, driver string, db *sql.DB, logger *slog.Logger) error {
	m, err := migrate.New(driver, db, logger)
	if err != nil {
		return err
	}
	if err := m.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// cleanup releases the database connection, if any.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("error closing database connection", slog.Any("error", err))
		}
	}
}
