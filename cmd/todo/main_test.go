package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs the todo CLI with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// useSQLite points the CLI at a fresh SQLite file for the duration of t.
func useSQLite(t *testing.T) {
	t.Helper()

	t.Setenv("TODO_SERVER_LOG_LEVEL", "error")
	t.Setenv("TODO_DATABASE_DRIVER", config.DriverSQLite)
	t.Setenv("TODO_DATABASE_URL", filepath.Join(t.TempDir(), "todo.db"))
}

func TestMigrateCommands(t *testing.T) {
	useSQLite(t)

	out, err := executeCommand(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	_, err = executeCommand(t, "migrate", "up")
	require.NoError(t, err)

	out, err = executeCommand(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = executeCommand(t, "migrate", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "00001_create_tasks.sql")
	assert.NotContains(t, out, "pending")

	_, err = executeCommand(t, "migrate", "down")
	require.NoError(t, err)

	out, err = executeCommand(t, "migrate", "version")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestMigrateRejectsMemoryDriver(t *testing.T) {
	t.Setenv("TODO_SERVER_LOG_LEVEL", "error")
	t.Setenv("TODO_DATABASE_DRIVER", config.DriverMemory)

	_, err := executeCommand(t, "migrate", "up")
	assert.ErrorContains(t, err, "memory driver")
}

func TestTaskLifecycle(t *testing.T) {
	useSQLite(t)

	out, err := executeCommand(t, "task", "register",
		"--title", "Estudar xUnit", "--category", "Estudo", "--due", "2022-02-19")
	require.NoError(t, err)
	assert.Equal(t, "task registered: Estudar xUnit\n", out)

	out, err = executeCommand(t, "task", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Estudar xUnit")
	assert.Contains(t, lines[1], "2022-02-19")
	assert.Contains(t, lines[1], "created")
	id := strings.Fields(lines[1])[0]

	_, err = executeCommand(t, "task", "deadlines", "--now", "2022-02-21T09:00:00Z")
	require.NoError(t, err)

	out, err = executeCommand(t, "task", "list", "--status", "overdue")
	require.NoError(t, err)
	assert.Contains(t, out, id)

	out, err = executeCommand(t, "task", "complete", id)
	require.NoError(t, err)
	assert.Equal(t, "task completed: "+id+"\n", out)

	_, err = executeCommand(t, "task", "complete", id)
	assert.Error(t, err, "completing a done task fails")

	out, err = executeCommand(t, "task", "list", "--category", "Estudo", "--status", "done")
	require.NoError(t, err)
	assert.Contains(t, out, id)
}

func TestTaskRegisterValidation(t *testing.T) {
	useSQLite(t)

	_, err := executeCommand(t, "task", "register", "--title", "a", "--category", "Estudo", "--due", "19/02/2022")
	assert.ErrorContains(t, err, "invalid --due")

	_, err = executeCommand(t, "task", "register", "--title", "   ", "--category", "Estudo", "--due", "2022-02-19")
	assert.Error(t, err)

	_, err = executeCommand(t, "task", "list", "--status", "archived")
	assert.ErrorContains(t, err, "invalid --status")
}

func TestRouter(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, LogLevel: "error"},
		Database: config.DatabaseConfig{Driver: config.DriverMemory},
	}
	log, logs := logger.GetTestLogger(t)

	app, err := newApplication(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(app.cleanup)

	initialized := logs.Find(t, "application initialized")
	require.NotNil(t, initialized)
	assert.Equal(t, config.DriverMemory, initialized["driver"])

	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Trace-ID"))

	resp, err = http.Post(srv.URL+"/api/tasks", "application/json",
		strings.NewReader(`{"title":"Estudar xUnit","category":"Estudo","due_date":"2022-02-19"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/categories")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestShutdownTimeout(t *testing.T) {
	app := &application{config: &config.Config{}}
	assert.Equal(t, "10s", app.shutdownTimeout().String())

	app.config.Server.ShutdownSeconds = 3
	assert.Equal(t, "3s", app.shutdownTimeout().String())
}
