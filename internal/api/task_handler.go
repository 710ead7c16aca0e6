package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/store"
)

// TaskReader is the read side of the task store used by the handlers.
type TaskReader interface {
	GetTasks(ctx context.Context, predicate store.TaskPredicate) ([]*domain.Task, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	GetCategories(ctx context.Context) ([]domain.Category, error)
}

// TaskHandlers groups the command handlers the HTTP layer dispatches to.
type TaskHandlers struct {
	Register  command.Handler[command.RegisterTask]
	Complete  command.Handler[command.CompleteTask]
	Deadlines command.Handler[command.ManageDeadlines]
}

// TaskHandler handles task-related HTTP requests.
type TaskHandler struct {
	commands TaskHandlers
	reader   TaskReader
	clock    func() time.Time
	logger   *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
// If logger is nil, a default logger will be used.
func NewTaskHandler(commands TaskHandlers, reader TaskReader, logger *slog.Logger) *TaskHandler {
	if commands.Register == nil || commands.Complete == nil || commands.Deadlines == nil {
		// ALLOW-PANIC: constructor misuse
		panic("all command handlers are required")
	}
	if reader == nil {
		// ALLOW-PANIC: constructor misuse
		panic("reader cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskHandler{
		commands: commands,
		reader:   reader,
		clock:    time.Now,
		logger:   logger.With(slog.String("component", "task_handler")),
	}
}

// WithClock replaces the time source used for completion and deadline
// sweeps that do not name a time.
func (h *TaskHandler) WithClock(clock func() time.Time) *TaskHandler {
	h.clock = clock
	return h
}

// Routes mounts the task endpoints on r.
func (h *TaskHandler) Routes(r chi.Router) {
	r.Route("/tasks", func(r chi.Router) {
		r.Post("/", h.RegisterTask)
		r.Get("/", h.ListTasks)
		r.Get("/{id}", h.GetTask)
		r.Post("/{id}/complete", h.CompleteTask)
	})
	r.Get("/categories", h.ListCategories)
	r.Post("/deadlines", h.ManageDeadlines)
}

// RegisterTask handles POST /api/tasks.
func (h *TaskHandler) RegisterTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Debug("invalid register task body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	category, err := domain.NewCategory(req.Category)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	dueDate, err := time.ParseInLocation(DateLayout, req.DueDate, time.UTC)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid due_date: invalid date format")
		return
	}

	result := h.commands.Register.Execute(r.Context(), command.NewRegisterTask(req.Title, category, dueDate))
	if result.IsFailure() {
		RespondWithFailure(w, r, result, "Failed to register task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, SuccessResponse{Success: true})
}

// ListTasks handles GET /api/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	predicate, err := taskFilterFromQuery(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid status filter", err)
		return
	}

	tasks, err := h.reader.GetTasks(r.Context(), predicate)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// GetTask handles GET /api/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task ID", err)
		return
	}

	task, err := h.reader.GetByID(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// CompleteTask handles POST /api/tasks/{id}/complete.
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid task ID", err)
		return
	}

	result := h.commands.Complete.Execute(r.Context(), command.NewCompleteTask(id, h.clock()))
	if result.IsFailure() {
		RespondWithFailure(w, r, result, "Failed to complete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ManageDeadlines handles POST /api/deadlines.
func (h *TaskHandler) ManageDeadlines(w http.ResponseWriter, r *http.Request) {
	var req ManageDeadlinesRequest
	if err := shared.DecodeJSON(r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	now := h.clock()
	if req.Now != nil {
		now = *req.Now
	}

	result := h.commands.Deadlines.Execute(r.Context(), command.NewManageDeadlines(now))
	if result.IsFailure() {
		RespondWithFailure(w, r, result, "Failed to manage deadlines")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories.
func (h *TaskHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.reader.GetCategories(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list categories")
		return
	}

	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{Name: c.Name})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, out)
}

// HealthCheck handles GET /health.
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
