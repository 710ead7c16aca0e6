package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
)

// RegisterTaskHandler turns RegisterTask commands into stored tasks.
type RegisterTaskHandler struct {
	repo   TaskRepository
	logger *slog.Logger
}

var _ Handler[RegisterTask] = (*RegisterTaskHandler)(nil)

// NewRegisterTaskHandler creates a RegisterTaskHandler.
// If logger is nil, a default logger will be used.
func NewRegisterTaskHandler(repo TaskRepository, logger *slog.Logger) *RegisterTaskHandler {
	if repo == nil {
		// ALLOW-PANIC: constructor misuse
		panic("repo cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterTaskHandler{
		repo:   repo,
		logger: logger,
	}
}

// Execute builds a task from cmd and includes it in the repository.
//
// On success it logs once at debug level, naming the task, and returns
// Success. If the repository fails (or panics) the error is logged once at
// error level under the "error" key, exactly as returned, and a Failure
// wrapping it is returned. Commands the domain rejects never reach the
// repository and are logged at warn level.
func (h *RegisterTaskHandler) Execute(ctx context.Context, cmd RegisterTask) Result {
	log := executionLogger(ctx, h.logger, "register_task_handler")

	task, err := domain.NewTask(cmd.Title, cmd.Category, cmd.DueDate)
	if err != nil {
		log.WarnContext(ctx, "rejected register task command",
			slog.Any("error", err),
			slog.String("title", cmd.Title))
		return Failure(newCommandError("register_task", fmt.Errorf("%w: %w", ErrInvalidCommand, err)))
	}

	err = guard(func() error {
		return h.repo.IncludeTasks(ctx, task)
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to register task",
			slog.Any("error", err),
			slog.String("task_id", task.ID.String()),
			slog.String("title", task.Title))
		return Failure(newCommandError("register_task", err))
	}

	log.DebugContext(ctx, fmt.Sprintf("task registered: %s", task.Title),
		slog.String("task_id", task.ID.String()),
		slog.String("category", task.Category.Name),
		slog.Time("due_date", task.DueDate))
	return Success()
}
