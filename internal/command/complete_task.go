package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/store"
)

// CompleteTaskHandler marks tasks as done.
type CompleteTaskHandler struct {
	repo   TaskRepository
	logger *slog.Logger
}

var _ Handler[CompleteTask] = (*CompleteTaskHandler)(nil)

// NewCompleteTaskHandler creates a CompleteTaskHandler.
// If logger is nil, a default logger will be used.
func NewCompleteTaskHandler(repo TaskRepository, logger *slog.Logger) *CompleteTaskHandler {
	if repo == nil {
		// ALLOW-PANIC: constructor misuse
		panic("repo cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CompleteTaskHandler{
		repo:   repo,
		logger: logger,
	}
}

// Execute loads the task, completes it and saves it. Unknown tasks
// (store.ErrTaskNotFound) and tasks already done (domain.ErrTaskAlreadyDone)
// are reported as failures logged at warn level; other failures at error level.
func (h *CompleteTaskHandler) Execute(ctx context.Context, cmd CompleteTask) Result {
	log := executionLogger(ctx, h.logger, "complete_task_handler")

	if cmd.At.IsZero() {
		err := fmt.Errorf("%w: completion time is required", ErrInvalidCommand)
		log.WarnContext(ctx, "rejected complete task command",
			slog.Any("error", err),
			slog.String("task_id", cmd.TaskID.String()))
		return Failure(newCommandError("complete_task", err))
	}

	var title string
	err := guard(func() error {
		task, err := h.repo.GetByID(ctx, cmd.TaskID)
		if err != nil {
			return err
		}
		title = task.Title

		if err := task.Complete(cmd.At); err != nil {
			return err
		}
		return h.repo.UpdateTasks(ctx, task)
	})
	if err != nil {
		level := slog.LevelError
		if errors.Is(err, store.ErrTaskNotFound) || errors.Is(err, domain.ErrTaskAlreadyDone) {
			level = slog.LevelWarn
		}
		log.LogAttrs(ctx, level, "failed to complete task",
			slog.Any("error", err),
			slog.String("task_id", cmd.TaskID.String()))
		return Failure(newCommandError("complete_task", err))
	}

	log.DebugContext(ctx, fmt.Sprintf("task completed: %s", title),
		slog.String("task_id", cmd.TaskID.String()),
		slog.Time("concluded_at", cmd.At.UTC()))
	return Success()
}
