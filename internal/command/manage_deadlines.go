package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/domain"
)

// ManageDeadlinesHandler flags open tasks whose due day has passed.
type ManageDeadlinesHandler struct {
	repo   TaskRepository
	logger *slog.Logger
}

var _ Handler[ManageDeadlines] = (*ManageDeadlinesHandler)(nil)

// NewManageDeadlinesHandler creates a ManageDeadlinesHandler.
// If logger is nil, a default logger will be used.
func NewManageDeadlinesHandler(repo TaskRepository, logger *slog.Logger) *ManageDeadlinesHandler {
	if repo == nil {
		// ALLOW-PANIC: constructor misuse
		panic("repo cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ManageDeadlinesHandler{
		repo:   repo,
		logger: logger,
	}
}

// Execute marks every created task due before cmd.Now's day as overdue and
// saves them with a single UpdateTasks call. Nothing is written when no
// task is late.
func (h *ManageDeadlinesHandler) Execute(ctx context.Context, cmd ManageDeadlines) Result {
	log := executionLogger(ctx, h.logger, "manage_deadlines_handler")

	if cmd.Now.IsZero() {
		err := fmt.Errorf("%w: reference time is required", ErrInvalidCommand)
		log.WarnContext(ctx, "rejected manage deadlines command", slog.Any("error", err))
		return Failure(newCommandError("manage_deadlines", err))
	}

	var late []*domain.Task
	err := guard(func() error {
		var err error
		late, err = h.repo.GetTasks(ctx, func(t *domain.Task) bool {
			return t.Status == domain.TaskStatusCreated && t.IsOverdue(cmd.Now)
		})
		if err != nil {
			return err
		}

		for _, t := range late {
			t.MarkOverdue(cmd.Now)
		}
		if len(late) == 0 {
			return nil
		}
		return h.repo.UpdateTasks(ctx, late...)
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to manage task deadlines",
			slog.Any("error", err),
			slog.Time("now", cmd.Now))
		return Failure(newCommandError("manage_deadlines", err))
	}

	log.DebugContext(ctx, fmt.Sprintf("%d task(s) marked overdue", len(late)),
		slog.Int("count", len(late)),
		slog.Time("now", cmd.Now))
	return Success()
}
