package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/robfig/cron/v3"
)

// DefaultSchedule runs the sweep once an hour.
const DefaultSchedule = "@every 1h"

// DeadlineScheduler periodically executes ManageDeadlines.
type DeadlineScheduler struct {
	handler  command.Handler[command.ManageDeadlines]
	schedule string
	clock    func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger

	// runLogger is handed to the handler on each sweep; the handler adds
	// its own component attribute.
	runLogger *slog.Logger
}

// Option configures a DeadlineScheduler.
type Option func(*DeadlineScheduler)

// WithClock overrides the time source used for each sweep.
func WithClock(clock func() time.Time) Option {
	return func(s *DeadlineScheduler) {
		s.clock = clock
	}
}

// New creates a DeadlineScheduler for the given cron schedule. An empty
// schedule means DefaultSchedule. The schedule is validated here, so Start
// cannot fail on a malformed schedule.
// If logger is nil, a default logger will be used.
func New(
	handler command.Handler[command.ManageDeadlines],
	schedule string,
	logger *slog.Logger,
	opts ...Option,
) (*DeadlineScheduler, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler cannot be nil")
	}
	if schedule == "" {
		schedule = DefaultSchedule
	}
	if _, err := cron.ParseStandard(schedule); err != nil {
		return nil, fmt.Errorf("invalid deadline schedule %q: %w", schedule, err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &DeadlineScheduler{
		handler:   handler,
		schedule:  schedule,
		clock:     time.Now,
		logger:    logger.With(slog.String("component", "deadline_scheduler")),
		runLogger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	cronLog := cronLogger{logger: s.logger}
	s.cron = cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := s.cron.AddFunc(schedule, func() { s.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("failed to schedule deadline sweep: %w", err)
	}

	return s, nil
}

// Start begins running sweeps in the background.
func (s *DeadlineScheduler) Start() {
	s.logger.Info("deadline scheduler started", slog.String("schedule", s.schedule))
	s.cron.Start()
}

// Stop stops scheduling new sweeps and waits for a running one to finish,
// or for ctx to be done.
func (s *DeadlineScheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		s.logger.Info("deadline scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("deadline scheduler did not stop in time: %w", ctx.Err())
	}
}

// RunOnce performs a single sweep with the scheduler's clock.
func (s *DeadlineScheduler) RunOnce(ctx context.Context) command.Result {
	runID := uuid.New().String()
	ctx = logger.WithLogger(ctx, s.runLogger.With(slog.String("run_id", runID)))

	return s.handler.Execute(ctx, command.NewManageDeadlines(s.clock()))
}

// cronLogger adapts cron.Logger to slog.
type cronLogger struct {
	logger *slog.Logger
}

// Info implements cron.Logger. Cron's info messages are routine, so they
// are logged at debug level.
func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

// Error implements cron.Logger.
func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	args := append([]any{slog.Any("error", err)}, keysAndValues...)
	l.logger.Error("cron: "+msg, args...)
}
