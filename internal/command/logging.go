package command

import (
	"context"
	"log/slog"

	"github.com/phrazzld/todo-api/internal/platform/logger"
)

// executionLogger picks the logger for one Execute call: the context logger
// when the caller set one, otherwise fallback. Either way the record names
// the handler's component.
func executionLogger(ctx context.Context, fallback *slog.Logger, component string) *slog.Logger {
	return logger.FromContextOrDefault(ctx, fallback).With(slog.String("component", component))
}
