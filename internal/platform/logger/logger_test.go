package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in    string
		level slog.Level
		ok    bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			level, ok := ParseLevel(tc.in)
			assert.Equal(t, tc.level, level)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestSetupInvalidLevelWarns(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var out, warnings bytes.Buffer
	l := setup(&out, &warnings, "loud")
	require.NotNil(t, l)

	assert.Contains(t, warnings.String(), "invalid log level configured")
	assert.Same(t, l, slog.Default())

	l.Debug("hidden")
	l.Info("visible")
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "visible")
}

func TestSetupInstallsDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	l := Setup(config.ServerConfig{LogLevel: "debug"})

	assert.Same(t, l, slog.Default())
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestNewRespectsLevel(t *testing.T) {
	var out bytes.Buffer
	l := New(&out, "warn")

	l.Info("dropped")
	l.Warn("kept")

	assert.NotContains(t, out.String(), "dropped")
	assert.Contains(t, out.String(), "kept")
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.Default()
	custom := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	//nolint:staticcheck // nil context is part of the contract
	assert.Same(t, fallback, FromContextOrDefault(nil, fallback))
	assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	assert.Same(t, custom, FromContextOrDefault(WithLogger(context.Background(), custom), fallback))
}

func TestWithLoggerNilPanics(t *testing.T) {
	assert.Panics(t, func() {
		WithLogger(context.Background(), nil)
	})
}

func TestWithRequestID(t *testing.T) {
	l, buf := GetTestLogger(t)
	ctx := WithLogger(context.Background(), l)
	ctx = WithRequestID(ctx, "req-123")

	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))

	FromContext(ctx).Info("hello")

	entries := buf.Entries(t)
	require.Len(t, entries, 1)
	assert.Equal(t, "req-123", entries[0]["request_id"])
	assert.Equal(t, "hello", entries[0]["msg"])
}
