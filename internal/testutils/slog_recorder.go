package testutils

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecord is a captured log record. Attribute values are stored with
// Value.Any(), so an error logged with slog.Any("error", err) is the very
// same err value.
type LogRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// Attr returns the attribute stored under key.
func (r LogRecord) Attr(key string) (any, bool) {
	v, ok := r.Attrs[key]
	return v, ok
}

type recordSink struct {
	mu      sync.Mutex
	records []LogRecord
}

// RecordingHandler is a memory-backed slog.Handler for testing.
// Handlers derived with WithAttrs or WithGroup share the same sink.
type RecordingHandler struct {
	sink  *recordSink
	attrs []slog.Attr
	group string
}

// NewRecordingHandler creates a new memory-backed slog handler.
func NewRecordingHandler() *RecordingHandler {
	return &RecordingHandler{sink: &recordSink{}}
}

// NewRecordingLogger returns a logger backed by a fresh RecordingHandler.
func NewRecordingLogger() (*slog.Logger, *RecordingHandler) {
	h := NewRecordingHandler()
	return slog.New(h), h
}

// Enabled satisfies slog.Handler; every level is recorded.
func (h *RecordingHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle satisfies slog.Handler.
func (h *RecordingHandler) Handle(_ context.Context, r slog.Record) error {
	rec := LogRecord{
		Level:   r.Level,
		Message: r.Message,
		Attrs:   make(map[string]any, len(h.attrs)+r.NumAttrs()),
	}

	for _, a := range h.attrs {
		rec.Attrs[a.Key] = a.Value.Any()
	}
	r.Attrs(func(a slog.Attr) bool {
		key := a.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		rec.Attrs[key] = a.Value.Any()
		return true
	})

	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	h.sink.records = append(h.sink.records, rec)
	return nil
}

// WithAttrs satisfies slog.Handler.
func (h *RecordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	merged = append(merged, attrs...)
	return &RecordingHandler{sink: h.sink, attrs: merged, group: h.group}
}

// WithGroup satisfies slog.Handler. Grouped keys are flattened with a dot.
func (h *RecordingHandler) WithGroup(name string) slog.Handler {
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	return &RecordingHandler{sink: h.sink, attrs: h.attrs, group: group}
}

// Records returns all captured records in emission order.
func (h *RecordingHandler) Records() []LogRecord {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()

	out := make([]LogRecord, len(h.sink.records))
	copy(out, h.sink.records)
	return out
}

// RecordsAt returns the captured records with the given level.
func (h *RecordingHandler) RecordsAt(level slog.Level) []LogRecord {
	var out []LogRecord
	for _, r := range h.Records() {
		if r.Level == level {
			out = append(out, r)
		}
	}
	return out
}

// Clear resets the captured records.
func (h *RecordingHandler) Clear() {
	h.sink.mu.Lock()
	defer h.sink.mu.Unlock()
	h.sink.records = nil
}
