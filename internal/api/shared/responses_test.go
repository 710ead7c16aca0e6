package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	shared.RespondWithJSON(rr, r, http.StatusCreated, map[string]bool{"success": true})

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true}`, rr.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		status    int
		wantLevel slog.Level
	}{
		{"client error logs at debug", http.StatusBadRequest, slog.LevelDebug},
		{"server error logs at error", http.StatusInternalServerError, slog.LevelError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, rec := testutils.NewRecordingLogger()
			ctx := shared.SetTraceID(context.Background(), "trace-123")
			ctx = logger.WithLogger(ctx, log)
			r := httptest.NewRequest(http.MethodGet, "/api/tasks", nil).WithContext(ctx)
			rr := httptest.NewRecorder()

			cause := errors.New("dial postgres://todo:hunter2@db:5432/todo failed")
			shared.RespondWithErrorAndLog(rr, r, tc.status, "Something failed", cause)

			assert.Equal(t, tc.status, rr.Code)
			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Equal(t, "Something failed", body.Error)
			assert.Equal(t, "trace-123", body.TraceID)
			assert.NotContains(t, rr.Body.String(), "hunter2")

			records := rec.Records()
			require.Len(t, records, 1)
			assert.Equal(t, tc.wantLevel, records[0].Level)
			logged, ok := records[0].Attr("error")
			require.True(t, ok)
			assert.NotContains(t, logged, "hunter2")
		})
	}
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := shared.SetTraceID(context.Background(), "")
	assert.Len(t, shared.GetTraceID(ctx), 32)
	assert.Equal(t, "abc", shared.GetTraceID(shared.SetTraceID(context.Background(), "abc")))
	assert.Empty(t, shared.GetTraceID(context.Background()))
}
