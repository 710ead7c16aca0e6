package shared_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name" validate:"required"`
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x"}`))
		var got sample
		require.NoError(t, shared.DecodeJSON(r, &got))
		assert.Equal(t, "x", got.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", http.NoBody)
		var got sample
		assert.ErrorIs(t, shared.DecodeJSON(r, &got), shared.ErrEmptyBody)
	})

	t.Run("unknown field", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"x","extra":1}`))
		var got sample
		err := shared.DecodeJSON(r, &got)
		require.Error(t, err)
		assert.NotErrorIs(t, err, shared.ErrEmptyBody)
	})
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	assert.NoError(t, shared.ValidateRequest(&sample{Name: "x"}))
	assert.Error(t, shared.ValidateRequest(&sample{}))
}
