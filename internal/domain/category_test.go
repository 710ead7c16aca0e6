package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Parallel()

	c, err := NewCategory("  Estudo ")
	require.NoError(t, err)
	assert.Equal(t, "Estudo", c.Name)
	assert.Equal(t, "Estudo", c.String())

	_, err = NewCategory(" ")
	assert.ErrorIs(t, err, ErrEmptyCategoryName)
	assert.ErrorIs(t, err, ErrValidation)
}
