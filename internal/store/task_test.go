package store

import (
	"testing"
	"time"

	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskPredicates(t *testing.T) {
	t.Parallel()

	task, err := domain.NewTask("Estudar xUnit", domain.Category{Name: "Estudo"}, time.Now())
	require.NoError(t, err)

	var none TaskPredicate
	assert.True(t, none.Match(task), "nil predicate matches everything")

	assert.True(t, ByTitle("Estudar xUnit").Match(task))
	assert.False(t, ByTitle("Estudar Moq").Match(task))
	assert.True(t, ByCategory("Estudo").Match(task))
	assert.False(t, ByCategory("Trabalho").Match(task))
	assert.True(t, ByStatus(domain.TaskStatusCreated).Match(task))
	assert.False(t, ByStatus(domain.TaskStatusDone).Match(task))

	assert.True(t, All(ByTitle("Estudar xUnit"), nil, ByCategory("Estudo")).Match(task))
	assert.False(t, All(ByTitle("Estudar xUnit"), ByStatus(domain.TaskStatusDone)).Match(task))
	assert.True(t, All().Match(task))
}
