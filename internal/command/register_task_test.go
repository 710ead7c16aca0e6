package command_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/phrazzld/todo-api/internal/command"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/mocks"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/platform/memory"
	"github.com/phrazzld/todo-api/internal/store"
	"github.com/phrazzld/todo-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func studyCommand() command.RegisterTask {
	return command.NewRegisterTask(
		"Estudar xUnit",
		domain.Category{Name: "Estudo"},
		testutils.ReferenceDueDate,
	)
}

func TestRegisterTask_StoresTask(t *testing.T) {
	t.Parallel()

	repo := memory.NewTaskStore()
	handler := command.NewRegisterTaskHandler(repo, nil)

	result := handler.Execute(context.Background(), studyCommand())

	require.True(t, result.IsSuccess(), "unexpected failure: %v", result.Err())
	tasks, err := repo.GetTasks(context.Background(), store.ByTitle("Estudar xUnit"))
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Estudo", tasks[0].Category.Name)
	assert.True(t, tasks[0].DueDate.Equal(testutils.ReferenceDueDate))
	assert.Equal(t, domain.TaskStatusCreated, tasks[0].Status)
}

func TestRegisterTask_LogsSuccessOnce(t *testing.T) {
	t.Parallel()

	log, rec := testutils.NewRecordingLogger()
	handler := command.NewRegisterTaskHandler(memory.NewTaskStore(), log)

	cmd := command.NewRegisterTask(
		"Usar Moq para aprofundar conhecimento de API",
		domain.Category{Name: "Estudo"},
		testutils.ReferenceDueDate,
	)
	result := handler.Execute(context.Background(), cmd)

	require.True(t, result.IsSuccess())
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelDebug, records[0].Level)
	assert.Contains(t, records[0].Message, "Usar Moq para aprofundar conhecimento de API")
	assert.Equal(t, "register_task_handler", records[0].Attrs["component"])
}

func TestRegisterTask_RepositoryFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("Houve um erro na inclusão de tarefas")
	repo := new(MockTaskRepository)
	repo.On("IncludeTasks", mock.Anything, mock.AnythingOfType("[]*domain.Task")).
		Return(storeErr).
		Once()

	log, rec := testutils.NewRecordingLogger()
	handler := command.NewRegisterTaskHandler(repo, log)

	result := handler.Execute(context.Background(), studyCommand())

	assert.False(t, result.IsSuccess())
	assert.ErrorIs(t, result.Err(), storeErr)
	repo.AssertExpectations(t)
	repo.AssertNumberOfCalls(t, "IncludeTasks", 1)

	records := rec.Records()
	require.Len(t, records, 1, "exactly one log record expected")
	assert.Equal(t, slog.LevelError, records[0].Level)
	logged, ok := records[0].Attr("error")
	require.True(t, ok)
	assert.Same(t, storeErr, logged, "logged error must be the instance returned by the repository")
}

func TestRegisterTask_IncludesSingleTask(t *testing.T) {
	t.Parallel()

	repo := new(MockTaskRepository)
	repo.On("IncludeTasks", mock.Anything, mock.MatchedBy(func(tasks []*domain.Task) bool {
		return len(tasks) == 1 && tasks[0].Title == "Estudar xUnit"
	})).Return(nil).Once()

	result := command.NewRegisterTaskHandler(repo, nil).Execute(context.Background(), studyCommand())

	assert.True(t, result.IsSuccess())
	repo.AssertExpectations(t)
}

func TestRegisterTask_RepositoryPanic(t *testing.T) {
	t.Parallel()

	repo := new(MockTaskRepository)
	repo.On("IncludeTasks", mock.Anything, mock.Anything).Panic("connection reset")

	log, rec := testutils.NewRecordingLogger()
	handler := command.NewRegisterTaskHandler(repo, log)

	var result command.Result
	require.NotPanics(t, func() {
		result = handler.Execute(context.Background(), studyCommand())
	})

	assert.True(t, result.IsFailure())
	assert.ErrorIs(t, result.Err(), command.ErrStorePanic)
	assert.Contains(t, result.Err().Error(), "connection reset")
	require.Len(t, rec.RecordsAt(slog.LevelError), 1)
	assert.Len(t, rec.Records(), 1)
}

func TestRegisterTask_InvalidCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     command.RegisterTask
		wantErr error
	}{
		{
			name:    "blank title",
			cmd:     command.NewRegisterTask("  ", domain.Category{Name: "Estudo"}, testutils.ReferenceDueDate),
			wantErr: domain.ErrEmptyTaskTitle,
		},
		{
			name:    "missing category",
			cmd:     command.NewRegisterTask("Estudar xUnit", domain.Category{}, testutils.ReferenceDueDate),
			wantErr: domain.ErrEmptyCategoryName,
		},
		{
			name:    "missing due date",
			cmd:     command.RegisterTask{Title: "Estudar xUnit", Category: domain.Category{Name: "Estudo"}},
			wantErr: domain.ErrEmptyDueDate,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := new(MockTaskRepository)
			log, rec := testutils.NewRecordingLogger()
			handler := command.NewRegisterTaskHandler(repo, log)

			result := handler.Execute(context.Background(), tc.cmd)

			assert.True(t, result.IsFailure())
			assert.ErrorIs(t, result.Err(), command.ErrInvalidCommand)
			assert.ErrorIs(t, result.Err(), tc.wantErr)
			repo.AssertNotCalled(t, "IncludeTasks", mock.Anything, mock.Anything)

			records := rec.Records()
			require.Len(t, records, 1)
			assert.Equal(t, slog.LevelWarn, records[0].Level)
		})
	}
}

func TestRegisterTask_UsesContextLogger(t *testing.T) {
	t.Parallel()

	repo := new(MockTaskRepository)
	repo.On("IncludeTasks", mock.Anything, mock.Anything).Return(nil)

	fallback, fallbackRec := testutils.NewRecordingLogger()
	ctxLog, ctxRec := testutils.NewRecordingLogger()
	handler := command.NewRegisterTaskHandler(repo, fallback)

	ctx := logger.WithLogger(context.Background(), ctxLog)
	result := handler.Execute(ctx, studyCommand())

	require.True(t, result.IsSuccess())
	records := ctxRec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "register_task_handler", records[0].Attrs["component"])
	assert.Empty(t, fallbackRec.Records())
}

func TestNewRegisterTaskHandler_NilRepository(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		command.NewRegisterTaskHandler(nil, nil)
	})
}

func TestRegisterTask_RepositoryPanicsWithError(t *testing.T) {
	t.Parallel()

	panicErr := errors.New("driver: bad connection")
	repo := &mocks.MockTaskStore{
		IncludeTasksFn: func(context.Context, ...*domain.Task) error {
			panic(panicErr)
		},
	}

	result := command.NewRegisterTaskHandler(repo, nil).Execute(context.Background(), studyCommand())

	assert.ErrorIs(t, result.Err(), command.ErrStorePanic)
	assert.ErrorIs(t, result.Err(), panicErr)
	assert.Equal(t, 1, repo.Calls("IncludeTasks"))
}
