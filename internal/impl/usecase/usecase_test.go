package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/services"
	repositoriesMemory "github.com/drujensen/taskcase/internal/impl/repositories/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"go.uber.org/zap"
)

type canonicalStatus interface {
	Status() status.Code
}

func assertStatus(t *testing.T, expected status.Code, err error) {
	t.Helper()

	var withStatus canonicalStatus
	require.True(t, errors.As(err, &withStatus), "error %v has no canonical status", err)
	assert.Equal(t, expected, withStatus.Status())
}

func newRepo(t *testing.T) *repositoriesMemory.MemoryTaskRepository {
	t.Helper()
	return repositoriesMemory.NewMemoryTaskRepository(zap.NewNop())
}

func TestCreateTask(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	u := CreateTask(services.NewCreateTaskInteractor(repo, zap.NewNop()))

	t.Run("created", func(t *testing.T) {
		out := CreateTaskOutput{}

		err := u.Interact(ctx, &CreateTaskInput{ID: 3, Name: "Buy milk"}, &out)

		require.NoError(t, err)
		assert.Equal(t, int64(3), out.ID)

		_, found, err := repo.ResolveByID(ctx, 3)
		require.NoError(t, err)
		assert.True(t, found)
	})

	t.Run("empty name", func(t *testing.T) {
		out := CreateTaskOutput{}

		err := u.Interact(ctx, &CreateTaskInput{ID: 4}, &out)

		assertStatus(t, status.InvalidArgument, err)
	})

	t.Run("storage fault", func(t *testing.T) {
		poisoned := newRepo(t)
		assert.Panics(t, func() { _ = poisoned.Store(ctx, nil) })

		err := CreateTask(services.NewCreateTaskInteractor(poisoned, zap.NewNop())).
			Interact(ctx, &CreateTaskInput{ID: 5, Name: "x"}, &CreateTaskOutput{})

		assertStatus(t, status.Internal, err)
	})
}

func TestFindTask(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	due := time.Date(2024, time.May, 18, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Store(ctx, entities.NewPostponeableUndoneTask(1, entities.MustTaskName("Water plants"), due)))
	require.NoError(t, repo.Store(ctx, entities.NewUndoneTask(2, entities.MustTaskName("Call mom"))))

	u := FindTask(repo)

	t.Run("postponeable", func(t *testing.T) {
		out := TaskView{}

		require.NoError(t, u.Interact(ctx, &FindTaskInput{ID: 1}, &out))

		assert.Equal(t, "Water plants", out.Name)
		assert.Equal(t, string(entities.TaskKindPostponeableUndone), out.Kind)
		require.NotNil(t, out.DueDate)
		assert.Equal(t, due, *out.DueDate)
	})

	t.Run("undone", func(t *testing.T) {
		out := TaskView{}

		require.NoError(t, u.Interact(ctx, &FindTaskInput{ID: 2}, &out))

		assert.Equal(t, string(entities.TaskKindUndone), out.Kind)
		assert.Nil(t, out.DueDate)
	})

	t.Run("not found", func(t *testing.T) {
		err := u.Interact(ctx, &FindTaskInput{ID: 3}, &TaskView{})

		assertStatus(t, status.NotFound, err)
	})
}

func TestFindTasks(t *testing.T) {
	ctx := context.Background()
	repo := newRepo(t)
	require.NoError(t, repo.Store(ctx, entities.NewUndoneTask(2, entities.MustTaskName("b"))))
	require.NoError(t, repo.Store(ctx, entities.NewUndoneTask(1, entities.MustTaskName("a"))))

	var out []TaskView
	require.NoError(t, FindTasks(repo).Interact(ctx, nil, &out))

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Name)
	assert.Equal(t, "b", out[1].Name)
}

func TestLogMiddleware(t *testing.T) {
	ctx := context.Background()
	failure := errors.New("failed")

	u := usecase.NewIOI(nil, nil, func(ctx context.Context, input, output interface{}) error {
		return failure
	})
	u.SetName("failing")

	wrapped := usecase.Wrap(u, LogMiddleware(zap.NewNop()))

	assert.ErrorIs(t, wrapped.Interact(ctx, nil, nil), failure)
}
