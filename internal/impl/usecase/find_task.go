package usecase

import (
	"context"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/errs"
	"github.com/drujensen/taskcase/internal/domain/interfaces"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

type FindTaskInput struct {
	ID int64 `path:"id"`
}

// FindTask creates usecase interactor.
func FindTask(taskRepo interfaces.TaskRepository) usecase.IOInteractor {
	u := usecase.NewIOI(new(FindTaskInput), new(TaskView), func(ctx context.Context, input, output interface{}) error {
		var (
			in  = input.(*FindTaskInput)
			out = output.(*TaskView)
		)

		task, found, err := taskRepo.ResolveByID(ctx, entities.TaskID(in.ID))
		if err != nil {
			return withStatus(err)
		}
		if !found {
			return withStatus(errs.NotFoundErrorf("task not found: %d", in.ID))
		}

		*out = NewTaskView(task)
		return nil
	})

	u.SetName("findTask")
	u.SetDescription("Find task by ID.")
	u.SetExpectedErrors(
		status.NotFound,
		status.Internal,
	)
	u.SetTags("Tasks")

	return u
}
