package usecase

import (
	"context"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/services"

	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
)

type CreateTaskInput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CreateTaskOutput struct {
	ID int64 `json:"id"`
}

// CreateTask creates usecase interactor.
func CreateTask(createTask services.CreateTaskUseCase) usecase.IOInteractor {
	u := usecase.NewIOI(new(CreateTaskInput), new(CreateTaskOutput), func(ctx context.Context, input, output interface{}) error {
		var (
			in  = input.(*CreateTaskInput)
			out = output.(*CreateTaskOutput)
		)

		name, err := entities.NewTaskName(in.Name)
		if err != nil {
			return withStatus(err)
		}

		result, err := createTask.Execute(ctx, services.CreateTaskCommand{
			ID:   entities.TaskID(in.ID),
			Name: name,
		})
		if err != nil {
			return withStatus(err)
		}

		out.ID = int64(result.ID)
		return nil
	})

	u.SetName("createTask")
	u.SetDescription("Create task due tomorrow.")
	u.SetExpectedErrors(
		status.InvalidArgument,
		status.Internal,
	)
	u.SetTags("Tasks")

	return u
}
