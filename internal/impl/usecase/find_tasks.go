package usecase

import (
	"context"

	"github.com/drujensen/taskcase/internal/domain/entities"

	"github.com/swaggest/usecase"
)

// TaskLister lists every stored task in id order.
type TaskLister interface {
	List(ctx context.Context) ([]entities.Task, error)
}

// FindTasks creates usecase interactor.
func FindTasks(lister TaskLister) usecase.IOInteractor {
	u := usecase.NewIOI(nil, new([]TaskView), func(ctx context.Context, _, output interface{}) error {
		out := output.(*[]TaskView)

		tasks, err := lister.List(ctx)
		if err != nil {
			return withStatus(err)
		}

		views := make([]TaskView, 0, len(tasks))
		for _, t := range tasks {
			views = append(views, NewTaskView(t))
		}
		*out = views

		return nil
	})

	u.SetName("findTasks")
	u.SetDescription("Find all tasks.")
	u.SetTags("Tasks")

	return u
}
