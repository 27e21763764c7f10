package interfaces

import (
	"context"

	"github.com/drujensen/taskcase/internal/domain/entities"
)

// TaskRepository stores tasks keyed by their id.
//
// ResolveByID reports absence with found == false and a nil error. Store inserts the task
// or replaces whatever was stored under the same id. Both return a
// *errs.StorageFaultError when the backing store is unusable.
type TaskRepository interface {
	ResolveByID(ctx context.Context, id entities.TaskID) (task entities.Task, found bool, err error)
	Store(ctx context.Context, task entities.Task) error
}
