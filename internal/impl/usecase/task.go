// Package usecase exposes the task services as swaggest use case interactors.
package usecase

import (
	"errors"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/errs"

	"github.com/swaggest/usecase/status"
)

// TaskView is the transport shape of a task.
type TaskView struct {
	ID      int64      `json:"id"`
	Name    string     `json:"name"`
	Kind    string     `json:"kind"`
	DueDate *time.Time `json:"due_date,omitempty"`
}

func NewTaskView(task entities.Task) TaskView {
	v := TaskView{
		ID:   int64(task.ID()),
		Name: task.Name().String(),
		Kind: string(task.Kind()),
	}
	if p, ok := task.(entities.Postponable); ok {
		due := p.DueDate()
		v.DueDate = &due
	}
	return v
}

// withStatus attaches the canonical status matching a domain error.
func withStatus(err error) error {
	var (
		validationErr *errs.ValidationError
		notFoundErr   *errs.NotFoundError
		faultErr      *errs.StorageFaultError
	)

	switch {
	case err == nil:
		return nil
	case errors.As(err, &validationErr):
		return status.Wrap(err, status.InvalidArgument)
	case errors.As(err, &notFoundErr):
		return status.Wrap(err, status.NotFound)
	case errors.As(err, &faultErr):
		return status.Wrap(err, status.Internal)
	default:
		return status.Wrap(err, status.Unknown)
	}
}
