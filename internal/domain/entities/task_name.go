package entities

import (
	"strings"

	"github.com/drujensen/taskcase/internal/domain/errs"
)

// TaskName is the human readable name of a task. The zero value is not a valid name.
type TaskName struct {
	value string
}

func NewTaskName(value string) (TaskName, error) {
	if strings.TrimSpace(value) == "" {
		return TaskName{}, errs.ValidationErrorf("task name is required")
	}
	return TaskName{value: value}, nil
}

// MustTaskName is like NewTaskName but panics on an invalid name.
func MustTaskName(value string) TaskName {
	name, err := NewTaskName(value)
	if err != nil {
		panic(err)
	}
	return name
}

func (n TaskName) String() string {
	return n.value
}
