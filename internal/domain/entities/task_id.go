package entities

import "strconv"

// TaskID identifies a task within a repository.
type TaskID int64

func (id TaskID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
