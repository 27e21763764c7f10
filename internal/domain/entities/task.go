package entities

import (
	"sync"
	"time"

	"github.com/drujensen/taskcase/internal/domain/errs"
)

type TaskKind string

const day = 24 * time.Hour

const (
	TaskKindUndone             TaskKind = "undone"
	TaskKindPostponeableUndone TaskKind = "postponeable_undone"
)

// Task is implemented by every task variant.
type Task interface {
	ID() TaskID
	Name() TaskName
	Kind() TaskKind
}

// Postponable is implemented by task variants whose due date can be pushed back.
// Due dates are calendar dates: midnight UTC of the day they name.
type Postponable interface {
	Task
	DueDate() time.Time
	Postpone(by time.Duration) error
}

// TryPostpone postpones t when its variant supports it and returns the postponed task.
// It returns nil and leaves t untouched when the variant has no postpone capability.
func TryPostpone(t Task, by time.Duration) (Postponable, error) {
	p, ok := t.(Postponable)
	if !ok {
		return nil, nil
	}
	if err := p.Postpone(by); err != nil {
		return nil, err
	}
	return p, nil
}

// Tomorrow returns the calendar date after the day now falls on in its own location.
func Tomorrow(now time.Time) time.Time {
	return CalendarDate(now).AddDate(0, 0, 1)
}

// CalendarDate drops the clock and zone from t, keeping the year, month and day t has
// in its own location.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type UndoneTask struct {
	id   TaskID
	name TaskName
}

func NewUndoneTask(id TaskID, name TaskName) *UndoneTask {
	return &UndoneTask{
		id:   id,
		name: name,
	}
}

func (t *UndoneTask) ID() TaskID {
	return t.id
}

func (t *UndoneTask) Name() TaskName {
	return t.name
}

func (t *UndoneTask) Kind() TaskKind {
	return TaskKindUndone
}

// PostponeableUndoneTask is an undone task with a due date. Postpone is safe to call
// on an instance shared between goroutines.
type PostponeableUndoneTask struct {
	id   TaskID
	name TaskName

	mu      sync.Mutex
	dueDate time.Time
}

func NewPostponeableUndoneTask(id TaskID, name TaskName, dueDate time.Time) *PostponeableUndoneTask {
	return &PostponeableUndoneTask{
		id:      id,
		name:    name,
		dueDate: CalendarDate(dueDate),
	}
}

func (t *PostponeableUndoneTask) ID() TaskID {
	return t.id
}

func (t *PostponeableUndoneTask) Name() TaskName {
	return t.name
}

func (t *PostponeableUndoneTask) Kind() TaskKind {
	return TaskKindPostponeableUndone
}

func (t *PostponeableUndoneTask) DueDate() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.dueDate
}

// Postpone moves the due date forward by the whole days in by. The part of by shorter
// than a day is dropped, so durations under 24h leave the due date unchanged. A negative
// duration is rejected and the due date never moves backwards.
func (t *PostponeableUndoneTask) Postpone(by time.Duration) error {
	if by < 0 {
		return errs.ValidationErrorf("cannot postpone task %s by negative duration %s", t.id, by)
	}
	days := int(by / day)
	if days == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.dueDate = t.dueDate.AddDate(0, 0, days)
	return nil
}

// verify interface implementation
var (
	_ Task        = &UndoneTask{}
	_ Postponable = &PostponeableUndoneTask{}
)
