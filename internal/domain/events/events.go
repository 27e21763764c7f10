package events

import (
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/kelindar/event"
)

// Event types
const (
	TaskCreatedEventType   uint32 = 1
	TaskPostponedEventType uint32 = 2
)

// TaskCreatedEventData is published after a new task has been stored
type TaskCreatedEventData struct {
	ID      entities.TaskID
	Name    string
	Kind    entities.TaskKind
	DueDate time.Time
}

// TaskPostponedEventData is published after a stored task has been postponed in place
type TaskPostponedEventData struct {
	ID      entities.TaskID
	By      time.Duration
	DueDate time.Time
}

// Type implements the Event interface
func (t TaskCreatedEventData) Type() uint32 {
	return TaskCreatedEventType
}

// Type implements the Event interface
func (t TaskPostponedEventData) Type() uint32 {
	return TaskPostponedEventType
}

// PublishTaskCreatedEvent publishes a task created event
func PublishTaskCreatedEvent(task entities.Task) {
	data := TaskCreatedEventData{
		ID:   task.ID(),
		Name: task.Name().String(),
		Kind: task.Kind(),
	}
	if p, ok := task.(entities.Postponable); ok {
		data.DueDate = p.DueDate()
	}
	event.Emit(data)
}

// SubscribeToTaskCreatedEvents subscribes to task created events
func SubscribeToTaskCreatedEvents(handler func(data TaskCreatedEventData)) func() {
	return event.On(handler)
}

// PublishTaskPostponedEvent publishes a task postponed event
func PublishTaskPostponedEvent(task entities.Postponable, by time.Duration) {
	event.Emit(TaskPostponedEventData{ID: task.ID(), By: by, DueDate: task.DueDate()})
}

// SubscribeToTaskPostponedEvents subscribes to task postponed events
func SubscribeToTaskPostponedEvents(handler func(data TaskPostponedEventData)) func() {
	return event.On(handler)
}
