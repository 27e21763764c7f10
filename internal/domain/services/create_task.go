package services

import (
	"context"
	"fmt"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/events"
	"github.com/drujensen/taskcase/internal/domain/interfaces"

	"go.uber.org/zap"
)

const (
	// legacyPostponeTargetID is the task postponed on every creation, whatever id the
	// command carries.
	legacyPostponeTargetID entities.TaskID = 1
	legacyPostponeBy                       = 24 * time.Hour
)

type CreateTaskCommand struct {
	ID   entities.TaskID
	Name entities.TaskName
}

type CreateTaskResult struct {
	ID entities.TaskID
}

type CreateTaskUseCase interface {
	Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error)
}

type CreateTaskOption func(*createTaskInteractor)

// WithClock replaces time.Now as the source of "today".
func WithClock(now func() time.Time) CreateTaskOption {
	return func(i *createTaskInteractor) {
		i.now = now
	}
}

type createTaskInteractor struct {
	taskRepo interfaces.TaskRepository
	logger   *zap.Logger
	now      func() time.Time
}

func NewCreateTaskInteractor(taskRepo interfaces.TaskRepository, logger *zap.Logger, opts ...CreateTaskOption) *createTaskInteractor {
	i := &createTaskInteractor{
		taskRepo: taskRepo,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Execute creates a postponeable task due tomorrow and stores it under cmd.ID.
//
// The repository lock is taken separately for each repository call, so the sequence as a
// whole is not atomic with respect to concurrent executions.
func (s *createTaskInteractor) Execute(ctx context.Context, cmd CreateTaskCommand) (*CreateTaskResult, error) {
	task := entities.NewPostponeableUndoneTask(cmd.ID, cmd.Name, entities.Tomorrow(s.now()))

	if err := s.postponeLegacyTarget(ctx); err != nil {
		return nil, err
	}

	if err := s.taskRepo.Store(ctx, task); err != nil {
		s.logger.Error("Failed to store task", zap.Stringer("id", cmd.ID), zap.Error(err))
		return nil, fmt.Errorf("store task %s: %w", cmd.ID, err)
	}
	events.PublishTaskCreatedEvent(task)

	s.logger.Info("Created task",
		zap.Stringer("id", cmd.ID),
		zap.Stringer("name", cmd.Name),
		zap.Time("due_date", task.DueDate()))

	return &CreateTaskResult{ID: cmd.ID}, nil
}

// postponeLegacyTarget postpones the task stored under legacyPostponeTargetID, if there is
// one and it can be postponed.
func (s *createTaskInteractor) postponeLegacyTarget(ctx context.Context) error {
	existing, found, err := s.taskRepo.ResolveByID(ctx, legacyPostponeTargetID)
	if err != nil {
		s.logger.Error("Failed to resolve task", zap.Stringer("id", legacyPostponeTargetID), zap.Error(err))
		return fmt.Errorf("resolve task %s: %w", legacyPostponeTargetID, err)
	}
	if !found {
		return nil
	}

	p, err := entities.TryPostpone(existing, legacyPostponeBy)
	if err != nil {
		return fmt.Errorf("postpone task %s: %w", legacyPostponeTargetID, err)
	}
	if p == nil {
		s.logger.Debug("Task cannot be postponed", zap.Stringer("id", legacyPostponeTargetID))
		return nil
	}

	events.PublishTaskPostponedEvent(p, legacyPostponeBy)
	s.logger.Debug("Postponed task", zap.Stringer("id", legacyPostponeTargetID), zap.Time("due_date", p.DueDate()))
	return nil
}

// verify interface implementation
var _ CreateTaskUseCase = &createTaskInteractor{}
