package repositories_memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/errs"
	"github.com/drujensen/taskcase/internal/domain/interfaces"

	"go.uber.org/zap"
)

// MemoryTaskRepository keeps tasks in a map guarded by a single mutex. Every operation
// holds the lock for its whole duration, so access is serialized.
//
// A panic raised while the lock is held poisons the repository: the lock is released,
// the panic continues, and every later call fails with a StorageFaultError.
type MemoryTaskRepository struct {
	mu       sync.Mutex
	poisoned bool
	data     map[entities.TaskID]entities.Task
	logger   *zap.Logger
}

func NewMemoryTaskRepository(logger *zap.Logger) *MemoryTaskRepository {
	return &MemoryTaskRepository{
		data:   make(map[entities.TaskID]entities.Task),
		logger: logger,
	}
}

func (r *MemoryTaskRepository) withLock(op string, fn func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.poisoned {
		return errs.StorageFaultErrorf("task repository is poisoned: %s refused", op)
	}

	defer func() {
		if p := recover(); p != nil {
			r.poisoned = true
			r.logger.Error("Task repository poisoned", zap.String("op", op), zap.Any("panic", p))
			panic(p)
		}
	}()

	fn()
	return nil
}

func (r *MemoryTaskRepository) ResolveByID(ctx context.Context, id entities.TaskID) (entities.Task, bool, error) {
	var (
		task  entities.Task
		found bool
	)

	err := r.withLock("resolve", func() {
		task, found = r.data[id]
	})
	if err != nil {
		return nil, false, err
	}

	r.logger.Debug("Resolved task", zap.Stringer("id", id), zap.Bool("found", found))
	return task, found, nil
}

func (r *MemoryTaskRepository) Store(ctx context.Context, task entities.Task) error {
	var id entities.TaskID

	err := r.withLock("store", func() {
		id = task.ID()
		r.data[id] = task
	})
	if err != nil {
		return err
	}

	r.logger.Debug("Stored task", zap.Stringer("id", id), zap.String("kind", string(task.Kind())))
	return nil
}

// List returns every stored task ordered by id.
func (r *MemoryTaskRepository) List(ctx context.Context) ([]entities.Task, error) {
	var tasks []entities.Task

	err := r.withLock("list", func() {
		tasks = make([]entities.Task, 0, len(r.data))
		for _, t := range r.data {
			tasks = append(tasks, t)
		}
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(tasks, func(a, b entities.Task) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return tasks, nil
}

// Len returns the number of stored tasks.
func (r *MemoryTaskRepository) Len() (int, error) {
	var n int
	if err := r.withLock("len", func() { n = len(r.data) }); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *MemoryTaskRepository) String() string {
	n, err := r.Len()
	if err != nil {
		return "MemoryTaskRepository(poisoned)"
	}
	return fmt.Sprintf("MemoryTaskRepository(%d tasks)", n)
}

var _ interfaces.TaskRepository = (*MemoryTaskRepository)(nil)
