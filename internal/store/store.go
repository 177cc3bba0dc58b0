package store

import (
	"context"
	"time"

	"momentum/internal/domain"
	"momentum/internal/logging"
	"momentum/internal/repository/sqlite"
	"momentum/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Store owns the in-memory task collection for the lifetime of the
// process and mirrors it to durable storage after every mutation.
// Operations are invoked strictly sequentially; the Store performs no
// locking of its own.
type Store struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TaskValidator
	tasks     []domain.Task
}

// New creates a Store backed by the given repository. Call Load before
// the first query or mutation.
func New(repo sqlite.Repository) *Store {
	return &Store{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validation.NewTaskValidator(),
		tasks:     []domain.Task{},
	}
}

// Load reads the durable snapshot into memory. It never fails: a
// missing, corrupt, or unreadable snapshot is treated as no prior data.
func (s *Store) Load(ctx context.Context) {
	records, err := s.repo.LoadTasks(ctx)
	if err != nil {
		logging.Warn("failed to load task snapshot, starting empty", zap.Error(err))
		s.tasks = []domain.Task{}
		return
	}

	tasks, err := s.mapper.Task.FromRecordSlice(records)
	if err != nil {
		logging.Warn("task snapshot failed to decode, starting empty", zap.Error(err))
		s.tasks = []domain.Task{}
		return
	}
	s.tasks = tasks
}

// Add creates a new task and persists the collection. A name that is
// blank after trimming is nothing to add: Add returns (nil, nil) and
// leaves the collection unchanged. A persist failure is returned as a
// recoverable warning; the task is still added in memory.
func (s *Store) Add(ctx context.Context, name string, isDailyHabit bool, dueDate time.Time) (*domain.Task, error) {
	if s.validator.IsBlank(name) {
		return nil, nil
	}

	cleanedName, err := s.validator.GetValidTaskName(name)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(cleanedName, isDailyHabit, dueDate)
	s.tasks = append(s.tasks, task)
	return &task, s.persist(ctx)
}

// Remove deletes the task with the given id and persists. Removing an
// unknown id is an idempotent no-op.
func (s *Store) Remove(ctx context.Context, id uuid.UUID) error {
	kept := s.tasks[:0]
	for _, task := range s.tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(s.tasks) {
		return nil
	}
	s.tasks = kept
	return s.persist(ctx)
}

// ToggleComplete flips the completion flag of the task with the given
// id, setting CompletedAt when the task becomes complete and clearing
// it when it becomes incomplete again. Toggling an unknown id is an
// idempotent no-op.
func (s *Store) ToggleComplete(ctx context.Context, id uuid.UUID) error {
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}

		s.tasks[i].IsCompleted = !s.tasks[i].IsCompleted
		if s.tasks[i].IsCompleted {
			now := timeNow()
			s.tasks[i].CompletedAt = &now
		} else {
			s.tasks[i].CompletedAt = nil
		}
		return s.persist(ctx)
	}
	return nil
}

// Snapshot returns a copy of the current collection for the query
// functions. The copy is deep: CompletedAt pointers are duplicated so
// writes through a snapshot never reach store state. Callers must not
// rely on any ordering.
func (s *Store) Snapshot() []domain.Task {
	snapshot := make([]domain.Task, len(s.tasks))
	for i, task := range s.tasks {
		if task.CompletedAt != nil {
			completedAt := *task.CompletedAt
			task.CompletedAt = &completedAt
		}
		snapshot[i] = task
	}
	return snapshot
}

// Len returns the number of tasks in the collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// persist serializes the full collection to durable storage. On failure
// the in-memory collection is left intact and the storage error is
// returned so the caller can surface it as a warning.
func (s *Store) persist(ctx context.Context) error {
	records := s.mapper.Task.ToRecordSlice(s.tasks)
	if err := s.repo.SaveTasks(ctx, records); err != nil {
		logging.Warn("failed to persist tasks", zap.Error(err))
		return err
	}
	return nil
}
