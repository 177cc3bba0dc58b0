package api

import (
	"context"
	"strings"
	"time"

	"momentum/internal/domain"
	"momentum/internal/errors"
	"momentum/internal/habit"
	"momentum/internal/query"
	"momentum/internal/store"

	"github.com/google/uuid"
)

// API is the read/write surface the presentation layer consumes. Reads
// go through the pure query functions over a fresh store snapshot;
// writes go through the store's constrained mutation operations.
type API interface {
	// Mutating intents
	AddTask(ctx context.Context, name string, isDailyHabit bool, dueDate time.Time) (*domain.Task, error)
	RemoveTask(ctx context.Context, id uuid.UUID) error
	ToggleTask(ctx context.Context, id uuid.UUID) error

	// Startup
	StackDailyHabits(ctx context.Context) (int, error)

	// Queries
	AllTasks() []domain.Task
	TasksForDate(date time.Time) []domain.Task
	GroupedByDay() map[string][]domain.Task
	DailyHabits() []domain.Task
	OneTimeTasks() []domain.Task
	CompletedTasks() []domain.Task
	UpcomingTasks(from time.Time, horizonDays int) []domain.Task

	// ResolveTaskID resolves a (possibly partial) task id entered by the
	// user to the id of exactly one task.
	ResolveTaskID(prefix string) (uuid.UUID, error)
}

type apiImpl struct {
	store   *store.Store
	stacker *habit.Stacker
}

// New creates a new API instance.
func New(st *store.Store, stacker *habit.Stacker) API {
	return &apiImpl{
		store:   st,
		stacker: stacker,
	}
}

func (a *apiImpl) AddTask(ctx context.Context, name string, isDailyHabit bool, dueDate time.Time) (*domain.Task, error) {
	return a.store.Add(ctx, name, isDailyHabit, dueDate)
}

func (a *apiImpl) RemoveTask(ctx context.Context, id uuid.UUID) error {
	return a.store.Remove(ctx, id)
}

func (a *apiImpl) ToggleTask(ctx context.Context, id uuid.UUID) error {
	return a.store.ToggleComplete(ctx, id)
}

func (a *apiImpl) StackDailyHabits(ctx context.Context) (int, error) {
	return a.stacker.Run(ctx)
}

func (a *apiImpl) AllTasks() []domain.Task {
	return query.SortForDisplay(a.store.Snapshot())
}

func (a *apiImpl) TasksForDate(date time.Time) []domain.Task {
	return query.ForDate(a.store.Snapshot(), date)
}

func (a *apiImpl) GroupedByDay() map[string][]domain.Task {
	return query.GroupByDate(a.store.Snapshot())
}

func (a *apiImpl) DailyHabits() []domain.Task {
	return query.DailyHabits(a.store.Snapshot())
}

func (a *apiImpl) OneTimeTasks() []domain.Task {
	return query.OneTime(a.store.Snapshot())
}

func (a *apiImpl) CompletedTasks() []domain.Task {
	return query.Completed(a.store.Snapshot())
}

func (a *apiImpl) UpcomingTasks(from time.Time, horizonDays int) []domain.Task {
	return query.Upcoming(a.store.Snapshot(), from, horizonDays)
}

// ResolveTaskID matches a user-supplied id prefix against the current
// collection. The prefix must identify exactly one task; resolving is a
// convenience for the CLI, the store operations themselves stay
// idempotent on unknown ids.
func (a *apiImpl) ResolveTaskID(prefix string) (uuid.UUID, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return uuid.Nil, errors.NewInvalidInputError("task_id", prefix, "task id is required")
	}

	var matches []uuid.UUID
	for _, task := range a.store.Snapshot() {
		if strings.HasPrefix(task.ID.String(), prefix) {
			matches = append(matches, task.ID)
		}
	}

	switch len(matches) {
	case 0:
		return uuid.Nil, errors.NewNotFoundError("task", prefix)
	case 1:
		return matches[0], nil
	default:
		return uuid.Nil, errors.NewInvalidInputError("task_id", prefix, "matches more than one task, use a longer prefix")
	}
}
