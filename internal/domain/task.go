package domain

import (
	"time"

	"github.com/google/uuid"
)

// Task represents a single to-do item in the domain model. A task is
// either one-time or a dated instance of a recurring daily habit; habits
// are identified only by their name, there is no separate habit entity.
type Task struct {
	ID           uuid.UUID
	Name         string
	IsDailyHabit bool
	IsCompleted  bool
	DueDate      time.Time
	CompletedAt  *time.Time // set iff IsCompleted
}

// NewTask creates a new incomplete Task with a freshly generated ID.
func NewTask(name string, isDailyHabit bool, dueDate time.Time) Task {
	return Task{
		ID:           uuid.New(),
		Name:         name,
		IsDailyHabit: isDailyHabit,
		DueDate:      dueDate,
	}
}

// DueOn reports whether the task is due on the same calendar day as t.
func (t Task) DueOn(day time.Time) bool {
	return DayKey(t.DueDate) == DayKey(day)
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
