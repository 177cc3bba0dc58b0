// Package query derives views from a task snapshot. All functions are
// pure: they never mutate their input and hold no state, so every view
// is recomputed from the full snapshot on demand. Dataset sizes are
// personal-scale, which makes recomputation cheaper than maintaining
// incrementally-updated caches.
package query

import (
	"sort"
	"time"

	"momentum/internal/domain"
)

// SortForDisplay returns the snapshot in display order: incomplete
// tasks first, then by due date ascending. The sort is stable, so tasks
// that compare equal keep their encounter order.
func SortForDisplay(snapshot []domain.Task) []domain.Task {
	sorted := make([]domain.Task, len(snapshot))
	copy(sorted, snapshot)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].IsCompleted != sorted[j].IsCompleted {
			return !sorted[i].IsCompleted
		}
		return sorted[i].DueDate.Before(sorted[j].DueDate)
	})
	return sorted
}

// GroupByDate maps each calendar-day key to the tasks due on that day,
// in encounter order. Used to detect which calendar cells have activity.
func GroupByDate(snapshot []domain.Task) map[string][]domain.Task {
	groups := make(map[string][]domain.Task)
	for _, task := range snapshot {
		key := domain.DayKey(task.DueDate)
		groups[key] = append(groups[key], task)
	}
	return groups
}

// ForDate returns the incomplete tasks due exactly on the given
// calendar day, in display order. This populates the primary "targets
// for this day" list.
func ForDate(snapshot []domain.Task, date time.Time) []domain.Task {
	var tasks []domain.Task
	for _, task := range snapshot {
		if !task.IsCompleted && task.DueOn(date) {
			tasks = append(tasks, task)
		}
	}
	return SortForDisplay(tasks)
}

// DailyHabits returns the incomplete daily-habit tasks in display order.
func DailyHabits(snapshot []domain.Task) []domain.Task {
	var tasks []domain.Task
	for _, task := range snapshot {
		if !task.IsCompleted && task.IsDailyHabit {
			tasks = append(tasks, task)
		}
	}
	return SortForDisplay(tasks)
}

// OneTime returns the incomplete one-time tasks in display order.
func OneTime(snapshot []domain.Task) []domain.Task {
	var tasks []domain.Task
	for _, task := range snapshot {
		if !task.IsCompleted && !task.IsDailyHabit {
			tasks = append(tasks, task)
		}
	}
	return SortForDisplay(tasks)
}

// Completed returns the completed tasks, most recently completed first.
func Completed(snapshot []domain.Task) []domain.Task {
	var tasks []domain.Task
	for _, task := range snapshot {
		if task.IsCompleted {
			tasks = append(tasks, task)
		}
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		// CompletedAt is present on every completed task, but a snapshot
		// mutated outside the store could violate that.
		if tasks[i].CompletedAt == nil || tasks[j].CompletedAt == nil {
			return tasks[j].CompletedAt == nil && tasks[i].CompletedAt != nil
		}
		return tasks[i].CompletedAt.After(*tasks[j].CompletedAt)
	})
	return tasks
}

// Upcoming returns the incomplete one-time tasks whose due date falls
// within the day-granular window (from, from+horizonDays]: a task due
// on from itself is excluded, a task due exactly horizonDays later is
// included. Results are in display order.
func Upcoming(snapshot []domain.Task, from time.Time, horizonDays int) []domain.Task {
	windowStart := domain.DayStart(from)
	windowEnd := windowStart.AddDate(0, 0, horizonDays)

	var tasks []domain.Task
	for _, task := range snapshot {
		if task.IsCompleted || task.IsDailyHabit {
			continue
		}
		due := domain.DayStart(task.DueDate)
		if due.After(windowStart) && !due.After(windowEnd) {
			tasks = append(tasks, task)
		}
	}
	return SortForDisplay(tasks)
}
