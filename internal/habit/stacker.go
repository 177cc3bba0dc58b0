// Package habit implements daily habit stacking: ensuring every known
// habit name has exactly one open task instance due today.
package habit

import (
	"context"
	"time"

	"momentum/internal/domain"
	"momentum/internal/logging"
	"momentum/internal/repository/sqlite"
	"momentum/internal/store"

	"go.uber.org/zap"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// Stacker creates today's instance of each known habit. A habit's
// identity is its name: renaming a habit starts a new lineage. The
// stacker only ever inserts tasks, it never mutates or removes them.
type Stacker struct {
	store *store.Store
	repo  sqlite.Repository
}

// NewStacker creates a new Stacker over the given store and repository.
func NewStacker(st *store.Store, repo sqlite.Repository) *Stacker {
	return &Stacker{
		store: st,
		repo:  repo,
	}
}

// Run performs one stacking pass and returns the number of task
// instances created. A persisted day marker makes the pass idempotent
// within a calendar day, including across repeated process starts. Run
// is called once at startup, before anything is rendered.
func (s *Stacker) Run(ctx context.Context) (int, error) {
	now := timeNow()
	today := domain.DayKey(now)

	lastStacked, err := s.repo.LastStackedDate(ctx)
	if err != nil {
		return 0, err
	}
	if lastStacked == today {
		return 0, nil
	}

	created := 0
	for _, name := range s.habitNames() {
		if s.hasInstanceDue(name, now) {
			continue
		}
		if _, err := s.store.Add(ctx, name, true, now); err != nil {
			return created, err
		}
		created++
	}

	if err := s.repo.SetLastStackedDate(ctx, today); err != nil {
		return created, err
	}

	if created > 0 {
		logging.Info("stacked daily habits",
			zap.Int("created", created),
			zap.String("day", today))
	}
	return created, nil
}

// habitNames projects the distinct habit names present anywhere in the
// collection, completed or not, any date, in encounter order.
func (s *Stacker) habitNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, task := range s.store.Snapshot() {
		if !task.IsDailyHabit || seen[task.Name] {
			continue
		}
		seen[task.Name] = true
		names = append(names, task.Name)
	}
	return names
}

// hasInstanceDue reports whether a habit instance with the given name
// is already due on the same calendar day as now.
func (s *Stacker) hasInstanceDue(name string, now time.Time) bool {
	for _, task := range s.store.Snapshot() {
		if task.IsDailyHabit && task.Name == name && task.DueOn(now) {
			return true
		}
	}
	return false
}
