package cli

import (
	"fmt"
	"strings"
	"time"

	"momentum/internal/api"
	"momentum/internal/config"
	"momentum/internal/domain"
	"momentum/internal/errors"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App carries the dependencies shared by all command handlers.
type App struct {
	api          api.API
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:          apiInstance,
		config:       cfg,
		errorHandler: NewErrorHandler(),
	}
}

// parseDate parses a user-supplied calendar date, e.g. "2026-09-01".
func (a *App) parseDate(value string) (time.Time, error) {
	date, err := domain.ParseDayKey(value)
	if err != nil {
		return time.Time{}, errors.NewInvalidInputError("date", value, "expected YYYY-MM-DD")
	}
	return date, nil
}

// shortID returns the id prefix shown next to each task. Eight hex
// characters is enough to disambiguate at personal scale.
func shortID(task domain.Task) string {
	return task.ID.String()[:8]
}

// formatTask renders one task as a list line.
func (a *App) formatTask(task domain.Task) string {
	var sb strings.Builder

	if task.IsCompleted {
		sb.WriteString("[x] ")
	} else {
		sb.WriteString("[ ] ")
	}
	sb.WriteString(shortID(task))
	sb.WriteString("  ")
	sb.WriteString(task.Name)

	var notes []string
	if task.IsDailyHabit {
		notes = append(notes, "habit")
	}
	if task.IsCompleted && task.CompletedAt != nil {
		notes = append(notes, "done "+task.CompletedAt.Format(a.config.Display.TimeFormat))
	} else {
		notes = append(notes, "due "+task.DueDate.Format(a.config.Display.DateFormat))
	}
	sb.WriteString("  (")
	sb.WriteString(strings.Join(notes, ", "))
	sb.WriteString(")")

	return sb.String()
}

// printTasks renders a task list with a heading, or a placeholder line
// when the list is empty.
func (a *App) printTasks(heading string, tasks []domain.Task) {
	fmt.Println(heading)
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, task := range tasks {
		fmt.Println("  " + a.formatTask(task))
	}
}
