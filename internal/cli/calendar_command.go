package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"momentum/internal/domain"
	"momentum/internal/errors"
)

// CalendarCommand handles the calendar command
type CalendarCommand struct {
	app *App
}

// NewCalendarCommand creates a new calendar command handler
func NewCalendarCommand(app *App) *CalendarCommand {
	return &CalendarCommand{app: app}
}

// Execute runs the calendar command
func (c *CalendarCommand) Execute(ctx context.Context, monthFlag string) error {
	month := timeNow()
	if monthFlag != "" {
		parsed, err := time.ParseInLocation("2006-01", monthFlag, time.Local)
		if err != nil {
			return c.app.errorHandler.Handle("show calendar",
				errors.NewInvalidInputError("month", monthFlag, "expected YYYY-MM"))
		}
		month = parsed
	}

	fmt.Print(renderCalendar(month, c.app.api.GroupedByDay()))
	return nil
}

// renderCalendar draws a month grid. Days with at least one task due
// carry a trailing asterisk.
func renderCalendar(month time.Time, groups map[string][]domain.Task) string {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var sb strings.Builder
	title := first.Format("January 2006")
	pad := (21 - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	sb.WriteString(strings.Repeat(" ", pad) + title + "\n")
	sb.WriteString("Su Mo Tu We Th Fr Sa\n")

	// Leading blanks up to the weekday of the 1st.
	col := int(first.Weekday())
	sb.WriteString(strings.Repeat("   ", col))

	for day := 1; day <= daysInMonth; day++ {
		date := first.AddDate(0, 0, day-1)
		mark := " "
		if len(groups[domain.DayKey(date)]) > 0 {
			mark = "*"
		}
		sb.WriteString(fmt.Sprintf("%2d%s", day, mark))

		col++
		if col == 7 {
			sb.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		sb.WriteString("\n")
	}
	return sb.String()
}
