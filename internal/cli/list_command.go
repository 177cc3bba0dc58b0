package cli

import (
	"context"
	"time"
)

// ListCommand handles the list command
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, dateFlag string) error {
	selected, err := c.selectedOrToday(dateFlag)
	if err != nil {
		return c.app.errorHandler.Handle("list tasks", err)
	}

	tasks := c.app.api.TasksForDate(selected)
	c.app.printTasks("Tasks for "+selected.Format(c.app.config.Display.DateFormat)+":", tasks)
	return nil
}

// selectedOrToday returns the parsed date flag, or today when empty.
func (c *ListCommand) selectedOrToday(dateFlag string) (time.Time, error) {
	if dateFlag == "" {
		return timeNow(), nil
	}
	return c.app.parseDate(dateFlag)
}
