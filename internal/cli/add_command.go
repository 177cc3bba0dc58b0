package cli

import (
	"context"
	"fmt"
	"strings"
)

// AddCommand handles the add command
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string, isDailyHabit bool, dateFlag string) error {
	name := strings.Join(args, " ")

	dueDate := timeNow()
	if dateFlag != "" {
		parsed, err := c.app.parseDate(dateFlag)
		if err != nil {
			return c.app.errorHandler.Handle("add task", err)
		}
		dueDate = parsed
	}

	task, err := c.app.api.AddTask(ctx, name, isDailyHabit, dueDate)
	if err != nil {
		// A persist failure is downgraded to a warning: the task exists
		// in memory, so it is still confirmed below.
		if handled := c.app.errorHandler.Handle("add task", err); handled != nil {
			return handled
		}
	}
	if task == nil {
		// Blank name: nothing to add.
		return nil
	}

	kind := "task"
	if task.IsDailyHabit {
		kind = "daily habit"
	}
	fmt.Printf("Added %s: %s (%s)\n", kind, task.Name, shortID(*task))
	return nil
}
