package cli

import (
	"context"
	"fmt"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app *App
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{app: app}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.api.ResolveTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("toggle task", err)
	}

	if err := c.app.api.ToggleTask(ctx, id); err != nil {
		if handled := c.app.errorHandler.Handle("toggle task", err); handled != nil {
			return handled
		}
	}

	// Report the state the task ended up in. The task can vanish between
	// resolve and toggle only within this process, so a lookup miss here
	// means it was already gone; the toggle was a no-op then.
	for _, task := range c.app.api.AllTasks() {
		if task.ID == id {
			if task.IsCompleted {
				fmt.Printf("Completed: %s\n", task.Name)
			} else {
				fmt.Printf("Reopened: %s\n", task.Name)
			}
			return nil
		}
	}
	return nil
}
