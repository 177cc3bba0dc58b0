package cli

import (
	"context"
	"fmt"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := c.app.api.ResolveTaskID(args[0])
	if err != nil {
		return c.app.errorHandler.Handle("delete task", err)
	}

	var name string
	for _, task := range c.app.api.AllTasks() {
		if task.ID == id {
			name = task.Name
			break
		}
	}

	if err := c.app.api.RemoveTask(ctx, id); err != nil {
		if handled := c.app.errorHandler.Handle("delete task", err); handled != nil {
			return handled
		}
	}

	fmt.Printf("Deleted: %s\n", name)
	return nil
}
