package cli

import (
	"context"
	"fmt"
)

// UpcomingCommand handles the upcoming command
type UpcomingCommand struct {
	app *App
}

// NewUpcomingCommand creates a new upcoming command handler
func NewUpcomingCommand(app *App) *UpcomingCommand {
	return &UpcomingCommand{app: app}
}

// Execute runs the upcoming command
func (c *UpcomingCommand) Execute(ctx context.Context, days int) error {
	if days <= 0 {
		days = c.app.config.Upcoming.HorizonDays
	}

	tasks := c.app.api.UpcomingTasks(timeNow(), days)
	c.app.printTasks(fmt.Sprintf("Upcoming in the next %d days:", days), tasks)
	return nil
}
