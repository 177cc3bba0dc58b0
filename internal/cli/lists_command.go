package cli

import (
	"context"
)

// HabitsCommand lists the open daily habits.
type HabitsCommand struct {
	app *App
}

// NewHabitsCommand creates a new habits command handler
func NewHabitsCommand(app *App) *HabitsCommand {
	return &HabitsCommand{app: app}
}

// Execute runs the habits command
func (c *HabitsCommand) Execute(ctx context.Context) error {
	c.app.printTasks("Daily habits:", c.app.api.DailyHabits())
	return nil
}

// OneTimeCommand lists the open one-time tasks.
type OneTimeCommand struct {
	app *App
}

// NewOneTimeCommand creates a new onetime command handler
func NewOneTimeCommand(app *App) *OneTimeCommand {
	return &OneTimeCommand{app: app}
}

// Execute runs the onetime command
func (c *OneTimeCommand) Execute(ctx context.Context) error {
	c.app.printTasks("One-time tasks:", c.app.api.OneTimeTasks())
	return nil
}

// CompletedCommand lists completed tasks, newest completion first.
type CompletedCommand struct {
	app *App
}

// NewCompletedCommand creates a new completed command handler
func NewCompletedCommand(app *App) *CompletedCommand {
	return &CompletedCommand{app: app}
}

// Execute runs the completed command
func (c *CompletedCommand) Execute(ctx context.Context) error {
	c.app.printTasks("Completed:", c.app.api.CompletedTasks())
	return nil
}
