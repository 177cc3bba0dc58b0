package cli

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"momentum/internal/errors"
)

// OutputCommand handles the output command
type OutputCommand struct {
	app *App
}

// NewOutputCommand creates a new output command handler
func NewOutputCommand(app *App) *OutputCommand {
	return &OutputCommand{app: app}
}

// Execute runs the output command
func (c *OutputCommand) Execute(ctx context.Context, args []string) error {
	format := args[0]
	if !strings.HasPrefix(format, "format=") {
		return errors.NewInvalidInputError("format", format, "invalid format option")
	}

	format = strings.TrimPrefix(format, "format=")
	switch format {
	case "csv":
		return c.outputCSV()
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

// outputCSV writes all tasks to stdout in CSV format
func (c *OutputCommand) outputCSV() error {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	header := []string{"ID", "Name", "Daily Habit", "Completed", "Due Date", "Completed At"}
	if err := writer.Write(header); err != nil {
		return errors.NewStorageError("write CSV header", err)
	}

	for _, task := range c.app.api.AllTasks() {
		var completedAt string
		if task.CompletedAt != nil {
			completedAt = task.CompletedAt.Format(time.RFC3339)
		}

		row := []string{
			task.ID.String(),
			task.Name,
			strconv.FormatBool(task.IsDailyHabit),
			strconv.FormatBool(task.IsCompleted),
			task.DueDate.Format(time.RFC3339),
			completedAt,
		}
		if err := writer.Write(row); err != nil {
			return errors.NewStorageError("write CSV row", err)
		}
	}

	return nil
}
