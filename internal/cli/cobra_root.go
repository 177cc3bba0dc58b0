package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"momentum/internal/api"
	"momentum/internal/config"
	"momentum/internal/errors"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(apiInstance, cfg),
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "mm",
		Short: "A command-line task and daily-habit tracker",
		Long: `Momentum (mm) is a command-line tracker for one-time tasks and
recurring daily habits.

A daily habit is identified by its name: every day, each habit name you
have ever tracked gets a fresh open instance, created automatically the
first time mm runs that day.

EXAMPLES:
  mm add "Buy milk"                        # Add a one-time task for today
  mm add "Meditate" --habit                # Add a new daily habit
  mm add "File taxes" --date 2026-04-10    # Add a task for a future date
  mm list                                  # Today's open tasks
  mm done 3f2a                             # Toggle a task by id prefix
  mm delete 3f2a                           # Delete a task
  mm habits                                # Open daily habits
  mm onetime                               # Open one-time tasks
  mm completed                             # Completed tasks, newest first
  mm upcoming --days 14                    # Tasks due in the next two weeks
  mm calendar --month 2026-09              # Month grid of days with tasks
  mm output format=csv > tasks.csv         # Export everything to CSV

CONFIGURATION:
  MM_DB_DIR                                Database directory (default: ~/.momentum)
  MM_DB_FILENAME                           Database filename (default: momentum.db)
  MM_UPCOMING_DAYS                         Default upcoming window in days (default: 7)
  MM_DISPLAY_DATE_FORMAT                   Date format (default: 2006-01-02)
  MM_DISPLAY_TIME_FORMAT                   Timestamp format (default: 2006-01-02 15:04)
  MM_APP_TIMEOUT                           Application timeout (default: 30s)
  MM_LOG_DEV                               Verbose development logging (default: false)
  MM_ENV                                   production | development | testing`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Stack today's habit instances before any command renders.
			// The persisted day marker makes this a no-op on every run
			// after the first one of the day.
			_, err := root.api.StackDailyHabits(cmd.Context())
			if err != nil && errors.IsRecoverableWarning(err) {
				fmt.Fprintf(os.Stderr, "warning: %s\n", errors.GetUserMessage(err))
				return nil
			}
			return err
		},
	}

	root.addSubcommands()

	return root
}

// Execute runs the root command with the given context and arguments
func (r *RootCommand) Execute(ctx context.Context, args []string) error {
	r.cmd.SetArgs(args)
	return r.cmd.ExecuteContext(ctx)
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	addCmd := &cobra.Command{
		Use:   "add [task name]",
		Short: "Add a task or daily habit",
		Long: `Add a one-time task, or a daily habit with --habit.

The task is created for today unless --date selects another day. A name
that is blank after trimming whitespace is nothing to add; mm exits
quietly without changing anything.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			habit, _ := cmd.Flags().GetBool("habit")
			date, _ := cmd.Flags().GetString("date")
			return NewAddCommand(r.app).Execute(cmd.Context(), args, habit, date)
		},
	}
	addCmd.Flags().Bool("habit", false, "add as a recurring daily habit")
	addCmd.Flags().String("date", "", "due date (YYYY-MM-DD, default today)")

	doneCmd := &cobra.Command{
		Use:   "done [task id]",
		Short: "Toggle a task's completion",
		Long: `Toggle completion of the task whose id starts with the given
prefix. Completing a task records the completion time; toggling it
again reopens it and clears that time.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDoneCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task id]",
		Short: "Delete a task",
		Long:  "Delete the task whose id starts with the given prefix. Deleting is permanent.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewDeleteCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List open tasks for a day",
		Long:  "List the incomplete tasks due on the selected day (default today).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			return NewListCommand(r.app).Execute(cmd.Context(), date)
		},
	}
	listCmd.Flags().String("date", "", "day to list (YYYY-MM-DD, default today)")

	habitsCmd := &cobra.Command{
		Use:   "habits",
		Short: "List open daily habits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewHabitsCommand(r.app).Execute(cmd.Context())
		},
	}

	onetimeCmd := &cobra.Command{
		Use:   "onetime",
		Short: "List open one-time tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewOneTimeCommand(r.app).Execute(cmd.Context())
		},
	}

	completedCmd := &cobra.Command{
		Use:   "completed",
		Short: "List completed tasks, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewCompletedCommand(r.app).Execute(cmd.Context())
		},
	}

	upcomingCmd := &cobra.Command{
		Use:   "upcoming",
		Short: "List one-time tasks due soon",
		Long: `List the incomplete one-time tasks due after today and within the
next N days (today itself is excluded, day N is included).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days, _ := cmd.Flags().GetInt("days")
			return NewUpcomingCommand(r.app).Execute(cmd.Context(), days)
		},
	}
	upcomingCmd.Flags().Int("days", 0, "window size in days (default from MM_UPCOMING_DAYS)")

	calendarCmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar of task activity",
		Long:  "Render a month grid marking the days that have tasks due.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")
			return NewCalendarCommand(r.app).Execute(cmd.Context(), month)
		},
	}
	calendarCmd.Flags().String("month", "", "month to show (YYYY-MM, default current)")

	outputCmd := &cobra.Command{
		Use:   "output format=csv",
		Short: "Export data in specified format",
		Long: `Export all tasks in the specified format.

Supported formats:
  csv - Comma-separated values format

Example:
  mm output format=csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return NewOutputCommand(r.app).Execute(cmd.Context(), args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		doneCmd,
		deleteCmd,
		listCmd,
		habitsCmd,
		onetimeCmd,
		completedCmd,
		upcomingCmd,
		calendarCmd,
		outputCmd,
	)
}
