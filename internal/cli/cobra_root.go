package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"taskmaster/internal/api"
	"taskmaster/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
	logger *zap.Logger
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config, logger *zap.Logger) *RootCommand {
	if logger == nil {
		logger = zap.NewNop()
	}
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
		logger: logger,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line personal task manager",
		Long: `TaskMaster (tm) is a command-line application for managing personal tasks
with due dates, priorities, categories, and location-based reminders.

FEATURES:
  • Add, edit, complete, and delete tasks
  • List tasks grouped by category, sorted by due date, priority, or category
  • Search tasks by title, description, category, due date, or priority
  • Location-aware alerts for tasks within 100 meters of your position
  • Due-date reminders with daily repeats for overdue tasks
  • Place search and reverse geocoding for task locations
  • Fully configurable via environment variables and command-line flags

EXAMPLES:
  tm add "Buy milk" category=Personal priority=low        # Add a simple task
  tm add "Submit report" due=2026-09-01 time=17:00        # Add a task with a due instant
  tm list                                                 # List all tasks grouped by category
  tm list sort=priority                                   # Sort by priority within sections
  tm list "report"                                        # Search before grouping
  tm edit 3 priority=high due=2026-09-02                  # Partially update a task
  tm complete 3                                           # Toggle completion
  tm nearby 51.5007 0.1246                                # Check for tasks near a position
  tm watch < positions.txt                                # Stream positions, one "lat,lng" per line
  tm place "coffee shop"                                  # Search for places (needs network)
  tm remind                                               # Re-register due-date reminders

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Database Configuration:
    TM_DB_DIR                              Database directory (default: ~/.taskmaster)
    TM_DB_FILENAME                         Database filename (default: tasks.db)
    TM_DB_QUERY_TIMEOUT                    Query timeout (default: 10s)
    TM_DB_WRITE_TIMEOUT                    Write timeout (default: 5s)

  Display Configuration:
    TM_DATE_FORMAT                         Due date format (default: 2006-01-02)
    TM_TIME_FORMAT                         Due time format (default: 15:04)

  Proximity Configuration:
    TM_PROXIMITY_THRESHOLD_METERS          Nearby alert radius (default: 100)
    TM_NOTIFY_NEARBY_DELAY                 Nearby alert trigger delay (default: 1s)

  Geocoder Configuration:
    TM_GEOCODER_BASE_URL                   Geocoding service base URL
    TM_GEOCODER_TIMEOUT                    Geocoding request timeout (default: 10s)

  Network Configuration:
    TM_NET_PROBE_ADDRESS                   Connectivity probe address (default: 1.1.1.1:443)
    TM_NET_CHECK_INTERVAL                  Connectivity check interval (default: 10s)

  Application Configuration:
    TM_APP_TIMEOUT                         Application timeout (default: 60s)
    TM_APP_VERBOSE                         Enable verbose output (default: false)
    TM_LOG_LEVEL                           Log level (default: info)
    TM_LOG_ENCODING                        Log encoding, console or json (default: console)

GETTING HELP:
  tm [command] --help                      # Get help for any specific command
  tm completion bash                       # Generate bash completion script
  tm completion zsh                        # Generate zsh completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Database configuration
	flags.String("db-dir", "", "Database directory (overrides TM_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TM_DB_FILENAME)")

	// Display configuration
	flags.String("date-format", "", "Due date format (overrides TM_DATE_FORMAT)")
	flags.String("time-format", "", "Due time format (overrides TM_TIME_FORMAT)")

	// Proximity configuration
	flags.Float64("proximity-threshold", 0, "Nearby alert radius in meters (overrides TM_PROXIMITY_THRESHOLD_METERS)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	// Add command
	addCmd := &cobra.Command{
		Use:   "add [title] [key=value ...]",
		Short: "Add a new task",
		Long: `Add a new task. Leading arguments form the title; trailing key=value
options set the remaining fields.

Options:
  desc=...       Task description
  due=DATE       Due date (default format 2006-01-02)
  time=TIME      Due time (default format 15:04)
  priority=...   none, low, medium, or high
  category=...   Category name (default Other)
  location=...   Location name
  lat=... lng=.. Location coordinates

Examples:
  tm add "Buy milk"
  tm add "Team standup" due=2026-09-01 time=09:30 category=Work priority=high`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewAddCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// List command
	listCmd := &cobra.Command{
		Use:   "list [query] [sort=duedate|priority|category]",
		Short: "List tasks grouped by category",
		Long: `List tasks grouped by category. A free-text query filters tasks by
title, description, category, due date, or priority before grouping.
Sections are always ordered alphabetically by category name; the sort
option orders the tasks within each section.

Examples:
  tm list                    # All tasks, sorted by due date
  tm list sort=priority      # All tasks, sorted by priority code
  tm list "report"           # Tasks matching "report"
  tm list work sort=category # Matching tasks, sorted by category`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewListCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Edit command
	editCmd := &cobra.Command{
		Use:   "edit <id> [key=value ...]",
		Short: "Edit an existing task",
		Long: `Edit an existing task. Only the fields given as key=value options are
changed; everything else keeps its stored value.

Examples:
  tm edit 3 title="New title"
  tm edit 3 due=2026-09-05 time=12:00 priority=medium`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewEditCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Complete command
	completeCmd := &cobra.Command{
		Use:   "complete <id>",
		Short: "Toggle a task's completion",
		Long:  "Mark a pending task complete, or reopen a completed one. Completing a task cancels its pending reminder.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewCompleteCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Delete command
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Long:  "Delete a task and cancel its pending reminder. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewDeleteCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Nearby command
	nearbyCmd := &cobra.Command{
		Use:   "nearby <lat> <lng>",
		Short: "Check for tasks near a position",
		Long: `Check for incomplete tasks whose location lies within the proximity
threshold (default 100 meters) of the given position. An alert is
requested for every task in range.

Example:
  tm nearby 51.5007 0.1246`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewNearbyCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Watch command
	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Stream positions and alert on nearby tasks",
		Long: `Read "lat,lng" lines from standard input and run the nearby check on
each position, printing alerts as tasks come into range. Ends at end
of input.

Example:
  tm watch < positions.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Watching is open-ended; it runs until the input closes.
			ctx := context.Background()

			return NewWatchCommand(NewAppWithConfig(r.api, r.config), os.Stdin, r.logger).Execute(ctx, args)
		},
	}

	// Place command
	placeCmd := &cobra.Command{
		Use:   "place <query> | place resolve <lat> <lng>",
		Short: "Search places or resolve a coordinate",
		Long: `Search for places matching a free-text query, or resolve a coordinate
back into a place name. Both operations require network connectivity.

Examples:
  tm place "coffee shop"
  tm place resolve 51.5007 0.1246`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewPlaceCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	// Remind command
	remindCmd := &cobra.Command{
		Use:   "remind",
		Short: "Re-register due-date reminders",
		Long: `Re-register a due notification for every incomplete task that has both
a due date and a due time. Overdue tasks get a daily repeating
reminder until completed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), r.getAppTimeout())
			defer cancel()

			return NewRemindCommand(NewAppWithConfig(r.api, r.config)).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		editCmd,
		completeCmd,
		deleteCmd,
		nearbyCmd,
		watchCmd,
		placeCmd,
		remindCmd,
	)
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	// Database configuration
	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}

	// Display configuration
	if dateFormat, _ := flags.GetString("date-format"); dateFormat != "" {
		r.config.Time.DateFormat = dateFormat
	}
	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Time.TimeFormat = timeFormat
	}

	// Proximity configuration
	if threshold, _ := flags.GetFloat64("proximity-threshold"); threshold > 0 {
		r.config.Proximity.ThresholdMeters = threshold
	}

	// Application configuration
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}
	if level, _ := flags.GetString("log-level"); level != "" {
		r.config.Logging.Level = level
	}

	return nil
}
