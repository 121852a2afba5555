package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"task-tracker/internal/config"
	"task-tracker/internal/logging"
	"task-tracker/internal/repository"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	config *config.Config
	app    *App
	store  repository.Store
}

// NewRootCommand creates the root cobra command with global flags. The
// store and services are opened lazily once flag overrides have been
// applied, so --store-dir and friends take effect.
func NewRootCommand(cfg *config.Config) *RootCommand {
	root := &RootCommand{config: cfg}
	root.init()
	return root
}

// NewRootCommandWithApp creates the root command around an existing app,
// bypassing store construction. Used by tests.
func NewRootCommandWithApp(app *App, cfg *config.Config) *RootCommand {
	root := &RootCommand{config: cfg, app: app}
	root.init()
	return root
}

func (r *RootCommand) init() {
	r.cmd = &cobra.Command{
		Use:   "tk",
		Short: "A command-line task tracker with automatic prioritization",
		Long: `Task Tracker (tk) is a command-line application for managing personal tasks.

Every task gets an importance score computed from its priority, due date,
status, tags, and age; listings are always sorted by that score, and
"tk next" tells you what to work on now.

EXAMPLES:
  tk create "Write report" -p high -u tomorrow -t work
  tk add "Buy milk @shopping !2 #friday"   # Quick-add with inline markers
  tk list                                  # All tasks, most important first
  tk list -s todo -o                       # Overdue tasks still on the board
  tk next                                  # The single task to do now
  tk status 1a2b3c4d in_progress           # IDs may be abbreviated to a prefix
  tk done 1a2b3c4d                         # Shortcut for status ... done
  tk stats                                 # Collection overview
  tk merge backup.json                     # Fold another store into this one

QUICK-ADD MARKERS:
  !1..!4 or !low/!medium/!high/!urgent     Priority
  @tag                                     Add a tag
  #tomorrow, #friday, #2025-04-01          Due date

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  Store Configuration:
    TK_STORE_DIR                           Store directory (default: ~/.tk)
    TK_STORE_FILENAME                      Store filename (default: tasks.json)
    TK_STORE_BACKEND                       Store backend: json or sqlite (default: json)
    TK_STORE_WRITE_TIMEOUT                 Write timeout (default: 5s)

  Scoring Configuration:
    TK_SCORING_BOOST_TAGS                  Comma-separated boost tags (default: urgent,critical,important)

  Display Configuration:
    TK_DISPLAY_TIME_FORMAT                 Timestamp format (default: 2006-01-02 15:04)
    TK_DISPLAY_DATE_FORMAT                 Date format (default: 2006-01-02)
    TK_DISPLAY_ID_WIDTH                    Displayed ID width (default: 8)

  Validation Configuration:
    TK_VALIDATION_TITLE_MIN                Min title length (default: 1)
    TK_VALIDATION_TITLE_MAX                Max title length (default: 255)
    TK_VALIDATION_TAG_MAX                  Max tag length (default: 64)

  Application Configuration:
    TK_APP_TIMEOUT                         Application timeout (default: 30s)
    TK_APP_VERBOSE                         Enable verbose output (default: false)

GETTING HELP:
  tk [command] --help                      # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := r.getConfigFromFlags(); err != nil {
				return err
			}
			if err := logging.Init(r.config.Application.Verbose); err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}
			return r.openApp()
		},
	}

	r.addGlobalFlags()
	r.addSubcommands()
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Close releases the store if this command opened one
func (r *RootCommand) Close() error {
	logging.Sync()
	if r.store != nil {
		return r.store.Close()
	}
	return nil
}

// openApp builds the store and services once the final config is known
func (r *RootCommand) openApp() error {
	if r.app != nil {
		return nil
	}

	store, err := NewStoreFromConfig(r.config)
	if err != nil {
		return fmt.Errorf("failed to open task store: %w", err)
	}
	r.store = store
	r.app = NewApp(NewServices(store, r.config), r.config)
	return nil
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// Store configuration
	flags.String("store-dir", "", "Store directory (overrides TK_STORE_DIR)")
	flags.String("store-filename", "", "Store filename (overrides TK_STORE_FILENAME)")
	flags.String("store-backend", "", "Store backend: json or sqlite (overrides TK_STORE_BACKEND)")

	// Scoring configuration
	flags.StringSlice("boost-tags", nil, "Tags that boost a task's score (overrides TK_SCORING_BOOST_TAGS)")

	// Display configuration
	flags.String("time-format", "", "Timestamp display format (overrides TK_DISPLAY_TIME_FORMAT)")
	flags.Int("id-width", 0, "Displayed task ID width (overrides TK_DISPLAY_ID_WIDTH)")

	// Application configuration
	flags.Duration("app-timeout", 0, "Application timeout (overrides TK_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TK_APP_VERBOSE)")
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if storeDir, _ := flags.GetString("store-dir"); storeDir != "" {
		r.config.Store.Dir = storeDir
	}
	if storeFilename, _ := flags.GetString("store-filename"); storeFilename != "" {
		r.config.Store.Filename = storeFilename
	}
	if backend, _ := flags.GetString("store-backend"); backend != "" {
		r.config.Store.Backend = config.StoreBackend(backend)
	}

	if boostTags, _ := flags.GetStringSlice("boost-tags"); len(boostTags) > 0 {
		r.config.Scoring.BoostTags = boostTags
	}

	if timeFormat, _ := flags.GetString("time-format"); timeFormat != "" {
		r.config.Display.TimeFormat = timeFormat
	}
	if idWidth, _ := flags.GetInt("id-width"); idWidth > 0 {
		r.config.Display.IDWidth = idWidth
	}

	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return r.config.Validate()
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	createCmd := &cobra.Command{
		Use:   "create [title]",
		Short: "Create a new task",
		Long: `Create a new task with explicit fields.

Examples:
  tk create "Write report"
  tk create "Write report" -d "Q3 numbers" -p high -u 2025-04-01 -t work,reports`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			params := CreateParams{Title: args[0]}
			params.Description, _ = cmd.Flags().GetString("description")
			params.Priority, _ = cmd.Flags().GetString("priority")
			params.Due, _ = cmd.Flags().GetString("due")
			params.Tags, _ = cmd.Flags().GetString("tags")

			return NewCreateCommand(r.app).Execute(ctx, params)
		},
	}
	createCmd.Flags().StringP("description", "d", "", "Task description")
	createCmd.Flags().StringP("priority", "p", "", "Task priority (1-4 or low/medium/high/urgent)")
	createCmd.Flags().StringP("due", "u", "", "Due date (YYYY-MM-DD or a word like tomorrow)")
	createCmd.Flags().StringP("tags", "t", "", "Comma-separated tags")

	addCmd := &cobra.Command{
		Use:   "add [text...]",
		Short: "Quick-add a task from a single line",
		Long: `Create a task from free-form text with inline markers.

Markers: !N or !name for priority, @tag for tags, #date for the due date.

Examples:
  tk add "Buy milk @shopping !2 #tomorrow"
  tk add Finish report for client !urgent #friday @work`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewAddCommand(r.app).Execute(ctx, args)
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks ordered by importance",
		Long: `List tasks sorted by descending importance score.

Examples:
  tk list                  # All tasks
  tk list -s todo          # Only tasks still to do
  tk list -p urgent        # Only urgent-priority tasks
  tk list -t work          # Only tasks tagged "work"
  tk list -o               # Only overdue tasks`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			var params ListParams
			params.Status, _ = cmd.Flags().GetString("status")
			params.Priority, _ = cmd.Flags().GetString("priority")
			params.Tag, _ = cmd.Flags().GetString("tag")
			params.Overdue, _ = cmd.Flags().GetBool("overdue")

			return NewListCommand(r.app).Execute(ctx, params)
		},
	}
	listCmd.Flags().StringP("status", "s", "", "Filter by status (todo, in_progress, review, done)")
	listCmd.Flags().StringP("priority", "p", "", "Filter by priority (1-4 or low/medium/high/urgent)")
	listCmd.Flags().StringP("tag", "t", "", "Filter by tag")
	listCmd.Flags().BoolP("overdue", "o", false, "Show only overdue tasks")

	nextCmd := &cobra.Command{
		Use:   "next",
		Short: "Show the task to work on now",
		Long:  "Show the highest-scoring open task with its score breakdown.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewNextCommand(r.app).Execute(ctx, args)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show [task-id]",
		Short: "Show task details",
		Long:  "Show a task's full details including its score breakdown. The ID may be abbreviated to a unique prefix.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	statusCmd := &cobra.Command{
		Use:   "status [task-id] [status]",
		Short: "Update task status",
		Long:  "Move a task to todo, in_progress, review, or done. Completing a task stamps its completion time.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatusCommand(r.app).Execute(ctx, args)
		},
	}

	doneCmd := &cobra.Command{
		Use:   "done [task-id]",
		Short: "Mark a task as done",
		Long:  "Shortcut for \"tk status <task-id> done\".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatusCommand(r.app).Execute(ctx, []string{args[0], "done"})
		},
	}

	priorityCmd := &cobra.Command{
		Use:   "priority [task-id] [priority]",
		Short: "Update task priority",
		Long:  "Set a task's priority to 1-4 or low/medium/high/urgent.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewPriorityCommand(r.app).Execute(ctx, args)
		},
	}

	dueCmd := &cobra.Command{
		Use:   "due [task-id] [date]",
		Short: "Update task due date",
		Long:  "Set a task's due date (YYYY-MM-DD or a word like tomorrow), or clear it with \"none\".",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDueCommand(r.app).Execute(ctx, args)
		},
	}

	tagCmd := &cobra.Command{
		Use:   "tag [task-id] [tag]",
		Short: "Add a tag to a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewTagCommand(r.app).Execute(ctx, args)
		},
	}

	untagCmd := &cobra.Command{
		Use:   "untag [task-id] [tag]",
		Short: "Remove a tag from a task",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewUntagCommand(r.app).Execute(ctx, args)
		},
	}

	deleteCmd := &cobra.Command{
		Use:   "delete [task-id]",
		Short: "Delete a task",
		Long:  "Delete a task permanently. This operation cannot be undone.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDeleteCommand(r.app).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show task statistics",
		Long:  "Show counts per status and priority, overdue tasks, and completions in the last seven days.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatsCommand(r.app).Execute(ctx, args)
		},
	}

	mergeCmd := &cobra.Command{
		Use:   "merge [store-file]",
		Short: "Merge another task store into this one",
		Long: `Merge the tasks from another JSON store file into the local store.

Tasks present on only one side are kept; diverged copies of the same task
are resolved automatically (newest edit wins, completion always wins,
tags are combined).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewMergeCommand(r.app).Execute(ctx, args)
		},
	}

	r.cmd.AddCommand(
		createCmd,
		addCmd,
		listCmd,
		nextCmd,
		showCmd,
		statusCmd,
		doneCmd,
		priorityCmd,
		dueCmd,
		tagCmd,
		untagCmd,
		deleteCmd,
		statsCmd,
		mergeCmd,
	)
}

// commandContext returns a context bounded by the configured app timeout
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	timeout := 30 * time.Second
	if r.config != nil {
		timeout = r.config.Application.Timeout
	}
	return context.WithTimeout(context.Background(), timeout)
}
