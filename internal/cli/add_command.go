package cli

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/config"
	"task-tracker/internal/services"
)

// AddCommand handles the quick-add command
type AddCommand struct {
	tasks        services.TaskService
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new quick-add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		tasks:        app.tasks,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command. The whole argument list is treated as one
// quick-add line with inline markers.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")

	task, err := c.tasks.CreateFromText(ctx, text)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	fmt.Println(formatTask(c.config, task))
	return nil
}
