package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tk delete <task-id>", nil)
	}

	if err := c.tasks.DeleteTask(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task %s\n", args[0])
	return nil
}
