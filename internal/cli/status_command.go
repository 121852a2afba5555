package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// StatusCommand handles the status update command
type StatusCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewValidationError("usage: tk status <task-id> <status>", nil)
	}

	task, err := c.tasks.UpdateStatus(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("update task status", err)
	}

	fmt.Printf("Updated task %s status to %s\n", task.ID, task.Status)
	return nil
}
