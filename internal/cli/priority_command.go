package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// PriorityCommand handles the priority update command
type PriorityCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the priority command
func (c *PriorityCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewValidationError("usage: tk priority <task-id> <priority>", nil)
	}

	task, err := c.tasks.UpdatePriority(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("update task priority", err)
	}

	fmt.Printf("Updated task %s priority to %s\n", task.ID, task.Priority)
	return nil
}
