package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// TagCommand handles the tag command
type TagCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewTagCommand creates a new tag command handler
func NewTagCommand(app *App) *TagCommand {
	return &TagCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the tag command
func (c *TagCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewValidationError("usage: tk tag <task-id> <tag>", nil)
	}

	task, err := c.tasks.AddTag(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("add tag", err)
	}

	fmt.Printf("Added tag %q to task %s\n", args[1], task.ID)
	return nil
}

// UntagCommand handles the untag command
type UntagCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewUntagCommand creates a new untag command handler
func NewUntagCommand(app *App) *UntagCommand {
	return &UntagCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the untag command
func (c *UntagCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewValidationError("usage: tk untag <task-id> <tag>", nil)
	}

	task, err := c.tasks.RemoveTag(ctx, args[0], args[1])
	if err != nil {
		return c.errorHandler.Handle("remove tag", err)
	}

	fmt.Printf("Removed tag %q from task %s\n", args[1], task.ID)
	return nil
}
