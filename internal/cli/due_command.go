package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/parser"
	"task-tracker/internal/services"
)

// DueCommand handles the due date update command
type DueCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewDueCommand creates a new due command handler
func NewDueCommand(app *App) *DueCommand {
	return &DueCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the due command. The date argument accepts YYYY-MM-DD,
// relative words (tomorrow, friday), or "none" to clear the due date.
func (c *DueCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewValidationError("usage: tk due <task-id> <date|none>", nil)
	}
	ref, dateArg := args[0], args[1]

	if dateArg == "none" {
		task, err := c.tasks.UpdateDueDate(ctx, ref, nil)
		if err != nil {
			return c.errorHandler.Handle("clear task due date", err)
		}
		fmt.Printf("Cleared due date for task %s\n", task.ID)
		return nil
	}

	due, ok := parser.ResolveDate(dateArg, timeNow())
	if !ok {
		return c.errorHandler.HandleSimple(errors.NewValidationError(
			fmt.Sprintf("cannot parse due date %q, use YYYY-MM-DD or a word like tomorrow", dateArg), nil))
	}

	task, err := c.tasks.UpdateDueDate(ctx, ref, &due)
	if err != nil {
		return c.errorHandler.Handle("update task due date", err)
	}

	fmt.Printf("Updated task %s due date to %s\n", task.ID, due.Format("2006-01-02"))
	return nil
}
