package cli

import (
	"context"
	"fmt"
	"strings"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/parser"
	"task-tracker/internal/services"
)

// CreateParams carries the create command's flag values
type CreateParams struct {
	Title       string
	Description string
	Priority    string
	Due         string
	Tags        string
}

// CreateCommand handles the create command
type CreateCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(app *App) *CreateCommand {
	return &CreateCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the create command
func (c *CreateCommand) Execute(ctx context.Context, params CreateParams) error {
	draft := domain.Draft{
		Title:       params.Title,
		Description: params.Description,
	}

	if params.Priority != "" {
		priority, err := domain.ParsePriority(params.Priority)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		draft.Priority = priority
	}

	if params.Due != "" {
		due, ok := parser.ResolveDate(params.Due, timeNow())
		if !ok {
			return c.errorHandler.HandleSimple(errors.NewValidationError(
				fmt.Sprintf("cannot parse due date %q, use YYYY-MM-DD or a word like tomorrow", params.Due), nil))
		}
		draft.DueDate = &due
	}

	if params.Tags != "" {
		for _, tag := range strings.Split(params.Tags, ",") {
			draft.Tags = append(draft.Tags, strings.TrimSpace(tag))
		}
	}

	task, err := c.tasks.CreateTask(ctx, draft)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Printf("Created task with ID: %s\n", task.ID)
	return nil
}
