package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// ListParams carries the list command's flag values
type ListParams struct {
	Status   string
	Priority string
	Tag      string
	Overdue  bool
}

// ListCommand handles the list command
type ListCommand struct {
	tasks        services.TaskService
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		tasks:        app.tasks,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, params ListParams) error {
	opts := services.ListOptions{
		Tag:         params.Tag,
		OverdueOnly: params.Overdue,
	}

	if params.Status != "" {
		status, err := domain.ParseStatus(params.Status)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		opts.Status = &status
	}

	if params.Priority != "" {
		priority, err := domain.ParsePriority(params.Priority)
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		opts.Priority = &priority
	}

	tasks, err := c.tasks.ListTasks(ctx, opts)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found matching the criteria.")
		return nil
	}

	for _, task := range tasks {
		fmt.Println(formatTask(c.config, task))
		fmt.Println("--------------------------------------------------")
	}
	return nil
}
