package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/config"
	"task-tracker/internal/services"
)

// NextCommand handles the next command
type NextCommand struct {
	reporting    services.ReportingService
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewNextCommand creates a new next command handler
func NewNextCommand(app *App) *NextCommand {
	return &NextCommand{
		reporting:    app.reporting,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the next command, suggesting the highest-scoring open task
func (c *NextCommand) Execute(ctx context.Context, args []string) error {
	next, err := c.reporting.NextTask(ctx)
	if err != nil {
		if c.errorHandler.IsNotFoundError(err) {
			fmt.Println("No open tasks. Enjoy the quiet.")
			return nil
		}
		return c.errorHandler.Handle("pick next task", err)
	}

	fmt.Println(formatScoredTask(c.config, next))
	return nil
}
