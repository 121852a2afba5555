package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/config"
	"task-tracker/internal/errors"
	"task-tracker/internal/services"
)

// ShowCommand handles the show command
type ShowCommand struct {
	reporting    services.ReportingService
	config       *config.Config
	errorHandler *ErrorHandler
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{
		reporting:    app.reporting,
		config:       app.config,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the show command, printing full task details with the
// score breakdown.
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tk show <task-id>", nil)
	}

	scored, err := c.reporting.ExplainTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("show task", err)
	}

	fmt.Println(formatScoredTask(c.config, scored))
	return nil
}
