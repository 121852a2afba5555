package cli

import (
	"context"
	"fmt"

	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	reporting    services.ReportingService
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		reporting:    app.reporting,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	stats, err := c.reporting.GetStatistics(ctx)
	if err != nil {
		return c.errorHandler.Handle("compute statistics", err)
	}

	fmt.Printf("Total tasks: %d\n", stats.Total)
	fmt.Println("By status:")
	for _, status := range domain.Statuses() {
		fmt.Printf("  %s: %d\n", status, stats.ByStatus[status])
	}
	fmt.Println("By priority:")
	for _, priority := range domain.Priorities() {
		fmt.Printf("  %s: %d\n", priority, stats.ByPriority[priority])
	}
	fmt.Printf("Overdue tasks: %d\n", stats.Overdue)
	fmt.Printf("Completed in last 7 days: %d\n", stats.CompletedLastWeek)
	return nil
}
