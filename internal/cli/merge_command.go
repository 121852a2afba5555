package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"task-tracker/internal/errors"
	"task-tracker/internal/repository/jsonfile"
	"task-tracker/internal/services"
)

// MergeCommand handles the merge command
type MergeCommand struct {
	tasks        services.TaskService
	errorHandler *ErrorHandler
}

// NewMergeCommand creates a new merge command handler
func NewMergeCommand(app *App) *MergeCommand {
	return &MergeCommand{
		tasks:        app.tasks,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the merge command, folding another JSON store file into
// the local collection.
func (c *MergeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewValidationError("usage: tk merge <store-file>", nil)
	}
	path := args[0]

	if _, err := os.Stat(path); err != nil {
		return c.errorHandler.HandleSimple(errors.NewValidationError(
			fmt.Sprintf("cannot read store file %s", path), err))
	}

	other, err := jsonfile.New(path, 0755)
	if err != nil {
		return c.errorHandler.Handle("open store file", err)
	}
	defer other.Close()

	tasks, err := other.Load(ctx)
	if err != nil {
		return c.errorHandler.Handle("read store file", err)
	}

	summary, err := c.tasks.MergeCollection(ctx, tasks)
	if err != nil {
		return c.errorHandler.Handle("merge collections", err)
	}

	fmt.Printf("Merged %s: %d tasks total, %d added, %d updated\n",
		filepath.Base(path), summary.Total, summary.Created, summary.Updated)
	return nil
}
