package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-tracker/internal/domain"
)

func TestCreateCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewCreateCommand(app)
	ctx := context.Background()

	t.Run("creates task from flags", func(t *testing.T) {
		err := cmd.Execute(ctx, CreateParams{
			Title:       "Write report",
			Description: "Q3 numbers",
			Priority:    "high",
			Due:         "tomorrow",
			Tags:        "work, reports",
		})
		require.NoError(t, err)
		require.Len(t, mock.tasks, 1)

		for _, task := range mock.tasks {
			assert.Equal(t, "Write report", task.Title)
			assert.Equal(t, domain.PriorityHigh, task.Priority)
			assert.Equal(t, []string{"work", "reports"}, task.Tags)
			require.NotNil(t, task.DueDate)
		}
	})

	t.Run("rejects invalid priority", func(t *testing.T) {
		err := cmd.Execute(ctx, CreateParams{Title: "x", Priority: "5"})
		assert.Error(t, err)
	})

	t.Run("rejects unparsable due date", func(t *testing.T) {
		err := cmd.Execute(ctx, CreateParams{Title: "x", Due: "someday"})
		assert.Error(t, err)
	})
}

func TestAddCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewAddCommand(app)

	err := cmd.Execute(context.Background(), []string{"Buy", "milk", "@shopping", "!3", "#friday"})
	require.NoError(t, err)
	require.Len(t, mock.tasks, 1)

	for _, task := range mock.tasks {
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, domain.PriorityHigh, task.Priority)
		assert.Equal(t, []string{"shopping"}, task.Tags)
	}
}

func TestListCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewListCommand(app)
	ctx := context.Background()

	_, err := mock.CreateTask(ctx, domain.Draft{Title: "one"})
	require.NoError(t, err)
	_, err = mock.CreateTask(ctx, domain.Draft{Title: "two", Priority: domain.PriorityUrgent})
	require.NoError(t, err)

	t.Run("lists all tasks", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, ListParams{}))
	})

	t.Run("lists with filters", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, ListParams{Status: "todo", Priority: "urgent"}))
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, ListParams{Status: "cancelled"}))
	})

	t.Run("rejects unknown priority filter", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, ListParams{Priority: "9"}))
	})
}

func TestStatusCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewStatusCommand(app)
	ctx := context.Background()

	task, err := mock.CreateTask(ctx, domain.Draft{Title: "work"})
	require.NoError(t, err)

	t.Run("updates status by id prefix", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ID[:8], "in_progress"}))
		assert.Equal(t, domain.StatusInProgress, mock.tasks[task.ID].Status)
	})

	t.Run("completion stamps completed_at", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ID, "done"}))
		require.NotNil(t, mock.tasks[task.ID].CompletedAt)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{task.ID, "cancelled"}))
	})

	t.Run("fails for missing task", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{"nonexistent", "todo"}))
	})

	t.Run("requires two arguments", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{task.ID}))
	})
}

func TestDueCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewDueCommand(app)
	ctx := context.Background()

	task, err := mock.CreateTask(ctx, domain.Draft{Title: "work"})
	require.NoError(t, err)

	t.Run("sets explicit date", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ID, "2025-04-01"}))
		require.NotNil(t, mock.tasks[task.ID].DueDate)
		assert.Equal(t, time.April, mock.tasks[task.ID].DueDate.Month())
	})

	t.Run("sets relative date", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ID, "tomorrow"}))
		require.NotNil(t, mock.tasks[task.ID].DueDate)
	})

	t.Run("clears with none", func(t *testing.T) {
		require.NoError(t, cmd.Execute(ctx, []string{task.ID, "none"}))
		assert.Nil(t, mock.tasks[task.ID].DueDate)
	})

	t.Run("rejects unparsable date", func(t *testing.T) {
		assert.Error(t, cmd.Execute(ctx, []string{task.ID, "whenever"}))
	})
}

func TestTagCommands_Execute(t *testing.T) {
	app, mock := setupTestApp()
	ctx := context.Background()

	task, err := mock.CreateTask(ctx, domain.Draft{Title: "work"})
	require.NoError(t, err)

	require.NoError(t, NewTagCommand(app).Execute(ctx, []string{task.ID, "home"}))
	assert.Equal(t, []string{"home"}, mock.tasks[task.ID].Tags)

	require.NoError(t, NewUntagCommand(app).Execute(ctx, []string{task.ID, "home"}))
	assert.Empty(t, mock.tasks[task.ID].Tags)

	// Removing an absent tag is an error
	assert.Error(t, NewUntagCommand(app).Execute(ctx, []string{task.ID, "home"}))
}

func TestDeleteCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewDeleteCommand(app)
	ctx := context.Background()

	task, err := mock.CreateTask(ctx, domain.Draft{Title: "doomed"})
	require.NoError(t, err)

	require.NoError(t, cmd.Execute(ctx, []string{task.ID}))
	assert.Empty(t, mock.tasks)

	assert.Error(t, cmd.Execute(ctx, []string{task.ID}))
}

func TestShowCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewShowCommand(app)
	ctx := context.Background()

	task, err := mock.CreateTask(ctx, domain.Draft{Title: "visible"})
	require.NoError(t, err)

	assert.NoError(t, cmd.Execute(ctx, []string{task.ID[:8]}))
	assert.Error(t, cmd.Execute(ctx, []string{"nonexistent"}))
}

func TestNextCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewNextCommand(app)
	ctx := context.Background()

	t.Run("empty collection is not an error", func(t *testing.T) {
		assert.NoError(t, cmd.Execute(ctx, nil))
	})

	t.Run("suggests open task", func(t *testing.T) {
		_, err := mock.CreateTask(ctx, domain.Draft{Title: "work"})
		require.NoError(t, err)
		assert.NoError(t, cmd.Execute(ctx, nil))
	})
}

func TestStatsCommand_Execute(t *testing.T) {
	app, mock := setupTestApp()
	cmd := NewStatsCommand(app)
	ctx := context.Background()

	_, err := mock.CreateTask(ctx, domain.Draft{Title: "work"})
	require.NoError(t, err)

	assert.NoError(t, cmd.Execute(ctx, nil))

	mock.failWith = assert.AnError
	assert.Error(t, cmd.Execute(ctx, nil))
}
