package cli

import (
	"fmt"
	"strings"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/services"
)

var statusSymbols = map[domain.Status]string{
	domain.StatusTodo:       "[ ]",
	domain.StatusInProgress: "[>]",
	domain.StatusReview:     "[?]",
	domain.StatusDone:       "[x]",
}

// formatTask renders a task as a multi-line block for show and list output
func formatTask(cfg *config.Config, task *domain.Task) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s - %s %s\n",
		statusSymbols[task.Status], shortID(cfg, task.ID),
		task.Priority.Marker(), task.Title)

	if task.Description != "" {
		fmt.Fprintf(&b, "  %s\n", task.Description)
	}

	dueStr := "No due date"
	if task.DueDate != nil {
		dueStr = "Due: " + task.DueDate.Format(cfg.Display.DateFormat)
	}
	tagsStr := "No tags"
	if len(task.Tags) > 0 {
		tagsStr = "Tags: " + strings.Join(task.Tags, ", ")
	}
	fmt.Fprintf(&b, "  %s | %s\n", dueStr, tagsStr)

	fmt.Fprintf(&b, "  Created: %s", task.CreatedAt.Format(cfg.Display.TimeFormat))
	if task.CompletedAt != nil {
		fmt.Fprintf(&b, " | Completed: %s", task.CompletedAt.Format(cfg.Display.TimeFormat))
	}

	return b.String()
}

// formatScoredTask renders a task with its score breakdown
func formatScoredTask(cfg *config.Config, scored *services.ScoredTask) string {
	var b strings.Builder

	b.WriteString(formatTask(cfg, scored.Task))
	fmt.Fprintf(&b, "\n  Score: %.1f (priority %.1f, due date %.1f, status %.1f, tags %.1f, staleness %.1f)",
		scored.Score, scored.Breakdown.Priority, scored.Breakdown.DueDate,
		scored.Breakdown.Status, scored.Breakdown.Tags, scored.Breakdown.Recency)

	return b.String()
}

// shortID truncates a task ID to the configured display width
func shortID(cfg *config.Config, id string) string {
	width := cfg.Display.IDWidth
	if width <= 0 || len(id) <= width {
		return id
	}
	return id[:width]
}
