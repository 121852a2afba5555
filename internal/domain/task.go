package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Task is the central entity of the tracker. Mutation goes through the
// helper methods so the timestamps and the completion invariant
// (CompletedAt set exactly when Status is done) stay consistent.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	Tags        []string   `json:"tags"`
	DueDate     *time.Time `json:"due_date"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at"`
}

// Draft holds the validated fields for a task that has not been created yet.
// The quick-add parser and the create command both produce drafts; the
// service turns a draft into a Task.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
}

// NewTask creates a task from a draft with a fresh identifier and timestamps.
// Zero-valued draft fields fall back to the documented defaults.
func NewTask(draft Draft, now time.Time) *Task {
	priority := draft.Priority
	if priority == 0 {
		priority = DefaultPriority
	}

	return &Task{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(draft.Title),
		Description: draft.Description,
		Priority:    priority,
		Status:      DefaultStatus,
		Tags:        NormalizeTags(draft.Tags),
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// MarkDone transitions the task into the done state and stamps the
// completion time. Marking an already-done task is a no-op so the original
// completion timestamp is never overwritten.
func (t *Task) MarkDone(now time.Time) {
	if t.Status == StatusDone && t.CompletedAt != nil {
		return
	}
	t.Status = StatusDone
	completed := now
	t.CompletedAt = &completed
	t.UpdatedAt = now
}

// SetStatus assigns a status from the closed set. The done status delegates
// to MarkDone for its completion side effect; leaving the done state keeps
// CompletedAt as a historical record.
func (t *Task) SetStatus(status Status, now time.Time) error {
	if !status.IsValid() {
		return fmt.Errorf("status %q is not a member of the status set", status)
	}
	if status == StatusDone {
		t.MarkDone(now)
		return nil
	}
	t.Status = status
	t.UpdatedAt = now
	return nil
}

// SetPriority assigns a priority from the closed set
func (t *Task) SetPriority(priority Priority, now time.Time) error {
	if !priority.IsValid() {
		return fmt.Errorf("priority %d is not a member of the priority set", priority)
	}
	t.Priority = priority
	t.UpdatedAt = now
	return nil
}

// SetDueDate assigns or clears the due date
func (t *Task) SetDueDate(dueDate *time.Time, now time.Time) {
	t.DueDate = dueDate
	t.UpdatedAt = now
}

// SetTitle assigns a new title
func (t *Task) SetTitle(title string, now time.Time) {
	t.Title = strings.TrimSpace(title)
	t.UpdatedAt = now
}

// AddTag adds a label to the tag set, returning false if it was already present
func (t *Task) AddTag(tag string, now time.Time) bool {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return false
	}
	for _, existing := range t.Tags {
		if existing == trimmed {
			return false
		}
	}
	t.Tags = append(t.Tags, trimmed)
	t.UpdatedAt = now
	return true
}

// RemoveTag removes a label from the tag set, returning false if absent
func (t *Task) RemoveTag(tag string, now time.Time) bool {
	for i, existing := range t.Tags {
		if existing == tag {
			t.Tags = append(t.Tags[:i], t.Tags[i+1:]...)
			t.UpdatedAt = now
			return true
		}
	}
	return false
}

// HasTag reports whether the task carries the given label
func (t *Task) HasTag(tag string) bool {
	for _, existing := range t.Tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// IsOverdue reports whether the task has passed its due date and is not done.
// Tasks without a due date are never overdue.
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now) && t.Status != StatusDone
}

// Validate checks the task's internal invariants. The stores run this on
// every loaded record so a corrupt file is rejected rather than carried
// forward as bad in-memory state.
func (t *Task) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("task has no id")
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("task %s has an empty title", t.ID)
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("task %s has priority %d outside the priority set", t.ID, t.Priority)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("task %s has status %q outside the status set", t.ID, t.Status)
	}
	if t.Status == StatusDone && t.CompletedAt == nil {
		return fmt.Errorf("task %s is done but has no completion time", t.ID)
	}
	if t.UpdatedAt.Before(t.CreatedAt) {
		return fmt.Errorf("task %s was updated before it was created", t.ID)
	}
	return nil
}

// Clone returns a deep copy of the task
func (t *Task) Clone() *Task {
	clone := *t
	clone.Tags = append([]string(nil), t.Tags...)
	if t.DueDate != nil {
		due := *t.DueDate
		clone.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := *t.CompletedAt
		clone.CompletedAt = &completed
	}
	return &clone
}

// NormalizeTags trims whitespace, drops empty labels, and collapses
// duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	normalized := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		trimmed := strings.TrimSpace(tag)
		if trimmed == "" || seen[trimmed] {
			continue
		}
		seen[trimmed] = true
		normalized = append(normalized, trimmed)
	}
	return normalized
}
