package domain

import (
	"strings"

	"task-tracker/internal/errors"
)

// Status represents the workflow state of a task as a member of a closed set.
// The string value is also the persisted form.
type Status string

const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// DefaultStatus is assigned to tasks on creation.
const DefaultStatus = StatusTodo

// IsValid reports whether the status is a member of the closed set
func (s Status) IsValid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// String returns the persisted form of the status
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts external text into a Status, case-insensitive.
// Values outside the closed set fail with an invalid-status error.
func ParseStatus(value string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", errors.NewInvalidStatusError(value)
	}
	return s, nil
}

// Statuses returns all members of the closed set in workflow order
func Statuses() []Status {
	return []Status{StatusTodo, StatusInProgress, StatusReview, StatusDone}
}
