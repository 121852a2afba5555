package domain

import (
	"strconv"
	"strings"

	"task-tracker/internal/errors"
)

// Priority represents the importance of a task as a member of a closed,
// ordered set. The integer value is also the persisted form.
type Priority int

const (
	PriorityLow    Priority = 1
	PriorityMedium Priority = 2
	PriorityHigh   Priority = 3
	PriorityUrgent Priority = 4
)

// DefaultPriority is assigned to tasks created without an explicit priority.
const DefaultPriority = PriorityMedium

// priorityNames maps each priority to its display name. This is the single
// place where the in-memory value and its textual form are tied together.
var priorityNames = map[Priority]string{
	PriorityLow:    "low",
	PriorityMedium: "medium",
	PriorityHigh:   "high",
	PriorityUrgent: "urgent",
}

// IsValid reports whether the priority is a member of the closed set
func (p Priority) IsValid() bool {
	_, ok := priorityNames[p]
	return ok
}

// String returns the display name of the priority
func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "unknown"
}

// Weight returns the ordinal weight used by the scoring engine
func (p Priority) Weight() int {
	return int(p)
}

// Marker returns the exclamation-mark indicator used in listings
func (p Priority) Marker() string {
	if !p.IsValid() {
		return ""
	}
	return strings.Repeat("!", int(p))
}

// ParsePriority converts external text into a Priority. It accepts the
// numeric form ("1".."4") and the names ("low".."urgent"), case-insensitive.
// Values outside the closed set fail with an invalid-priority error.
func ParsePriority(value string) (Priority, error) {
	trimmed := strings.ToLower(strings.TrimSpace(value))

	if n, err := strconv.Atoi(trimmed); err == nil {
		p := Priority(n)
		if p.IsValid() {
			return p, nil
		}
		return 0, errors.NewInvalidPriorityError(value)
	}

	for p, name := range priorityNames {
		if name == trimmed {
			return p, nil
		}
	}
	return 0, errors.NewInvalidPriorityError(value)
}

// Priorities returns all members of the closed set in ascending order
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}
}
