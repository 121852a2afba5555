package services

import (
	"context"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/scoring"
)

// ListOptions narrows the task listing. Nil or zero-valued fields leave
// the corresponding dimension unfiltered.
type ListOptions struct {
	Status      *domain.Status   `json:"status,omitempty"`
	Priority    *domain.Priority `json:"priority,omitempty"`
	Tag         string           `json:"tag,omitempty"`
	OverdueOnly bool             `json:"overdue_only,omitempty"`
}

// ScoredTask pairs a task with its computed score breakdown
type ScoredTask struct {
	Task      *domain.Task      `json:"task"`
	Score     float64           `json:"score"`
	Breakdown scoring.Breakdown `json:"breakdown"`
}

// Statistics summarizes the task collection
type Statistics struct {
	Total             int                     `json:"total"`
	ByStatus          map[domain.Status]int   `json:"by_status"`
	ByPriority        map[domain.Priority]int `json:"by_priority"`
	Overdue           int                     `json:"overdue"`
	CompletedLastWeek int                     `json:"completed_last_week"`
}

// MergeSummary reports what a merge changed in the local store
type MergeSummary struct {
	Total   int `json:"total"`
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// TaskService handles task lifecycle operations. Every mutation loads the
// collection, applies the change, and persists the whole collection back.
type TaskService interface {
	// Creation
	CreateTask(ctx context.Context, draft domain.Draft) (*domain.Task, error)
	CreateFromText(ctx context.Context, text string) (*domain.Task, error)

	// Lookup
	GetTask(ctx context.Context, ref string) (*domain.Task, error)
	ListTasks(ctx context.Context, opts ListOptions) ([]*domain.Task, error)

	// Mutation
	UpdateStatus(ctx context.Context, ref string, status string) (*domain.Task, error)
	UpdatePriority(ctx context.Context, ref string, priority string) (*domain.Task, error)
	UpdateDueDate(ctx context.Context, ref string, dueDate *time.Time) (*domain.Task, error)
	AddTag(ctx context.Context, ref string, tag string) (*domain.Task, error)
	RemoveTag(ctx context.Context, ref string, tag string) (*domain.Task, error)
	DeleteTask(ctx context.Context, ref string) error

	// Synchronization
	MergeCollection(ctx context.Context, other map[string]*domain.Task) (*MergeSummary, error)
}

// ReportingService handles scoring views and collection analytics
type ReportingService interface {
	NextTask(ctx context.Context) (*ScoredTask, error)
	ExplainTask(ctx context.Context, ref string) (*ScoredTask, error)
	GetStatistics(ctx context.Context) (*Statistics, error)
}

// ServiceContainer bundles the services handed to the CLI
type ServiceContainer struct {
	TaskService      TaskService
	ReportingService ReportingService
}
