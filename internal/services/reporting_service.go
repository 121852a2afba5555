package services

import (
	"context"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/repository"
	"task-tracker/internal/scoring"
)

// reportingServiceImpl implements the ReportingService interface
type reportingServiceImpl struct {
	store  repository.Store
	engine *scoring.Engine
}

// NewReportingService creates a new ReportingService instance
func NewReportingService(store repository.Store, engine *scoring.Engine) ReportingService {
	return &reportingServiceImpl{store: store, engine: engine}
}

// NextTask returns the highest-scoring open task, the one to work on now.
// A collection with no open tasks yields a not-found error.
func (r *reportingServiceImpl) NextTask(ctx context.Context) (*ScoredTask, error) {
	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	var best *domain.Task
	var bestScore float64
	for _, task := range tasks {
		if task.Status == domain.StatusDone {
			continue
		}
		score := r.engine.Score(task, now)
		// The smaller ID wins exact ties so the answer is stable
		if best == nil || score > bestScore || (score == bestScore && task.ID < best.ID) {
			best = task
			bestScore = score
		}
	}

	if best == nil {
		return nil, errors.NewTaskNotFoundError("no open tasks")
	}

	return &ScoredTask{
		Task:      best.Clone(),
		Score:     bestScore,
		Breakdown: r.engine.Explain(best, now),
	}, nil
}

// ExplainTask returns the score breakdown for a single task
func (r *reportingServiceImpl) ExplainTask(ctx context.Context, ref string) (*ScoredTask, error) {
	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, err := resolveTaskRef(tasks, ref)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	breakdown := r.engine.Explain(task, now)
	return &ScoredTask{
		Task:      task.Clone(),
		Score:     breakdown.Total,
		Breakdown: breakdown,
	}, nil
}

// GetStatistics summarizes the collection: counts per status and
// priority, overdue tasks, and completions in the last seven days.
func (r *reportingServiceImpl) GetStatistics(ctx context.Context) (*Statistics, error) {
	tasks, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	weekAgo := now.AddDate(0, 0, -7)

	stats := &Statistics{
		Total:      len(tasks),
		ByStatus:   make(map[domain.Status]int),
		ByPriority: make(map[domain.Priority]int),
	}
	for _, status := range domain.Statuses() {
		stats.ByStatus[status] = 0
	}
	for _, priority := range domain.Priorities() {
		stats.ByPriority[priority] = 0
	}

	for _, task := range tasks {
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++
		if task.IsOverdue(now) {
			stats.Overdue++
		}
		if task.CompletedAt != nil && !task.CompletedAt.Before(weekAgo) {
			stats.CompletedLastWeek++
		}
	}

	return stats, nil
}
