package cli

import (
	"context"
	"strings"
	"time"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/merge"
	"task-tracker/internal/parser"
	"task-tracker/internal/scoring"
	"task-tracker/internal/services"
)

var mockNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// mockTaskService implements both service interfaces over an in-memory map
type mockTaskService struct {
	tasks  map[string]*domain.Task
	engine *scoring.Engine

	// When set, every store-touching call fails with this error
	failWith error
}

func newMockTaskService() *mockTaskService {
	return &mockTaskService{
		tasks:  make(map[string]*domain.Task),
		engine: scoring.NewEngine([]string{"urgent"}),
	}
}

func setupTestApp() (*App, *mockTaskService) {
	mock := newMockTaskService()
	cfg := config.NewConfig()
	app := NewApp(&services.ServiceContainer{
		TaskService:      mock,
		ReportingService: mock,
	}, cfg)
	return app, mock
}

func (m *mockTaskService) resolve(ref string) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if task, ok := m.tasks[ref]; ok {
		return task, nil
	}
	var matches []*domain.Task
	for _, task := range m.tasks {
		if strings.HasPrefix(task.ID, ref) {
			matches = append(matches, task)
		}
	}
	switch len(matches) {
	case 0:
		return nil, errors.NewTaskNotFoundError(ref)
	case 1:
		return matches[0], nil
	default:
		return nil, errors.NewValidationError("ambiguous task reference", nil)
	}
}

func (m *mockTaskService) CreateTask(ctx context.Context, draft domain.Draft) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, errors.NewValidationError("title is required", nil)
	}
	task := domain.NewTask(draft, mockNow)
	m.tasks[task.ID] = task
	return task.Clone(), nil
}

func (m *mockTaskService) CreateFromText(ctx context.Context, text string) (*domain.Task, error) {
	return m.CreateTask(ctx, parser.Parse(text, mockNow))
}

func (m *mockTaskService) GetTask(ctx context.Context, ref string) (*domain.Task, error) {
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	return task.Clone(), nil
}

func (m *mockTaskService) ListTasks(ctx context.Context, opts services.ListOptions) ([]*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var result []*domain.Task
	for _, task := range m.tasks {
		if opts.Status != nil && task.Status != *opts.Status {
			continue
		}
		if opts.Priority != nil && task.Priority != *opts.Priority {
			continue
		}
		if opts.Tag != "" && !task.HasTag(opts.Tag) {
			continue
		}
		if opts.OverdueOnly && !task.IsOverdue(mockNow) {
			continue
		}
		result = append(result, task.Clone())
	}
	m.engine.Rank(result, mockNow)
	return result, nil
}

func (m *mockTaskService) UpdateStatus(ctx context.Context, ref string, status string) (*domain.Task, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	if err := task.SetStatus(parsed, mockNow); err != nil {
		return nil, err
	}
	return task.Clone(), nil
}

func (m *mockTaskService) UpdatePriority(ctx context.Context, ref string, priority string) (*domain.Task, error) {
	parsed, err := domain.ParsePriority(priority)
	if err != nil {
		return nil, err
	}
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	if err := task.SetPriority(parsed, mockNow); err != nil {
		return nil, err
	}
	return task.Clone(), nil
}

func (m *mockTaskService) UpdateDueDate(ctx context.Context, ref string, dueDate *time.Time) (*domain.Task, error) {
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	task.SetDueDate(dueDate, mockNow)
	return task.Clone(), nil
}

func (m *mockTaskService) AddTag(ctx context.Context, ref string, tag string) (*domain.Task, error) {
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	task.AddTag(tag, mockNow)
	return task.Clone(), nil
}

func (m *mockTaskService) RemoveTag(ctx context.Context, ref string, tag string) (*domain.Task, error) {
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	if !task.RemoveTag(tag, mockNow) {
		return nil, errors.NewValidationError("task does not carry tag "+tag, nil)
	}
	return task.Clone(), nil
}

func (m *mockTaskService) DeleteTask(ctx context.Context, ref string) error {
	task, err := m.resolve(ref)
	if err != nil {
		return err
	}
	delete(m.tasks, task.ID)
	return nil
}

func (m *mockTaskService) MergeCollection(ctx context.Context, other map[string]*domain.Task) (*services.MergeSummary, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	result := merge.Merge(m.tasks, other)
	m.tasks = result.Merged
	return &services.MergeSummary{
		Total:   len(result.Merged),
		Created: len(result.ToCreateLocal),
		Updated: len(result.ToUpdateLocal),
	}, nil
}

func (m *mockTaskService) NextTask(ctx context.Context) (*services.ScoredTask, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	var best *domain.Task
	var bestScore float64
	for _, task := range m.tasks {
		if task.Status == domain.StatusDone {
			continue
		}
		score := m.engine.Score(task, mockNow)
		if best == nil || score > bestScore {
			best = task
			bestScore = score
		}
	}
	if best == nil {
		return nil, errors.NewTaskNotFoundError("no open tasks")
	}
	return &services.ScoredTask{
		Task:      best.Clone(),
		Score:     bestScore,
		Breakdown: m.engine.Explain(best, mockNow),
	}, nil
}

func (m *mockTaskService) ExplainTask(ctx context.Context, ref string) (*services.ScoredTask, error) {
	task, err := m.resolve(ref)
	if err != nil {
		return nil, err
	}
	breakdown := m.engine.Explain(task, mockNow)
	return &services.ScoredTask{
		Task:      task.Clone(),
		Score:     breakdown.Total,
		Breakdown: breakdown,
	}, nil
}

func (m *mockTaskService) GetStatistics(ctx context.Context) (*services.Statistics, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	stats := &services.Statistics{
		Total:      len(m.tasks),
		ByStatus:   make(map[domain.Status]int),
		ByPriority: make(map[domain.Priority]int),
	}
	for _, task := range m.tasks {
		stats.ByStatus[task.Status]++
		stats.ByPriority[task.Priority]++
		if task.IsOverdue(mockNow) {
			stats.Overdue++
		}
	}
	return stats, nil
}
