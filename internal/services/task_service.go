package services

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/domain"
	"task-tracker/internal/errors"
	"task-tracker/internal/logging"
	"task-tracker/internal/merge"
	"task-tracker/internal/parser"
	"task-tracker/internal/repository"
	"task-tracker/internal/scoring"
	"task-tracker/internal/validation"

	"go.uber.org/zap"
)

// timeNow is swapped out in tests for deterministic clocks
var timeNow = time.Now

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         repository.Store
	engine        *scoring.Engine
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(store repository.Store, engine *scoring.Engine, taskValidator *validation.TaskValidator) TaskService {
	return &taskServiceImpl{
		store:         store,
		engine:        engine,
		taskValidator: taskValidator,
	}
}

// validateDraft checks a draft's fields before a task is created from it
func (s *taskServiceImpl) validateDraft(draft *domain.Draft) error {
	title, err := s.taskValidator.GetValidTitle(draft.Title)
	if err != nil {
		return errors.NewValidationError("invalid task title", err)
	}
	draft.Title = title

	if draft.DueDate != nil {
		if err := s.taskValidator.ValidateDueDate(*draft.DueDate); err != nil {
			return errors.NewValidationError("invalid due date", err)
		}
	}

	if draft.Priority == 0 {
		draft.Priority = domain.DefaultPriority
	}
	if !draft.Priority.IsValid() {
		return errors.NewInvalidPriorityError(strconv.Itoa(int(draft.Priority)))
	}

	draft.Tags = domain.NormalizeTags(draft.Tags)
	for _, tag := range draft.Tags {
		if err := s.taskValidator.ValidateTag(tag); err != nil {
			return errors.NewValidationError("invalid tag", err)
		}
	}

	return nil
}

// resolveRef finds the task matching an identifier reference
func (s *taskServiceImpl) resolveRef(tasks map[string]*domain.Task, ref string) (*domain.Task, error) {
	if err := s.taskValidator.ValidateID(ref); err != nil {
		return nil, errors.NewValidationError("invalid task reference", err)
	}
	return resolveTaskRef(tasks, ref)
}

// resolveTaskRef matches a reference against the collection. An exact ID
// match wins; otherwise the reference is treated as an ID prefix and must
// match exactly one task.
func resolveTaskRef(tasks map[string]*domain.Task, ref string) (*domain.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, errors.NewValidationError("task reference is required", nil)
	}

	if task, ok := tasks[ref]; ok {
		return task, nil
	}

	var matches []*domain.Task
	for _, task := range tasks {
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
		return nil, errors.NewValidationError(
			"task reference "+ref+" is ambiguous, use more characters", nil)
	}
}

// mutate loads the collection, applies fn to the referenced task, and
// saves the collection back.
func (s *taskServiceImpl) mutate(ctx context.Context, ref string, fn func(*domain.Task) error) (*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.resolveRef(tasks, ref)
	if err != nil {
		return nil, err
	}

	if err := fn(task); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, tasks); err != nil {
		return nil, err
	}

	return task.Clone(), nil
}

// CreateTask creates a new task from a draft
func (s *taskServiceImpl) CreateTask(ctx context.Context, draft domain.Draft) (*domain.Task, error) {
	if err := s.validateDraft(&draft); err != nil {
		return nil, err
	}

	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(draft, timeNow())
	tasks[task.ID] = task

	if err := s.store.Save(ctx, tasks); err != nil {
		return nil, err
	}

	logging.Debug("task created", zap.String("id", task.ID), zap.String("title", task.Title))
	return task.Clone(), nil
}

// CreateFromText creates a task from a quick-add line with inline markers
func (s *taskServiceImpl) CreateFromText(ctx context.Context, text string) (*domain.Task, error) {
	draft := parser.Parse(text, timeNow())
	return s.CreateTask(ctx, draft)
}

// GetTask retrieves a task by ID or unambiguous ID prefix
func (s *taskServiceImpl) GetTask(ctx context.Context, ref string) (*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	task, err := s.resolveRef(tasks, ref)
	if err != nil {
		return nil, err
	}
	return task.Clone(), nil
}

// ListTasks returns the tasks matching the given filters, ordered by
// descending importance score.
func (s *taskServiceImpl) ListTasks(ctx context.Context, opts ListOptions) ([]*domain.Task, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := timeNow()
	matched := make([]*domain.Task, 0, len(tasks))
	for _, task := range tasks {
		if opts.Status != nil && task.Status != *opts.Status {
			continue
		}
		if opts.Priority != nil && task.Priority != *opts.Priority {
			continue
		}
		if opts.Tag != "" && !task.HasTag(opts.Tag) {
			continue
		}
		if opts.OverdueOnly && !task.IsOverdue(now) {
			continue
		}
		matched = append(matched, task.Clone())
	}

	// Pre-sort by creation time so equal scores list oldest first
	sortByCreation(matched)
	s.engine.Rank(matched, now)
	return matched, nil
}

// UpdateStatus transitions a task to the given status value
func (s *taskServiceImpl) UpdateStatus(ctx context.Context, ref string, status string) (*domain.Task, error) {
	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, ref, func(task *domain.Task) error {
		return task.SetStatus(parsed, timeNow())
	})
}

// UpdatePriority assigns a task the given priority value
func (s *taskServiceImpl) UpdatePriority(ctx context.Context, ref string, priority string) (*domain.Task, error) {
	parsed, err := domain.ParsePriority(priority)
	if err != nil {
		return nil, err
	}

	return s.mutate(ctx, ref, func(task *domain.Task) error {
		return task.SetPriority(parsed, timeNow())
	})
}

// UpdateDueDate assigns or clears a task's due date
func (s *taskServiceImpl) UpdateDueDate(ctx context.Context, ref string, dueDate *time.Time) (*domain.Task, error) {
	if dueDate != nil {
		if err := s.taskValidator.ValidateDueDate(*dueDate); err != nil {
			return nil, errors.NewValidationError("invalid due date", err)
		}
	}

	return s.mutate(ctx, ref, func(task *domain.Task) error {
		task.SetDueDate(dueDate, timeNow())
		return nil
	})
}

// AddTag adds a label to a task's tag set
func (s *taskServiceImpl) AddTag(ctx context.Context, ref string, tag string) (*domain.Task, error) {
	tag = strings.TrimSpace(tag)
	if err := s.taskValidator.ValidateTag(tag); err != nil {
		return nil, errors.NewValidationError("invalid tag", err)
	}

	return s.mutate(ctx, ref, func(task *domain.Task) error {
		task.AddTag(tag, timeNow())
		return nil
	})
}

// RemoveTag removes a label from a task's tag set
func (s *taskServiceImpl) RemoveTag(ctx context.Context, ref string, tag string) (*domain.Task, error) {
	return s.mutate(ctx, ref, func(task *domain.Task) error {
		if !task.RemoveTag(tag, timeNow()) {
			return errors.NewValidationError("task does not carry tag "+tag, nil)
		}
		return nil
	})
}

// DeleteTask removes a task from the collection
func (s *taskServiceImpl) DeleteTask(ctx context.Context, ref string) error {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return err
	}

	task, err := s.resolveRef(tasks, ref)
	if err != nil {
		return err
	}

	delete(tasks, task.ID)

	if err := s.store.Save(ctx, tasks); err != nil {
		return err
	}

	logging.Debug("task deleted", zap.String("id", task.ID))
	return nil
}

// sortByCreation orders tasks oldest first, with the ID as a tie-breaker
// so listings are stable across runs.
func sortByCreation(tasks []*domain.Task) {
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID < tasks[j].ID
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

// MergeCollection merges another task collection into the local store and
// reports what changed locally.
func (s *taskServiceImpl) MergeCollection(ctx context.Context, other map[string]*domain.Task) (*MergeSummary, error) {
	tasks, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	result := merge.Merge(tasks, other)

	if err := s.store.Save(ctx, result.Merged); err != nil {
		return nil, err
	}

	summary := &MergeSummary{
		Total:   len(result.Merged),
		Created: len(result.ToCreateLocal),
		Updated: len(result.ToUpdateLocal),
	}
	logging.Info("collections merged",
		zap.Int("total", summary.Total),
		zap.Int("created", summary.Created),
		zap.Int("updated", summary.Updated))
	return summary, nil
}
