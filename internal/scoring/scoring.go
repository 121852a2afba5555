// Package scoring computes the importance ranking used to order task
// listings. Scores are pure functions of a task and a reference time, so
// the same inputs always produce the same ranking.
package scoring

import (
	"sort"
	"time"

	"task-tracker/internal/domain"
)

// Weights for the individual scoring signals. The final score is the sum
// of the priority, due-date, status, tag, and recency components.
const (
	// PriorityMultiplier scales the priority ordinal (1-4)
	PriorityMultiplier = 10.0

	// Due-date bonuses, banded by time remaining
	DueOverdueBonus = 50.0
	DueWithinDay    = 40.0
	DueWithinThree  = 25.0
	DueWithinWeek   = 10.0

	// Status adjustments
	StatusDonePenalty     = -100.0
	StatusInProgressBonus = 5.0
	StatusReviewBonus     = 3.0

	// BoostTagBonus is added once when any configured boost tag is present
	BoostTagBonus = 15.0

	// Staleness: tasks untouched beyond the threshold gain a small bonus
	// so they surface in maintenance views
	StaleThreshold   = 7 * 24 * time.Hour
	StaleBonusPerDay = 0.5
	StaleBonusMax    = 10.0
)

// Due-date bands
const (
	dueDayHorizon   = 24 * time.Hour
	dueThreeHorizon = 3 * 24 * time.Hour
	dueWeekHorizon  = 7 * 24 * time.Hour
)

// Engine scores tasks against a configurable set of boost tags.
type Engine struct {
	boostTags map[string]bool
}

// NewEngine creates a scoring engine. Tasks carrying any of the boost
// tags receive a fixed bonus.
func NewEngine(boostTags []string) *Engine {
	tags := make(map[string]bool, len(boostTags))
	for _, tag := range boostTags {
		tags[tag] = true
	}
	return &Engine{boostTags: tags}
}

// Score computes the importance score for a task at the given time.
// Higher means more important. The function is total: it returns a value
// for every valid task, including done ones (which score deeply negative
// so active views can filter or sink them).
func (e *Engine) Score(task *domain.Task, now time.Time) float64 {
	score := e.priorityComponent(task)
	score += e.dueDateComponent(task, now)
	score += e.statusComponent(task)
	score += e.tagComponent(task)
	score += e.recencyComponent(task, now)
	return score
}

// Breakdown reports the individual components of a task's score.
type Breakdown struct {
	Priority float64
	DueDate  float64
	Status   float64
	Tags     float64
	Recency  float64
	Total    float64
}

// Explain returns the per-component breakdown for a task's score
func (e *Engine) Explain(task *domain.Task, now time.Time) Breakdown {
	b := Breakdown{
		Priority: e.priorityComponent(task),
		DueDate:  e.dueDateComponent(task, now),
		Status:   e.statusComponent(task),
		Tags:     e.tagComponent(task),
		Recency:  e.recencyComponent(task, now),
	}
	b.Total = b.Priority + b.DueDate + b.Status + b.Tags + b.Recency
	return b
}

// Rank sorts tasks by descending score. The sort is stable, so tasks with
// equal scores keep their original relative order.
func (e *Engine) Rank(tasks []*domain.Task, now time.Time) {
	scores := make(map[string]float64, len(tasks))
	for _, task := range tasks {
		scores[task.ID] = e.Score(task, now)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return scores[tasks[i].ID] > scores[tasks[j].ID]
	})
}

func (e *Engine) priorityComponent(task *domain.Task) float64 {
	return float64(task.Priority.Weight()) * PriorityMultiplier
}

// dueDateComponent contributes more the closer the deadline is. Tasks
// without a due date contribute zero; they are never penalized.
func (e *Engine) dueDateComponent(task *domain.Task, now time.Time) float64 {
	if task.DueDate == nil {
		return 0
	}
	remaining := task.DueDate.Sub(now)
	switch {
	case remaining < 0:
		return DueOverdueBonus
	case remaining <= dueDayHorizon:
		return DueWithinDay
	case remaining <= dueThreeHorizon:
		return DueWithinThree
	case remaining <= dueWeekHorizon:
		return DueWithinWeek
	default:
		return 0
	}
}

func (e *Engine) statusComponent(task *domain.Task) float64 {
	switch task.Status {
	case domain.StatusDone:
		return StatusDonePenalty
	case domain.StatusInProgress:
		return StatusInProgressBonus
	case domain.StatusReview:
		return StatusReviewBonus
	default:
		return 0
	}
}

func (e *Engine) tagComponent(task *domain.Task) float64 {
	for _, tag := range task.Tags {
		if e.boostTags[tag] {
			return BoostTagBonus
		}
	}
	return 0
}

// recencyComponent adds a small bonus for stale tasks. Done tasks never
// gain a staleness bonus; there is nothing left to surface.
func (e *Engine) recencyComponent(task *domain.Task, now time.Time) float64 {
	if task.Status == domain.StatusDone {
		return 0
	}
	idle := now.Sub(task.UpdatedAt)
	if idle <= StaleThreshold {
		return 0
	}
	staleDays := (idle - StaleThreshold).Hours() / 24
	bonus := staleDays * StaleBonusPerDay
	if bonus > StaleBonusMax {
		return StaleBonusMax
	}
	return bonus
}
