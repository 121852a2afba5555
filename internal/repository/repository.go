// Package repository defines the persistence contract for the task
// collection. Implementations own the on-disk representation; callers
// always load and save the collection as a whole.
package repository

import (
	"context"

	"task-tracker/internal/domain"
)

// Store is the persistence collaborator owning the on-disk task
// collection, keyed by task ID.
//
// Load fails with a corrupt-store error when the persisted data cannot be
// parsed or violates task invariants; callers must treat that as a hard
// failure distinct from an empty store. Save persists the entire
// collection; a failure is surfaced to the caller, never swallowed, since
// the in-memory mutation has already happened and the divergence must be
// visible.
type Store interface {
	Load(ctx context.Context) (map[string]*domain.Task, error)
	Save(ctx context.Context, tasks map[string]*domain.Task) error
	Close() error
}
