// Package merge combines two task collections into one, resolving
// conflicts between diverged copies of the same task automatically.
package merge

import (
	"time"

	"task-tracker/internal/domain"
)

// Result describes the merged collection and which side needs which
// writes to converge on it.
type Result struct {
	Merged map[string]*domain.Task

	// Tasks missing from one side entirely
	ToCreateLocal  map[string]*domain.Task
	ToCreateRemote map[string]*domain.Task

	// Diverged tasks whose resolved version differs from one side's copy
	ToUpdateLocal  map[string]*domain.Task
	ToUpdateRemote map[string]*domain.Task
}

// Merge combines the local and remote collections. Tasks present on only
// one side carry over unchanged; tasks present on both are resolved field
// by field:
//
//   - basic fields (title, description, priority, due date) follow the
//     copy with the newer updated_at; on an exact tie the local copy is
//     kept and the remote side is flagged for update
//   - a completion on either side wins over any non-done status, keeping
//     the completing side's completion time
//   - tags are unioned
//   - the merged updated_at is the newer of the two
func Merge(local, remote map[string]*domain.Task) *Result {
	result := &Result{
		Merged:         make(map[string]*domain.Task),
		ToCreateLocal:  make(map[string]*domain.Task),
		ToCreateRemote: make(map[string]*domain.Task),
		ToUpdateLocal:  make(map[string]*domain.Task),
		ToUpdateRemote: make(map[string]*domain.Task),
	}

	for id, localTask := range local {
		remoteTask, ok := remote[id]
		if !ok {
			result.Merged[id] = localTask
			result.ToCreateRemote[id] = localTask
			continue
		}

		merged, updateLocal, updateRemote := resolveConflict(localTask, remoteTask)
		result.Merged[id] = merged
		if updateLocal {
			result.ToUpdateLocal[id] = merged
		}
		if updateRemote {
			result.ToUpdateRemote[id] = merged
		}
	}

	for id, remoteTask := range remote {
		if _, ok := local[id]; !ok {
			result.Merged[id] = remoteTask
			result.ToCreateLocal[id] = remoteTask
		}
	}

	return result
}

// resolveConflict merges two copies of the same task and reports which
// side diverges from the resolution.
func resolveConflict(local, remote *domain.Task) (*domain.Task, bool, bool) {
	merged := local.Clone()
	var updateLocal, updateRemote bool

	switch {
	case remote.UpdatedAt.After(local.UpdatedAt):
		copyBasicFields(merged, remote)
		updateLocal = true
	default:
		// Equal timestamps keep the local copy
		updateRemote = true
	}

	switch {
	case remote.Status == domain.StatusDone && local.Status != domain.StatusDone:
		merged.Status = domain.StatusDone
		merged.CompletedAt = remote.CompletedAt
		updateLocal = true
	case local.Status == domain.StatusDone && remote.Status != domain.StatusDone:
		merged.Status = domain.StatusDone
		merged.CompletedAt = local.CompletedAt
		updateRemote = true
	case remote.Status == domain.StatusDone && local.Status == domain.StatusDone:
		// Both completed; the local completion time stands, but a remote
		// copy with a different time still diverges from the resolution
		if !sameCompletionTime(local.CompletedAt, remote.CompletedAt) {
			updateRemote = true
		}
	case remote.Status != local.Status:
		if remote.UpdatedAt.After(local.UpdatedAt) {
			merged.Status = remote.Status
			updateLocal = true
		} else {
			merged.Status = local.Status
			updateRemote = true
		}
	}

	mergedTags := unionTags(local.Tags, remote.Tags)
	merged.Tags = mergedTags
	if !sameTagSet(mergedTags, local.Tags) {
		updateLocal = true
	}
	if !sameTagSet(mergedTags, remote.Tags) {
		updateRemote = true
	}

	if remote.UpdatedAt.After(merged.UpdatedAt) {
		merged.UpdatedAt = remote.UpdatedAt
	}

	return merged, updateLocal, updateRemote
}

func copyBasicFields(target, source *domain.Task) {
	target.Title = source.Title
	target.Description = source.Description
	target.Priority = source.Priority
	target.DueDate = source.DueDate
}

// unionTags keeps the first list's order and appends unseen tags from the
// second, so merging is deterministic.
func unionTags(first, second []string) []string {
	return domain.NormalizeTags(append(append([]string{}, first...), second...))
}

func sameCompletionTime(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func sameTagSet(merged, original []string) bool {
	if len(merged) != len(original) {
		return false
	}
	seen := make(map[string]bool, len(original))
	for _, tag := range original {
		seen[tag] = true
	}
	for _, tag := range merged {
		if !seen[tag] {
			return false
		}
	}
	return true
}
