package utils

import (
	"time"

	"github.com/eulerianKnight/task-management-system/constants"
	"github.com/eulerianKnight/task-management-system/models"
)

// TaskUpdate is a sparse field set: nil means "leave the field alone",
// which is distinct from setting an empty value.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
	DueDate     *time.Time
}

// ApplyTaskUpdate mutates task in memory; the caller persists the result
// in a single write. The completion rule runs before the generic
// assignment pass so CompletedAt stays derived from status alone:
// entering done stamps it with now, leaving done clears it, and an update
// that does not change status leaves it untouched. UpdatedAt is stamped
// on every accepted update even if nothing changed value.
func ApplyTaskUpdate(task *models.Task, upd TaskUpdate, now time.Time) {
	if upd.Status != nil {
		if *upd.Status == constants.TaskStatusDone && task.Status != constants.TaskStatusDone {
			completed := now
			task.CompletedAt = &completed
		} else if *upd.Status != constants.TaskStatusDone && task.Status == constants.TaskStatusDone {
			task.CompletedAt = nil
		}
	}

	if upd.Title != nil {
		task.Title = *upd.Title
	}
	if upd.Description != nil {
		task.Description = *upd.Description
	}
	if upd.Status != nil {
		task.Status = *upd.Status
	}
	if upd.Priority != nil {
		task.Priority = *upd.Priority
	}
	if upd.AssigneeID != nil {
		id := *upd.AssigneeID
		task.AssigneeID = &id
	}
	if upd.DueDate != nil {
		due := *upd.DueDate
		task.DueDate = &due
	}

	updated := now
	task.UpdatedAt = &updated
}

// ParentPolicy validates a parent/child link at task creation. The default
// accepts any pair: no cycle check and no same-project requirement. A
// stricter deployment can swap in its own policy without touching the
// create path.
type ParentPolicy func(parent, child models.Task) error

func AllowAnyParent(parent, child models.Task) error {
	return nil
}
