package utils

import (
	"testing"
	"time"

	"github.com/eulerianKnight/task-management-system/constants"
	"github.com/eulerianKnight/task-management-system/models"
)

func strPtr(s string) *string { return &s }

func TestApplyTaskUpdate_CompletionStamped(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	task := models.Task{Status: constants.TaskStatusInProgress}

	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusDone)}, now)

	if task.Status != constants.TaskStatusDone {
		t.Fatalf("status = %q, want done", task.Status)
	}
	if task.CompletedAt == nil || !task.CompletedAt.Equal(now) {
		t.Fatalf("completed_at = %v, want %v", task.CompletedAt, now)
	}
	if task.UpdatedAt == nil || !task.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v", task.UpdatedAt, now)
	}
}

func TestApplyTaskUpdate_LeavingDoneClearsCompletion(t *testing.T) {
	completed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	task := models.Task{Status: constants.TaskStatusDone, CompletedAt: &completed}

	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusTodo)}, time.Now())

	if task.CompletedAt != nil {
		t.Fatalf("completed_at = %v, want nil after leaving done", task.CompletedAt)
	}
}

func TestApplyTaskUpdate_ToggleResetsTimestamp(t *testing.T) {
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	task := models.Task{Status: constants.TaskStatusTodo}

	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusDone)}, first)
	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusTodo)}, first)
	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusDone)}, second)

	if task.CompletedAt == nil || !task.CompletedAt.Equal(second) {
		t.Fatalf("completed_at = %v, want fresh stamp %v", task.CompletedAt, second)
	}
}

func TestApplyTaskUpdate_DoneToDoneKeepsTimestamp(t *testing.T) {
	completed := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	task := models.Task{Status: constants.TaskStatusDone, CompletedAt: &completed}

	ApplyTaskUpdate(&task, TaskUpdate{Status: strPtr(constants.TaskStatusDone)}, completed.Add(time.Hour))

	if task.CompletedAt == nil || !task.CompletedAt.Equal(completed) {
		t.Fatalf("completed_at = %v, want original %v", task.CompletedAt, completed)
	}
}

func TestApplyTaskUpdate_SparseFields(t *testing.T) {
	due := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	task := models.Task{
		Title:       "Design",
		Description: "Initial design doc",
		Status:      constants.TaskStatusInProgress,
		Priority:    constants.TaskPriorityMedium,
		DueDate:     &due,
	}

	ApplyTaskUpdate(&task, TaskUpdate{Priority: strPtr(constants.TaskPriorityUrgent)}, time.Now())

	if task.Priority != constants.TaskPriorityUrgent {
		t.Errorf("priority = %q, want urgent", task.Priority)
	}
	if task.Title != "Design" || task.Description != "Initial design doc" {
		t.Error("untouched fields changed under a sparse update")
	}
	if task.Status != constants.TaskStatusInProgress {
		t.Errorf("status = %q, want untouched in_progress", task.Status)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Error("due_date changed under a sparse update")
	}
	if task.CompletedAt != nil {
		t.Error("completed_at set without a status transition to done")
	}
}

func TestApplyTaskUpdate_EmptyUpdateStillStampsUpdatedAt(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	task := models.Task{Status: constants.TaskStatusTodo}

	ApplyTaskUpdate(&task, TaskUpdate{}, now)

	if task.UpdatedAt == nil || !task.UpdatedAt.Equal(now) {
		t.Fatalf("updated_at = %v, want %v even for a no-op update", task.UpdatedAt, now)
	}
	if task.Status != constants.TaskStatusTodo || task.CompletedAt != nil {
		t.Error("no-op update changed task state")
	}
}

func TestApplyTaskUpdate_AssigneeSet(t *testing.T) {
	task := models.Task{Status: constants.TaskStatusTodo}
	id := uint(42)

	ApplyTaskUpdate(&task, TaskUpdate{AssigneeID: &id}, time.Now())

	if task.AssigneeID == nil || *task.AssigneeID != 42 {
		t.Fatalf("assignee_id = %v, want 42", task.AssigneeID)
	}
}

func TestAllowAnyParent(t *testing.T) {
	parent := models.Task{ID: 1, ProjectID: 1}
	child := models.Task{ID: 2, ProjectID: 2, ParentTaskID: &parent.ID}

	// The default policy accepts cross-project parents; stricter rules
	// are a policy swap, not a core change.
	if err := AllowAnyParent(parent, child); err != nil {
		t.Fatalf("AllowAnyParent returned %v", err)
	}
}
