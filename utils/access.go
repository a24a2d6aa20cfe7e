package utils

import (
	"github.com/eulerianKnight/task-management-system/models"
)

// Access predicates over already-loaded entities. Callers are responsible
// for preloading project.Members; these functions never touch the database.

func IsMember(user models.User, project models.Project) bool {
	for _, m := range project.Members {
		if m.ID == user.ID {
			return true
		}
	}
	return false
}

// CanViewProject: members and the creator see everything in a project.
// The creator is checked separately because creatorship is stored outside
// the member set, even though creation also inserts a membership row.
func CanViewProject(user models.User, project models.Project) bool {
	return IsMember(user, project) || project.CreatedByID == user.ID
}

// CanModifyProject gates task creation and update inside a project. It is
// the same predicate as CanViewProject: membership confers full modify
// rights, and the User role field is not consulted here.
func CanModifyProject(user models.User, project models.Project) bool {
	return CanViewProject(user, project)
}

// CanDeleteTask is deliberately stricter than CanModifyProject: only the
// project creator or the task's assignee may delete a task. Keep it a
// separate predicate; the two rules are not interchangeable.
func CanDeleteTask(user models.User, task models.Task, project models.Project) bool {
	if project.CreatedByID == user.ID {
		return true
	}
	return task.AssigneeID != nil && *task.AssigneeID == user.ID
}
