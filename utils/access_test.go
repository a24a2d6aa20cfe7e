package utils

import (
	"testing"

	"github.com/eulerianKnight/task-management-system/models"
)

func TestCanViewProject(t *testing.T) {
	creator := models.User{ID: 1}
	member := models.User{ID: 2}
	outsider := models.User{ID: 3}

	project := models.Project{
		ID:          10,
		CreatedByID: creator.ID,
		Members:     []models.User{creator, member},
	}

	if !CanViewProject(creator, project) {
		t.Error("creator should be able to view the project")
	}
	if !CanViewProject(member, project) {
		t.Error("member should be able to view the project")
	}
	if CanViewProject(outsider, project) {
		t.Error("outsider should not be able to view the project")
	}
}

func TestCanViewProject_CreatorRemovedFromMembers(t *testing.T) {
	creator := models.User{ID: 1}

	// Creatorship keeps access even when the membership row is gone.
	project := models.Project{ID: 10, CreatedByID: creator.ID, Members: nil}

	if !CanViewProject(creator, project) {
		t.Error("creator should keep access without a membership row")
	}
}

func TestCanModifyProject_SamePredicateAsView(t *testing.T) {
	member := models.User{ID: 2, Role: "member"}
	outsider := models.User{ID: 3, Role: "admin"}

	project := models.Project{
		ID:          10,
		CreatedByID: 1,
		Members:     []models.User{member},
	}

	if !CanModifyProject(member, project) {
		t.Error("member should be able to modify the project")
	}
	// Role is stored but not consulted: an admin outside the project
	// gets no modify rights from the role alone.
	if CanModifyProject(outsider, project) {
		t.Error("non-member admin should not be able to modify the project")
	}
}

func TestCanDeleteTask(t *testing.T) {
	creator := models.User{ID: 1}
	assignee := models.User{ID: 2}
	member := models.User{ID: 3}

	project := models.Project{
		ID:          10,
		CreatedByID: creator.ID,
		Members:     []models.User{creator, assignee, member},
	}
	task := models.Task{ID: 100, ProjectID: project.ID, AssigneeID: &assignee.ID}

	if !CanDeleteTask(creator, task, project) {
		t.Error("project creator should be able to delete the task")
	}
	if !CanDeleteTask(assignee, task, project) {
		t.Error("assignee should be able to delete the task")
	}
	// Plain membership grants update rights but not delete rights.
	if CanDeleteTask(member, task, project) {
		t.Error("plain member should not be able to delete the task")
	}

	unassigned := models.Task{ID: 101, ProjectID: project.ID}
	if CanDeleteTask(member, unassigned, project) {
		t.Error("member should not be able to delete an unassigned task")
	}
	if !CanDeleteTask(creator, unassigned, project) {
		t.Error("creator should be able to delete an unassigned task")
	}
}

func TestIsMember(t *testing.T) {
	u := models.User{ID: 7}
	p := models.Project{Members: []models.User{{ID: 5}, {ID: 7}}}

	if !IsMember(u, p) {
		t.Error("expected user 7 to be a member")
	}
	if IsMember(models.User{ID: 8}, p) {
		t.Error("did not expect user 8 to be a member")
	}
}
