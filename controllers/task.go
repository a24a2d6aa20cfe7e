package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/eulerianKnight/task-management-system/constants"
	"github.com/eulerianKnight/task-management-system/middleware"
	"github.com/eulerianKnight/task-management-system/models"
	"github.com/eulerianKnight/task-management-system/utils"
)

type TaskController struct {
	DB    *gorm.DB
	Redis *redis.Client

	// ParentPolicy validates parent/child links at creation. Defaults to
	// utils.AllowAnyParent when unset.
	ParentPolicy utils.ParentPolicy
}

type TaskResponse struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	Priority     string     `json:"priority"`
	ProjectID    uint       `json:"project_id"`
	AssigneeID   *uint      `json:"assignee_id"`
	ParentTaskID *uint      `json:"parent_task_id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
	DueDate      *time.Time `json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`

	ProjectName  string  `json:"project_name"`
	AssigneeName *string `json:"assignee_name"`
	SubtaskCount int64   `json:"subtask_count"`
}

// buildTaskResponse projects a task (with Project and Assignee loaded) into
// the outward view. The subtask count is computed fresh on every call.
func (tc *TaskController) buildTaskResponse(task models.Task) TaskResponse {
	var subtaskCount int64
	tc.DB.Model(&models.Task{}).Where("parent_task_id = ?", task.ID).Count(&subtaskCount)

	var assigneeName *string
	if task.Assignee != nil {
		name := task.Assignee.FullName
		assigneeName = &name
	}

	return TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       task.Status,
		Priority:     task.Priority,
		ProjectID:    task.ProjectID,
		AssigneeID:   task.AssigneeID,
		ParentTaskID: task.ParentTaskID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
		DueDate:      task.DueDate,
		CompletedAt:  task.CompletedAt,
		ProjectName:  task.Project.Name,
		AssigneeName: assigneeName,
		SubtaskCount: subtaskCount,
	}
}

func (tc *TaskController) reloadTask(id uint) (models.Task, error) {
	var task models.Task
	err := tc.DB.Preload("Project").Preload("Assignee").First(&task, id).Error
	return task, err
}

func (tc *TaskController) CreateTask(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input struct {
		Title        string     `json:"title" binding:"required"`
		Description  string     `json:"description"`
		ProjectID    uint       `json:"project_id" binding:"required"`
		AssigneeID   *uint      `json:"assignee_id"`
		Priority     string     `json:"priority"`
		DueDate      *time.Time `json:"due_date"`
		ParentTaskID *uint      `json:"parent_task_id"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Priority == "" {
		input.Priority = constants.TaskPriorityMedium
	}
	if !constants.IsValidTaskPriority(input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	var project models.Project
	if err := tc.DB.Preload("Members").First(&project, input.ProjectID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !utils.CanModifyProject(user, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to create tasks in this project"})
		return
	}

	// Existence before membership: the two failures must stay distinguishable.
	if input.AssigneeID != nil {
		var assignee models.User
		if err := tc.DB.First(&assignee, *input.AssigneeID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Assignee not found"})
			return
		}
		if !utils.IsMember(assignee, project) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Assignee is not a member of this project"})
			return
		}
	}

	task := models.Task{
		Title:        input.Title,
		Description:  input.Description,
		Status:       constants.TaskStatusTodo,
		Priority:     input.Priority,
		ProjectID:    input.ProjectID,
		AssigneeID:   input.AssigneeID,
		DueDate:      input.DueDate,
		ParentTaskID: input.ParentTaskID,
	}

	if input.ParentTaskID != nil {
		var parent models.Task
		if err := tc.DB.First(&parent, *input.ParentTaskID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Parent task not found"})
			return
		}

		policy := tc.ParentPolicy
		if policy == nil {
			policy = utils.AllowAnyParent
		}
		if err := policy(parent, task); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create task"})
		return
	}

	// Best effort; never fails the request.
	utils.RecordRecentTask(tc.Redis, user.ID, task.ID)

	created, err := tc.reloadTask(task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		return
	}

	c.JSON(http.StatusOK, tc.buildTaskResponse(created))
}

func (tc *TaskController) GetTasks(c *gin.Context) {
	user := middleware.CurrentUser(c)

	skip, limit, ok := parsePagination(c)
	if !ok {
		return
	}

	query := tc.DB.Preload("Project").Preload("Assignee")

	// Access scoping comes first; caller filters only narrow the result.
	if projectParam := c.Query("project_id"); projectParam != "" {
		projectID, err := strconv.ParseUint(projectParam, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project_id"})
			return
		}

		var project models.Project
		if err := tc.DB.Preload("Members").First(&project, projectID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		if !utils.CanViewProject(user, project) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view tasks in this project"})
			return
		}
		query = query.Where("project_id = ?", project.ID)
	} else {
		projects := visibleProjects(tc.DB, user)
		if len(projects) == 0 {
			c.JSON(http.StatusOK, []TaskResponse{})
			return
		}
		ids := make([]uint, 0, len(projects))
		for _, p := range projects {
			ids = append(ids, p.ID)
		}
		query = query.Where("project_id IN ?", ids)
	}

	if status := c.Query("status"); status != "" {
		if !constants.IsValidTaskStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
			return
		}
		query = query.Where("status = ?", status)
	}
	if assignee := c.Query("assignee_id"); assignee != "" {
		assigneeID, err := strconv.ParseUint(assignee, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid assignee_id"})
			return
		}
		query = query.Where("assignee_id = ?", assigneeID)
	}
	if priority := c.Query("priority"); priority != "" {
		if !constants.IsValidTaskPriority(priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
			return
		}
		query = query.Where("priority = ?", priority)
	}

	var tasks []models.Task
	if err := query.Offset(skip).Limit(limit).Find(&tasks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tasks"})
		return
	}

	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, tc.buildTaskResponse(task))
	}

	c.JSON(http.StatusOK, result)
}

func (tc *TaskController) GetTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.Preload("Project.Members").Preload("Assignee").First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !utils.CanViewProject(user, task.Project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this task"})
		return
	}

	c.JSON(http.StatusOK, tc.buildTaskResponse(task))
}

func (tc *TaskController) UpdateTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.Preload("Project.Members").First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !utils.CanModifyProject(user, task.Project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to update this task"})
		return
	}

	var input struct {
		Title       *string    `json:"title"`
		Description *string    `json:"description"`
		Status      *string    `json:"status"`
		Priority    *string    `json:"priority"`
		AssigneeID  *uint      `json:"assignee_id"`
		DueDate     *time.Time `json:"due_date"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Status != nil && !constants.IsValidTaskStatus(*input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}
	if input.Priority != nil && !constants.IsValidTaskPriority(*input.Priority) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid priority"})
		return
	}

	utils.ApplyTaskUpdate(&task, utils.TaskUpdate{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		AssigneeID:  input.AssigneeID,
		DueDate:     input.DueDate,
	}, time.Now().UTC())

	if err := tc.DB.Save(&task).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update task"})
		return
	}

	updated, err := tc.reloadTask(task.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load task"})
		return
	}

	c.JSON(http.StatusOK, tc.buildTaskResponse(updated))
}

// DeleteTask cascades to the task's comments and attachments. Subtasks are
// left in place with their parent reference intact.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var task models.Task
	if err := tc.DB.Preload("Project").First(&task, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	if !utils.CanDeleteTask(user, task, task.Project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this task"})
		return
	}

	err := tc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&models.Attachment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&task).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// parsePagination reads skip/limit, enforcing skip >= 0 and 1 <= limit <= 100.
func parsePagination(c *gin.Context) (skip, limit int, ok bool) {
	skip, limit = 0, 100

	if v := c.Query("skip"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid skip"})
			return 0, 0, false
		}
		skip = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return 0, 0, false
		}
		limit = n
	}
	return skip, limit, true
}
