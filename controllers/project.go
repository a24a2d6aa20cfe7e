package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eulerianKnight/task-management-system/middleware"
	"github.com/eulerianKnight/task-management-system/models"
	"github.com/eulerianKnight/task-management-system/utils"
)

type ProjectController struct {
	DB *gorm.DB
}

type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	CreatedByID uint   `json:"created_by_id"`
	CreatedAt   string `json:"created_at"`
	TaskCount   int64  `json:"task_count"`
	MemberCount int64  `json:"member_count"`
}

func (pc *ProjectController) buildProjectResponse(project models.Project) ProjectResponse {
	var taskCount int64
	pc.DB.Model(&models.Task{}).Where("project_id = ?", project.ID).Count(&taskCount)

	memberCount := pc.DB.Model(&project).Association("Members").Count()

	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		IsActive:    project.IsActive,
		CreatedByID: project.CreatedByID,
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		TaskCount:   taskCount,
		MemberCount: memberCount,
	}
}

// visibleProjects returns every project the user is a member of or created.
func visibleProjects(db *gorm.DB, user models.User) []models.Project {
	var memberIDs []uint
	db.Table("user_projects").Where("user_id = ?", user.ID).Pluck("project_id", &memberIDs)

	var projects []models.Project
	q := db.Where("created_by_id = ?", user.ID)
	if len(memberIDs) > 0 {
		q = db.Where("created_by_id = ? OR id IN ?", user.ID, memberIDs)
	}
	q.Find(&projects)
	return projects
}

func (pc *ProjectController) CreateProject(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var input struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	project := models.Project{
		Name:        input.Name,
		Description: input.Description,
		CreatedByID: user.ID,
		// The creator is always added to the member set at creation.
		Members: []models.User{user},
	}

	if err := pc.DB.Create(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	c.JSON(http.StatusOK, ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		IsActive:    project.IsActive,
		CreatedByID: project.CreatedByID,
		CreatedAt:   project.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		TaskCount:   0,
		MemberCount: 1,
	})
}

func (pc *ProjectController) GetProjects(c *gin.Context) {
	user := middleware.CurrentUser(c)

	projects := visibleProjects(pc.DB, user)

	result := make([]ProjectResponse, 0, len(projects))
	for _, project := range projects {
		result = append(result, pc.buildProjectResponse(project))
	}

	c.JSON(http.StatusOK, result)
}

func (pc *ProjectController) GetProject(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var project models.Project
	if err := pc.DB.Preload("Members").First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !utils.CanViewProject(user, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this project"})
		return
	}

	c.JSON(http.StatusOK, pc.buildProjectResponse(project))
}

func (pc *ProjectController) AddMember(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var project models.Project
	if err := pc.DB.Preload("Members").First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if !utils.CanModifyProject(user, project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this project"})
		return
	}

	var input struct {
		UserID uint `json:"user_id" binding:"required"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var member models.User
	if err := pc.DB.First(&member, input.UserID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.IsMember(member, project) {
		if err := pc.DB.Model(&project).Association("Members").Append(&member); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add member"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member added"})
}

// DeleteProject removes a project together with its tasks and their
// comments and attachments. Only the creator may delete a project.
func (pc *ProjectController) DeleteProject(c *gin.Context) {
	user := middleware.CurrentUser(c)
	id := c.Param("id")

	var project models.Project
	if err := pc.DB.First(&project, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	if project.CreatedByID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this project"})
		return
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		var taskIDs []uint
		if err := tx.Model(&models.Task{}).Where("project_id = ?", project.ID).Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id IN ?", taskIDs).Delete(&models.Attachment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id = ?", project.ID).Delete(&models.Task{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&project).Association("Members").Clear(); err != nil {
			return err
		}

		return tx.Delete(&project).Error
	})

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
