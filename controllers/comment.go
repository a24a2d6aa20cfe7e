package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eulerianKnight/task-management-system/middleware"
	"github.com/eulerianKnight/task-management-system/models"
	"github.com/eulerianKnight/task-management-system/utils"
)

type CommentController struct {
	DB *gorm.DB
}

// viewableTask loads the task named by the :id param and checks the caller
// against the owning project. It writes the error response itself.
func viewableTask(db *gorm.DB, c *gin.Context, user models.User) (models.Task, bool) {
	var task models.Task
	if err := db.Preload("Project.Members").First(&task, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return task, false
	}

	if !utils.CanViewProject(user, task.Project) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this task"})
		return task, false
	}

	return task, true
}

func (cc *CommentController) CreateComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	task, ok := viewableTask(cc.DB, c, user)
	if !ok {
		return
	}

	var input struct {
		Content string `json:"content" binding:"required"`
	}

	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment := models.Comment{
		Content:  input.Content,
		TaskID:   task.ID,
		AuthorID: user.ID,
	}

	if err := cc.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (cc *CommentController) GetComments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	task, ok := viewableTask(cc.DB, c, user)
	if !ok {
		return
	}

	var comments []models.Comment
	cc.DB.Where("task_id = ?", task.ID).Order("created_at").Find(&comments)

	c.JSON(http.StatusOK, comments)
}
