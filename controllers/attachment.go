package controllers

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/eulerianKnight/task-management-system/config"
	"github.com/eulerianKnight/task-management-system/middleware"
	"github.com/eulerianKnight/task-management-system/models"
)

type AttachmentController struct {
	DB *gorm.DB
}

func (ac *AttachmentController) UploadAttachment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	task, ok := viewableTask(ac.DB, c, user)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	if file.Size > config.MaxFileSize() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File too large"})
		return
	}

	mimeType := file.Header.Get("Content-Type")
	allowed := false
	for _, t := range config.AllowedFileTypes() {
		if t == mimeType {
			allowed = true
			break
		}
	}
	if !allowed {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type not allowed"})
		return
	}

	dst := filepath.Join(config.UploadDir(), fmt.Sprintf("task_%d_%s", task.ID, filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store file"})
		return
	}

	attachment := models.Attachment{
		Filename:     file.Filename,
		FilePath:     dst,
		FileSize:     file.Size,
		MimeType:     mimeType,
		TaskID:       task.ID,
		UploadedByID: user.ID,
	}

	if err := ac.DB.Create(&attachment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create attachment"})
		return
	}

	c.JSON(http.StatusOK, attachment)
}

func (ac *AttachmentController) GetAttachments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	task, ok := viewableTask(ac.DB, c, user)
	if !ok {
		return
	}

	var attachments []models.Attachment
	ac.DB.Where("task_id = ?", task.ID).Order("created_at").Find(&attachments)

	c.JSON(http.StatusOK, attachments)
}
