package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/eulerianKnight/task-management-system/constants"
	"github.com/eulerianKnight/task-management-system/controllers"
	"github.com/eulerianKnight/task-management-system/middleware"
)

func SetupRouter(db *gorm.DB, rdb *redis.Client) *gin.Engine {
	r := gin.Default()

	authController := controllers.AuthController{DB: db}
	userController := controllers.UserController{DB: db}
	projectController := controllers.ProjectController{DB: db}
	taskController := controllers.TaskController{DB: db, Redis: rdb}
	commentController := controllers.CommentController{DB: db}
	attachmentController := controllers.AttachmentController{DB: db}

	r.POST("/register", authController.Register)
	r.POST("/login", authController.Login)
	r.GET("/health", healthCheck(db, rdb))

	authed := r.Group("/", middleware.AuthMiddleware(db))

	authed.GET("/me", authController.Me)

	authed.GET("/users", middleware.RoleMiddleware(constants.RoleAdmin), userController.GetUsers)
	authed.PUT("/users/:id", middleware.RoleMiddleware(constants.RoleAdmin), userController.UpdateUser)

	authed.POST("/projects", projectController.CreateProject)
	authed.GET("/projects", projectController.GetProjects)
	authed.GET("/projects/:id", projectController.GetProject)
	authed.POST("/projects/:id/members", projectController.AddMember)
	authed.DELETE("/projects/:id", projectController.DeleteProject)

	authed.POST("/tasks", taskController.CreateTask)
	authed.GET("/tasks", taskController.GetTasks)
	authed.GET("/tasks/:id", taskController.GetTask)
	authed.PUT("/tasks/:id", taskController.UpdateTask)
	authed.DELETE("/tasks/:id", taskController.DeleteTask)

	authed.POST("/tasks/:id/comments", commentController.CreateComment)
	authed.GET("/tasks/:id/comments", commentController.GetComments)
	authed.POST("/tasks/:id/attachments", attachmentController.UploadAttachment)
	authed.GET("/tasks/:id/attachments", attachmentController.GetAttachments)

	return r
}

func healthCheck(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "disconnected"})
			return
		}

		redisStatus := "disabled"
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "redis": "disconnected"})
				return
			}
			redisStatus = "connected"
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": "connected",
			"redis":    redisStatus,
		})
	}
}
