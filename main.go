package main

import (
	"github.com/eulerianKnight/task-management-system/config"
	"github.com/eulerianKnight/task-management-system/models"
	"github.com/eulerianKnight/task-management-system/routes"
)

func main() {
	db := config.ConnectDB()
	db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Task{},
		&models.Comment{},
		&models.Attachment{},
	)

	rdb := config.ConnectRedis()

	r := routes.SetupRouter(db, rdb)
	r.Run(":" + config.Port())
}
