package router

import (
	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/handler"
	"taskflow.app/server/internal/service"
)

func SetupRoutes(router *gin.Engine, services *service.Services) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces(), services.Tasks())
		WorkspaceRouter(v1.Group("/workspaces"), workspaceHandler)

		taskHandler := handler.NewTaskHandler(services.Tasks())
		subtaskHandler := handler.NewSubtaskHandler(services.Subtasks())
		commentHandler := handler.NewCommentHandler(services.Comments())
		TaskRouter(v1.Group("/tasks"), taskHandler, subtaskHandler, commentHandler)
		EpicRouter(v1.Group("/epics"), taskHandler)
		SubtaskRouter(v1.Group("/subtasks"), subtaskHandler)

		userHandler := handler.NewUserHandler(services.Users())
		notificationHandler := handler.NewNotificationHandler(services.Notifications())
		UserRouter(v1.Group("/users"), userHandler, notificationHandler)
		NotificationRouter(v1.Group("/notifications"), notificationHandler)
	}
}
