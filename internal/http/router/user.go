package router

import (
	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/handler"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, nh *handler.NotificationHandler) {
	rg.POST("", h.Create)
	rg.GET("", h.List)
	rg.GET("/:id", h.GetByID)
	rg.GET("/:id/notifications", nh.ListForUser)
}

func NotificationRouter(rg *gin.RouterGroup, h *handler.NotificationHandler) {
	rg.PATCH("/:id/read", h.MarkRead)
}
