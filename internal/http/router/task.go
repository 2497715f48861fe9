package router

import (
	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler, sh *handler.SubtaskHandler, ch *handler.CommentHandler) {
	rg.POST("", h.Create)
	rg.GET("/:id", h.GetByID)
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.PATCH("/:id/status", h.UpdateStatus)
	rg.GET("/:id/children", h.ListChildren)

	rg.POST("/:id/subtasks", sh.CreateForTask)
	rg.GET("/:id/subtasks", sh.ListForTask)

	rg.POST("/:id/comments", ch.CreateForTask)
	rg.GET("/:id/comments", ch.ListForTask)
}

func EpicRouter(rg *gin.RouterGroup, h *handler.TaskHandler) {
	rg.GET("/:id/tasks", h.ListByEpic)
	rg.POST("/:id/documentation", h.GenerateEpicDocumentation)
}

func SubtaskRouter(rg *gin.RouterGroup, h *handler.SubtaskHandler) {
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
