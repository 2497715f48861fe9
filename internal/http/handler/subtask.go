package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/dto"
	"taskflow.app/server/internal/service"
)

type SubtaskHandler struct {
	subtaskService service.SubtaskService
}

func NewSubtaskHandler(subtaskService service.SubtaskService) *SubtaskHandler {
	return &SubtaskHandler{subtaskService: subtaskService}
}

// CreateForTask handles POST under a task, so the task id comes from the path.
func (h *SubtaskHandler) CreateForTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateSubtaskRequest
	if !bindJSON(c, &req) {
		return
	}

	subtask, err := h.subtaskService.Create(c.Request.Context(), taskID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, subtask)
}

func (h *SubtaskHandler) ListForTask(c *gin.Context) {
	taskID, ok := parseID(c, "id")
	if !ok {
		return
	}

	subtasks, err := h.subtaskService.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subtasks)
}

func (h *SubtaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubtaskRequest
	if !bindJSON(c, &req) {
		return
	}

	subtask, err := h.subtaskService.Update(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, subtask)
}

func (h *SubtaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.subtaskService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
