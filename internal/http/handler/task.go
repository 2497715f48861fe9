package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/dto"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type TaskHandler struct {
	taskService service.TaskService
}

func NewTaskHandler(taskService service.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Create(ctx, req.ToParams())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

func (h *TaskHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateStatus(c.Request.Context(), id, model.TaskStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListChildren serves tasks whose parent reference points at the given task.
func (h *TaskHandler) ListChildren(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByParent(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// ListByEpic serves tasks linked to the given epic.
func (h *TaskHandler) ListByEpic(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListByEpic(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GenerateEpicDocumentation renders and returns a summary document for an
// epic. The document is not persisted.
func (h *TaskHandler) GenerateEpicDocumentation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	doc, err := h.taskService.GenerateEpicDocumentation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.EpicDocumentationResponse{EpicID: id, Documentation: doc})
}
