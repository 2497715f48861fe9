package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskflow.app/server/internal/http/dto"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
	taskService      service.TaskService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService, taskService service.TaskService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService, taskService: taskService}
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.Create(ctx, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workspace)
}

func (h *WorkspaceHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	workspace, err := h.workspaceService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaceService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspaces)
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateWorkspaceRequest
	if !bindJSON(c, &req) {
		return
	}

	workspace, err := h.workspaceService.Update(c.Request.Context(), id, req.ToUpdate())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, workspace)
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.workspaceService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ListTasks serves the workspace task listing with optional status and type
// filters. Filters are exclusive; status wins when both are present.
func (h *WorkspaceHandler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var (
		tasks []model.Task
		err   error
	)
	switch {
	case c.Query("status") != "":
		tasks, err = h.taskService.ListByWorkspaceAndStatus(ctx, id, model.TaskStatus(c.Query("status")))
	case c.Query("type") != "":
		tasks, err = h.taskService.ListByWorkspaceAndType(ctx, id, model.TaskType(c.Query("type")))
	default:
		tasks, err = h.taskService.ListByWorkspace(ctx, id)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}
