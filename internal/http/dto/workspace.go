package dto

import "taskflow.app/server/internal/model"

type CreateWorkspaceRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

type UpdateWorkspaceRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=2000"`
}

func (r UpdateWorkspaceRequest) ToUpdate() model.WorkspaceUpdate {
	return model.WorkspaceUpdate{
		Name:        r.Name,
		Description: r.Description,
	}
}
