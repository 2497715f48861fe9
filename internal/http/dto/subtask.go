package dto

import "taskflow.app/server/internal/model"

type CreateSubtaskRequest struct {
	Title string `json:"title" binding:"required,min=1,max=500"`
}

type UpdateSubtaskRequest struct {
	Title     *string `json:"title,omitempty" binding:"omitempty,min=1,max=500"`
	Completed *bool   `json:"completed,omitempty"`
}

func (r UpdateSubtaskRequest) ToUpdate() model.SubtaskUpdate {
	return model.SubtaskUpdate{
		Title:     r.Title,
		Completed: r.Completed,
	}
}
