package dto

import (
	"time"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type CreateTaskRequest struct {
	Title        string     `json:"title" binding:"required,min=1,max=500"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=10000"`
	Status       *string    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress in_review completed"`
	Priority     *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	AssigneeID   *int64     `json:"assignee_id,omitempty"`
	WorkspaceID  int64      `json:"workspace_id" binding:"required"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Position     *int       `json:"position,omitempty"`
	TaskType     *string    `json:"task_type,omitempty" binding:"omitempty,oneof=adhoc sprint epic"`
	ParentTaskID *int64     `json:"parent_task_id,omitempty"`
}

func (r CreateTaskRequest) ToParams() service.CreateTaskParams {
	return service.CreateTaskParams{
		Title:        r.Title,
		Description:  r.Description,
		Status:       statusPtr(r.Status),
		Priority:     priorityPtr(r.Priority),
		AssigneeID:   r.AssigneeID,
		WorkspaceID:  r.WorkspaceID,
		DueDate:      r.DueDate,
		StartDate:    r.StartDate,
		Position:     r.Position,
		TaskType:     typePtr(r.TaskType),
		ParentTaskID: r.ParentTaskID,
	}
}

type UpdateTaskRequest struct {
	Title        *string    `json:"title,omitempty" binding:"omitempty,min=1,max=500"`
	Description  *string    `json:"description,omitempty" binding:"omitempty,max=10000"`
	Status       *string    `json:"status,omitempty" binding:"omitempty,oneof=todo in_progress in_review completed"`
	Priority     *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	AssigneeID   *int64     `json:"assignee_id,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	Completed    *bool      `json:"completed,omitempty"`
	Position     *int       `json:"position,omitempty"`
	TaskType     *string    `json:"task_type,omitempty" binding:"omitempty,oneof=adhoc sprint epic"`
	ParentTaskID *int64     `json:"parent_task_id,omitempty"`
}

func (r UpdateTaskRequest) ToUpdate() model.TaskUpdate {
	return model.TaskUpdate{
		Title:        r.Title,
		Description:  r.Description,
		Status:       statusPtr(r.Status),
		Priority:     priorityPtr(r.Priority),
		AssigneeID:   r.AssigneeID,
		DueDate:      r.DueDate,
		StartDate:    r.StartDate,
		Completed:    r.Completed,
		Position:     r.Position,
		TaskType:     typePtr(r.TaskType),
		ParentTaskID: r.ParentTaskID,
	}
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress in_review completed"`
}

type EpicDocumentationResponse struct {
	EpicID        int64  `json:"epic_id"`
	Documentation string `json:"documentation"`
}

func statusPtr(s *string) *model.TaskStatus {
	if s == nil {
		return nil
	}
	v := model.TaskStatus(*s)
	return &v
}

func priorityPtr(s *string) *model.TaskPriority {
	if s == nil {
		return nil
	}
	v := model.TaskPriority(*s)
	return &v
}

func typePtr(s *string) *model.TaskType {
	if s == nil {
		return nil
	}
	v := model.TaskType(*s)
	return &v
}
