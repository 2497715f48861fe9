package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type CreateTaskParams struct {
	Title          string
	Description    *string
	Status         *model.TaskStatus
	Priority       *model.TaskPriority
	AssigneeID     *int64
	WorkspaceID    int64
	DueDate        *time.Time
	StartDate      *time.Time
	Position       *int
	TaskType       *model.TaskType
	ParentTaskID   *int64
	EmailThreadID  *string
	Source         *string
	SlackMessageID *string
}

type TaskService interface {
	Create(ctx context.Context, params CreateTaskParams) (*model.Task, error)
	Get(ctx context.Context, id int64) (*model.Task, error)
	Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error)
	// UpdateStatus performs the single-field status convenience update. Any
	// status is reachable from any other; no transition graph is enforced,
	// matching the system this one replaces. The completed flag is derived
	// from the new status.
	UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error)
	ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error)
	ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error)
	ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error)
	ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error)
	// GenerateEpicDocumentation renders a plain-text summary of an epic and
	// its member tasks. The document is returned, not stored.
	GenerateEpicDocumentation(ctx context.Context, epicID int64) (string, error)
}

type taskService struct {
	taskStore store.TaskStore
	notifier  Notifier
}

func NewTaskService(taskStore store.TaskStore, notifier Notifier) TaskService {
	return &taskService{
		taskStore: taskStore,
		notifier:  notifier,
	}
}

func (s *taskService) Create(ctx context.Context, params CreateTaskParams) (*model.Task, error) {
	if strings.TrimSpace(params.Title) == "" {
		return nil, newValidationError("title", "must not be empty")
	}
	if params.WorkspaceID == 0 {
		return nil, newValidationError("workspace_id", "is required")
	}

	task := &model.Task{
		Title:          params.Title,
		Description:    params.Description,
		Status:         model.TaskStatusTodo,
		Priority:       model.TaskPriorityMedium,
		AssigneeID:     params.AssigneeID,
		WorkspaceID:    params.WorkspaceID,
		DueDate:        params.DueDate,
		StartDate:      params.StartDate,
		TaskType:       model.TaskTypeAdhoc,
		ParentTaskID:   params.ParentTaskID,
		EmailThreadID:  params.EmailThreadID,
		Source:         params.Source,
		SlackMessageID: params.SlackMessageID,
	}
	if params.Status != nil {
		if !params.Status.Valid() {
			return nil, newValidationError("status", "unknown value")
		}
		task.Status = *params.Status
		task.Completed = *params.Status == model.TaskStatusCompleted
	}
	if params.Priority != nil {
		if !params.Priority.Valid() {
			return nil, newValidationError("priority", "unknown value")
		}
		task.Priority = *params.Priority
	}
	if params.TaskType != nil {
		if !params.TaskType.Valid() {
			return nil, newValidationError("task_type", "unknown value")
		}
		task.TaskType = *params.TaskType
	}
	if params.Position != nil {
		task.Position = *params.Position
	}

	if err := s.taskStore.Create(ctx, task); err != nil {
		slog.ErrorContext(ctx, "failed to create task", "error", err, "workspace_id", params.WorkspaceID)
		return nil, fmt.Errorf("creating task: %w", err)
	}

	slog.InfoContext(ctx, "task created", "task_id", task.ID, "workspace_id", task.WorkspaceID, "task_type", task.TaskType)
	s.notifier.TaskCreated(ctx, task)

	return task, nil
}

func (s *taskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	return s.taskStore.GetByID(ctx, id)
}

func (s *taskService) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, newValidationError("title", "must not be empty")
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, newValidationError("status", "unknown value")
	}
	if upd.Priority != nil && !upd.Priority.Valid() {
		return nil, newValidationError("priority", "unknown value")
	}
	if upd.TaskType != nil && !upd.TaskType.Valid() {
		return nil, newValidationError("task_type", "unknown value")
	}

	// Keep the completed flag in lockstep with status unless the caller set
	// it explicitly.
	if upd.Status != nil && upd.Completed == nil {
		completed := *upd.Status == model.TaskStatusCompleted
		upd.Completed = &completed
	}

	changed := changedNotifyFields(upd)

	task, err := s.taskStore.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task updated", "task_id", task.ID)
	if len(changed) > 0 {
		s.notifier.TaskUpdated(ctx, task, changed)
	}

	return task, nil
}

func (s *taskService) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
	if !status.Valid() {
		return nil, newValidationError("status", "unknown value")
	}

	completed := status == model.TaskStatusCompleted
	task, err := s.taskStore.Update(ctx, id, model.TaskUpdate{
		Status:    &status,
		Completed: &completed,
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "task status changed", "task_id", task.ID, "status", task.Status)
	s.notifier.TaskStatusChanged(ctx, task)

	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.taskStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "task deleted", "task_id", id)
	return nil
}

func (s *taskService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	return s.taskStore.ListByWorkspace(ctx, workspaceID)
}

func (s *taskService) ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error) {
	if !status.Valid() {
		return nil, newValidationError("status", "unknown value")
	}
	return s.taskStore.ListByWorkspaceAndStatus(ctx, workspaceID, status)
}

func (s *taskService) ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error) {
	if !taskType.Valid() {
		return nil, newValidationError("task_type", "unknown value")
	}
	return s.taskStore.ListByWorkspaceAndType(ctx, workspaceID, taskType)
}

func (s *taskService) ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error) {
	return s.taskStore.ListByParent(ctx, parentTaskID)
}

func (s *taskService) ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error) {
	return s.taskStore.ListByEpic(ctx, epicID)
}

func (s *taskService) GenerateEpicDocumentation(ctx context.Context, epicID int64) (string, error) {
	epic, err := s.taskStore.GetByID(ctx, epicID)
	if err != nil {
		return "", err
	}
	if epic.TaskType != model.TaskTypeEpic {
		return "", newValidationError("task_type", "task is not an epic")
	}

	members, err := s.taskStore.ListByEpic(ctx, epicID)
	if err != nil {
		return "", fmt.Errorf("listing epic members: %w", err)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Epic: %s\n\n", epic.Title)
	if epic.Description != nil && *epic.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", *epic.Description)
	}

	counts := map[model.TaskStatus]int{}
	for _, m := range members {
		counts[m.Status]++
	}
	fmt.Fprintf(&b, "Tasks: %d total, %d todo, %d in progress, %d in review, %d completed\n\n",
		len(members),
		counts[model.TaskStatusTodo],
		counts[model.TaskStatusInProgress],
		counts[model.TaskStatusInReview],
		counts[model.TaskStatusCompleted])

	for _, m := range members {
		fmt.Fprintf(&b, "- [%s] %s (priority %s", m.Status, m.Title, m.Priority)
		if m.DueDate != nil {
			fmt.Fprintf(&b, ", due %s", m.DueDate.Format("2006-01-02"))
		}
		b.WriteString(")\n")
	}

	slog.InfoContext(ctx, "epic documentation generated", "task_id", epic.ID, "members", len(members))
	s.notifier.EpicDocumentation(ctx, epic)

	return b.String(), nil
}

// changedNotifyFields returns the notification-worthy fields a partial update
// touches. Title and description edits are deliberately silent.
func changedNotifyFields(upd model.TaskUpdate) []string {
	changed := make([]string, 0, 5)
	if upd.Status != nil {
		changed = append(changed, "status")
	}
	if upd.Priority != nil {
		changed = append(changed, "priority")
	}
	if upd.AssigneeID != nil {
		changed = append(changed, "assignee")
	}
	if upd.DueDate != nil {
		changed = append(changed, "due date")
	}
	if upd.TaskType != nil {
		changed = append(changed, "task type")
	}
	return changed
}
