package handler_test

import (
	"context"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type mockTaskService struct {
	createFn                   func(ctx context.Context, params service.CreateTaskParams) (*model.Task, error)
	getFn                      func(ctx context.Context, id int64) (*model.Task, error)
	updateFn                   func(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error)
	updateStatusFn             func(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error)
	deleteFn                   func(ctx context.Context, id int64) error
	listByWorkspaceFn          func(ctx context.Context, workspaceID int64) ([]model.Task, error)
	listByWorkspaceAndStatusFn func(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error)
	listByWorkspaceAndTypeFn   func(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error)
	listByParentFn             func(ctx context.Context, parentTaskID int64) ([]model.Task, error)
	listByEpicFn               func(ctx context.Context, epicID int64) ([]model.Task, error)
	generateEpicDocFn          func(ctx context.Context, epicID int64) (string, error)
}

func (m *mockTaskService) Create(ctx context.Context, params service.CreateTaskParams) (*model.Task, error) {
	if m.createFn != nil {
		return m.createFn(ctx, params)
	}
	return nil, nil
}

func (m *mockTaskService) Get(ctx context.Context, id int64) (*model.Task, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskService) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockTaskService) UpdateStatus(ctx context.Context, id int64, status model.TaskStatus) (*model.Task, error) {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil, nil
}

func (m *mockTaskService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskService) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockTaskService) ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error) {
	if m.listByWorkspaceAndStatusFn != nil {
		return m.listByWorkspaceAndStatusFn(ctx, workspaceID, status)
	}
	return nil, nil
}

func (m *mockTaskService) ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error) {
	if m.listByWorkspaceAndTypeFn != nil {
		return m.listByWorkspaceAndTypeFn(ctx, workspaceID, taskType)
	}
	return nil, nil
}

func (m *mockTaskService) ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error) {
	if m.listByParentFn != nil {
		return m.listByParentFn(ctx, parentTaskID)
	}
	return nil, nil
}

func (m *mockTaskService) ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error) {
	if m.listByEpicFn != nil {
		return m.listByEpicFn(ctx, epicID)
	}
	return nil, nil
}

func (m *mockTaskService) GenerateEpicDocumentation(ctx context.Context, epicID int64) (string, error) {
	if m.generateEpicDocFn != nil {
		return m.generateEpicDocFn(ctx, epicID)
	}
	return "", nil
}

type mockWorkspaceService struct {
	createFn func(ctx context.Context, name string, description *string) (*model.Workspace, error)
	getFn    func(ctx context.Context, id int64) (*model.Workspace, error)
	listFn   func(ctx context.Context) ([]model.Workspace, error)
	updateFn func(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockWorkspaceService) Create(ctx context.Context, name string, description *string) (*model.Workspace, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, description)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Get(ctx context.Context, id int64) (*model.Workspace, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, nil
}

func (m *mockWorkspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockWorkspaceService) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockNotificationService struct {
	listByUserFn func(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error)
	markReadFn   func(ctx context.Context, id int64) (*model.Notification, error)
}

func (m *mockNotificationService) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID, unreadOnly)
	}
	return nil, nil
}

func (m *mockNotificationService) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id)
	}
	return nil, nil
}
