package service_test

import (
	"context"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
)

type mockTaskStore struct {
	getByIDFn                  func(ctx context.Context, id int64) (*model.Task, error)
	getBySlackMessageIDFn      func(ctx context.Context, slackMessageID string) (*model.Task, error)
	getByEmailThreadIDFn       func(ctx context.Context, threadID string) (*model.Task, error)
	createFn                   func(ctx context.Context, task *model.Task) error
	updateFn                   func(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error)
	deleteFn                   func(ctx context.Context, id int64) error
	listByWorkspaceFn          func(ctx context.Context, workspaceID int64) ([]model.Task, error)
	listByWorkspaceAndStatusFn func(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error)
	listByWorkspaceAndTypeFn   func(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error)
	listByParentFn             func(ctx context.Context, parentTaskID int64) ([]model.Task, error)
	listByEpicFn               func(ctx context.Context, epicID int64) ([]model.Task, error)
}

func (m *mockTaskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTaskStore) GetBySlackMessageID(ctx context.Context, slackMessageID string) (*model.Task, error) {
	if m.getBySlackMessageIDFn != nil {
		return m.getBySlackMessageIDFn(ctx, slackMessageID)
	}
	return nil, nil
}

func (m *mockTaskStore) GetByEmailThreadID(ctx context.Context, threadID string) (*model.Task, error) {
	if m.getByEmailThreadIDFn != nil {
		return m.getByEmailThreadIDFn(ctx, threadID)
	}
	return nil, nil
}

func (m *mockTaskStore) Create(ctx context.Context, task *model.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockTaskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	if m.listByWorkspaceFn != nil {
		return m.listByWorkspaceFn(ctx, workspaceID)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error) {
	if m.listByWorkspaceAndStatusFn != nil {
		return m.listByWorkspaceAndStatusFn(ctx, workspaceID, status)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error) {
	if m.listByWorkspaceAndTypeFn != nil {
		return m.listByWorkspaceAndTypeFn(ctx, workspaceID, taskType)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error) {
	if m.listByParentFn != nil {
		return m.listByParentFn(ctx, parentTaskID)
	}
	return nil, nil
}

func (m *mockTaskStore) ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error) {
	if m.listByEpicFn != nil {
		return m.listByEpicFn(ctx, epicID)
	}
	return nil, nil
}

type mockUserStore struct {
	getByIDFn       func(ctx context.Context, id int64) (*model.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*model.User, error)
	createFn        func(ctx context.Context, u *model.User) error
	listFn          func(ctx context.Context) ([]model.User, error)
	listAdminsFn    func(ctx context.Context) ([]model.User, error)
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, nil
}

func (m *mockUserStore) Create(ctx context.Context, u *model.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserStore) List(ctx context.Context) ([]model.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserStore) ListAdmins(ctx context.Context) ([]model.User, error) {
	if m.listAdminsFn != nil {
		return m.listAdminsFn(ctx)
	}
	return nil, nil
}

type mockNotificationStore struct {
	getByIDFn          func(ctx context.Context, id int64) (*model.Notification, error)
	createFn           func(ctx context.Context, n *model.Notification) error
	markReadFn         func(ctx context.Context, id int64) (*model.Notification, error)
	listByUserFn       func(ctx context.Context, userID int64) ([]model.Notification, error)
	listUnreadByUserFn func(ctx context.Context, userID int64) ([]model.Notification, error)
}

func (m *mockNotificationStore) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationStore) Create(ctx context.Context, n *model.Notification) error {
	if m.createFn != nil {
		return m.createFn(ctx, n)
	}
	return nil
}

func (m *mockNotificationStore) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	if m.markReadFn != nil {
		return m.markReadFn(ctx, id)
	}
	return nil, nil
}

func (m *mockNotificationStore) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if m.listByUserFn != nil {
		return m.listByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockNotificationStore) ListUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	if m.listUnreadByUserFn != nil {
		return m.listUnreadByUserFn(ctx, userID)
	}
	return nil, nil
}

// recordingNotifier captures notifier calls so tests can assert on exactly
// which side effects a mutation produced.
type recordingNotifier struct {
	created       []*model.Task
	updated       []*model.Task
	updatedFields [][]string
	statusChanged []*model.Task
	duplicates    []*model.Task
	documented    []*model.Task
}

var _ service.Notifier = (*recordingNotifier)(nil)

func (r *recordingNotifier) TaskCreated(_ context.Context, task *model.Task) {
	r.created = append(r.created, task)
}

func (r *recordingNotifier) TaskUpdated(_ context.Context, task *model.Task, changedFields []string) {
	r.updated = append(r.updated, task)
	r.updatedFields = append(r.updatedFields, changedFields)
}

func (r *recordingNotifier) TaskStatusChanged(_ context.Context, task *model.Task) {
	r.statusChanged = append(r.statusChanged, task)
}

func (r *recordingNotifier) TaskDuplicate(_ context.Context, task *model.Task) {
	r.duplicates = append(r.duplicates, task)
}

func (r *recordingNotifier) EpicDocumentation(_ context.Context, epic *model.Task) {
	r.documented = append(r.documented, epic)
}
