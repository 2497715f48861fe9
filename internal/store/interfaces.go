package store

import (
	"context"
	"errors"

	"taskflow.app/server/internal/model"
)

// ErrNotFound reports that an operation addressed an id with no entity behind
// it. Absence is an expected outcome, not a failure; callers decide whether it
// maps to a 404 or a no-op.
var ErrNotFound = errors.New("not found")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	List(ctx context.Context) ([]model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error // no cascade to tasks
	List(ctx context.Context) ([]model.Workspace, error)
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	GetBySlackMessageID(ctx context.Context, slackMessageID string) (*model.Task, error)
	GetByEmailThreadID(ctx context.Context, threadID string) (*model.Task, error)
	Create(ctx context.Context, task *model.Task) error
	Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error)
	// Delete removes the task together with every subtask and comment that
	// references it. The cascade is atomic: no caller ever observes a task
	// whose dependents are partially gone.
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error)
	ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error)
	ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error)
	ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error)
	ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error)
}

type SubtaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Subtask, error)
	Create(ctx context.Context, st *model.Subtask) error
	Update(ctx context.Context, id int64, upd model.SubtaskUpdate) (*model.Subtask, error)
	Delete(ctx context.Context, id int64) error
	ListByTask(ctx context.Context, taskID int64) ([]model.Subtask, error)
}

type CommentStore interface {
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) error
	ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) // oldest first
}

type NotificationStore interface {
	GetByID(ctx context.Context, id int64) (*model.Notification, error)
	Create(ctx context.Context, n *model.Notification) error
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) // newest first
	ListUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error)
}

// Provider hands out the per-entity stores of one backend. Both the in-memory
// and the Postgres backend satisfy it, so services never know which one they
// run against.
type Provider interface {
	Users() UserStore
	Workspaces() WorkspaceStore
	Tasks() TaskStore
	Subtasks() SubtaskStore
	Comments() CommentStore
	Notifications() NotificationStore
}
