// Package memory implements the entity stores over process-local maps. It is
// the default backend: per-type identifier counters starting at 1 that are
// never reused, snapshot list results, and a task cascade delete that is
// atomic under a single lock.
package memory

import (
	"sync"
	"time"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

// DB is the single shared mutable resource of the process. Every store
// operation takes the one lock, which is all the isolation the system
// defines; there is no per-entity versioning.
type DB struct {
	mu sync.RWMutex

	users         map[int64]*model.User
	workspaces    map[int64]*model.Workspace
	tasks         map[int64]*model.Task
	subtasks      map[int64]*model.Subtask
	comments      map[int64]*model.Comment
	notifications map[int64]*model.Notification

	nextUserID         int64
	nextWorkspaceID    int64
	nextTaskID         int64
	nextSubtaskID      int64
	nextCommentID      int64
	nextNotificationID int64

	now func() time.Time
}

func NewDB() *DB {
	return &DB{
		users:         make(map[int64]*model.User),
		workspaces:    make(map[int64]*model.Workspace),
		tasks:         make(map[int64]*model.Task),
		subtasks:      make(map[int64]*model.Subtask),
		comments:      make(map[int64]*model.Comment),
		notifications: make(map[int64]*model.Notification),
		now:           time.Now,
	}
}

// Stores hands out the per-entity stores bound to one DB.
type Stores struct {
	db *DB
}

func NewStores(db *DB) *Stores {
	return &Stores{db: db}
}

func (s *Stores) Users() store.UserStore                 { return &userStore{db: s.db} }
func (s *Stores) Workspaces() store.WorkspaceStore       { return &workspaceStore{db: s.db} }
func (s *Stores) Tasks() store.TaskStore                 { return &taskStore{db: s.db} }
func (s *Stores) Subtasks() store.SubtaskStore           { return &subtaskStore{db: s.db} }
func (s *Stores) Comments() store.CommentStore           { return &commentStore{db: s.db} }
func (s *Stores) Notifications() store.NotificationStore { return &notificationStore{db: s.db} }

// cp deep-copies an optional field so returned snapshots never alias store
// state.
func cp[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
