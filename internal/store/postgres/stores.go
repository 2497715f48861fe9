// Package postgres implements the entity stores over pgx. BIGSERIAL columns
// preserve the id contract (per-type, strictly increasing, never reused) and
// the task cascade runs inside one transaction.
package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/store"
)

type Stores struct {
	db *db.DB
}

func NewStores(database *db.DB) *Stores {
	return &Stores{db: database}
}

func (s *Stores) Users() store.UserStore                 { return &userStore{db: s.db} }
func (s *Stores) Workspaces() store.WorkspaceStore       { return &workspaceStore{db: s.db} }
func (s *Stores) Tasks() store.TaskStore                 { return &taskStore{db: s.db} }
func (s *Stores) Subtasks() store.SubtaskStore           { return &subtaskStore{db: s.db} }
func (s *Stores) Comments() store.CommentStore           { return &commentStore{db: s.db} }
func (s *Stores) Notifications() store.NotificationStore { return &notificationStore{db: s.db} }

func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}
