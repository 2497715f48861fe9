package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type notificationStore struct {
	db *DB
}

func (s *notificationStore) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	n, ok := s.db.notifications[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneNotification(n), nil
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextNotificationID++
	n.ID = s.db.nextNotificationID
	n.CreatedAt = s.db.now()
	s.db.notifications[n.ID] = cloneNotification(n)
	return nil
}

// MarkRead is the only mutation a notification ever sees.
func (s *notificationStore) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	n, ok := s.db.notifications[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	n.Read = true
	return cloneNotification(n), nil
}

func (s *notificationStore) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.list(func(n *model.Notification) bool { return n.UserID == userID }), nil
}

func (s *notificationStore) ListUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.list(func(n *model.Notification) bool { return n.UserID == userID && !n.Read }), nil
}

func (s *notificationStore) list(keep func(*model.Notification) bool) []model.Notification {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	result := make([]model.Notification, 0)
	for _, n := range s.db.notifications {
		if keep(n) {
			result = append(result, *cloneNotification(n))
		}
	}
	// Newest first for display; ties fall back to newest id.
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func cloneNotification(n *model.Notification) *model.Notification {
	c := *n
	c.TaskID = cp(n.TaskID)
	return &c
}
