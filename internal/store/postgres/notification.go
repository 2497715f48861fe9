package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
)

type notificationStore struct {
	db *db.DB
}

const notificationColumns = "id, user_id, task_id, title, message, read, type, created_at"

func (s *notificationStore) GetByID(ctx context.Context, id int64) (*model.Notification, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE id = $1", id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return n, nil
}

func (s *notificationStore) Create(ctx context.Context, n *model.Notification) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO notifications (user_id, task_id, title, message, read, type)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		n.UserID, n.TaskID, n.Title, n.Message, n.Read, string(n.Type))
	if err := row.Scan(&n.ID, &n.CreatedAt); err != nil {
		return fmt.Errorf("inserting notification: %w", err)
	}
	return nil
}

func (s *notificationStore) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	row := s.db.Pool().QueryRow(ctx,
		`UPDATE notifications SET read = TRUE WHERE id = $1 RETURNING `+notificationColumns, id)
	n, err := scanNotification(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return n, nil
}

func (s *notificationStore) ListByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.query(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE user_id = $1 ORDER BY created_at DESC, id DESC",
		userID)
}

func (s *notificationStore) ListUnreadByUser(ctx context.Context, userID int64) ([]model.Notification, error) {
	return s.query(ctx,
		"SELECT "+notificationColumns+" FROM notifications WHERE user_id = $1 AND read = FALSE ORDER BY created_at DESC, id DESC",
		userID)
}

func (s *notificationStore) query(ctx context.Context, sql string, args ...any) ([]model.Notification, error) {
	rows, err := s.db.Pool().Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	result := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		result = append(result, *n)
	}
	return result, rows.Err()
}

func scanNotification(row pgx.Row) (*model.Notification, error) {
	var n model.Notification
	var typ string
	if err := row.Scan(&n.ID, &n.UserID, &n.TaskID, &n.Title, &n.Message, &n.Read, &typ, &n.CreatedAt); err != nil {
		return nil, err
	}
	n.Type = model.NotificationType(typ)
	return &n, nil
}
