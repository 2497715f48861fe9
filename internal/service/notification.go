package service

import (
	"context"
	"log/slog"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type NotificationService interface {
	ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, id int64) (*model.Notification, error)
}

type notificationService struct {
	notificationStore store.NotificationStore
}

func NewNotificationService(notificationStore store.NotificationStore) NotificationService {
	return &notificationService{notificationStore: notificationStore}
}

func (s *notificationService) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]model.Notification, error) {
	if unreadOnly {
		return s.notificationStore.ListUnreadByUser(ctx, userID)
	}
	return s.notificationStore.ListByUser(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	n, err := s.notificationStore.MarkRead(ctx, id)
	if err != nil {
		return nil, err
	}
	slog.DebugContext(ctx, "notification marked read", "notification_id", id)
	return n, nil
}
