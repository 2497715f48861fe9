package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type CommentService interface {
	Create(ctx context.Context, taskID, userID int64, content string) (*model.Comment, error)
	ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error)
}

type commentService struct {
	commentStore store.CommentStore
	taskStore    store.TaskStore
}

func NewCommentService(commentStore store.CommentStore, taskStore store.TaskStore) CommentService {
	return &commentService{
		commentStore: commentStore,
		taskStore:    taskStore,
	}
}

func (s *commentService) Create(ctx context.Context, taskID, userID int64, content string) (*model.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, newValidationError("content", "must not be empty")
	}
	if userID == 0 {
		return nil, newValidationError("user_id", "is required")
	}

	if _, err := s.taskStore.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	c := &model.Comment{
		TaskID:  taskID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentStore.Create(ctx, c); err != nil {
		slog.ErrorContext(ctx, "failed to create comment", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	slog.InfoContext(ctx, "comment created", "comment_id", c.ID, "task_id", taskID)
	return c, nil
}

func (s *commentService) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	return s.commentStore.ListByTask(ctx, taskID)
}
