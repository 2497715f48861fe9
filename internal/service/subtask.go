package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type SubtaskService interface {
	Create(ctx context.Context, taskID int64, title string) (*model.Subtask, error)
	Update(ctx context.Context, id int64, upd model.SubtaskUpdate) (*model.Subtask, error)
	Delete(ctx context.Context, id int64) error
	ListByTask(ctx context.Context, taskID int64) ([]model.Subtask, error)
}

type subtaskService struct {
	subtaskStore store.SubtaskStore
	taskStore    store.TaskStore
}

func NewSubtaskService(subtaskStore store.SubtaskStore, taskStore store.TaskStore) SubtaskService {
	return &subtaskService{
		subtaskStore: subtaskStore,
		taskStore:    taskStore,
	}
}

func (s *subtaskService) Create(ctx context.Context, taskID int64, title string) (*model.Subtask, error) {
	if strings.TrimSpace(title) == "" {
		return nil, newValidationError("title", "must not be empty")
	}

	// The owning task must exist at creation time; afterwards the reference
	// lives or dies with the cascade.
	if _, err := s.taskStore.GetByID(ctx, taskID); err != nil {
		return nil, err
	}

	st := &model.Subtask{
		TaskID: taskID,
		Title:  title,
	}
	if err := s.subtaskStore.Create(ctx, st); err != nil {
		slog.ErrorContext(ctx, "failed to create subtask", "error", err, "task_id", taskID)
		return nil, fmt.Errorf("creating subtask: %w", err)
	}

	slog.InfoContext(ctx, "subtask created", "subtask_id", st.ID, "task_id", taskID)
	return st, nil
}

func (s *subtaskService) Update(ctx context.Context, id int64, upd model.SubtaskUpdate) (*model.Subtask, error) {
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, newValidationError("title", "must not be empty")
	}
	return s.subtaskStore.Update(ctx, id, upd)
}

func (s *subtaskService) Delete(ctx context.Context, id int64) error {
	return s.subtaskStore.Delete(ctx, id)
}

func (s *subtaskService) ListByTask(ctx context.Context, taskID int64) ([]model.Subtask, error) {
	return s.subtaskStore.ListByTask(ctx, taskID)
}
