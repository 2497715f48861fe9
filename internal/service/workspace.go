package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type WorkspaceService interface {
	Create(ctx context.Context, name string, description *string) (*model.Workspace, error)
	Get(ctx context.Context, id int64) (*model.Workspace, error)
	List(ctx context.Context) ([]model.Workspace, error)
	Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error)
	// Delete removes the workspace only; its tasks are left in place with a
	// now-dangling workspace reference.
	Delete(ctx context.Context, id int64) error
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore) WorkspaceService {
	return &workspaceService{workspaceStore: workspaceStore}
}

func (s *workspaceService) Create(ctx context.Context, name string, description *string) (*model.Workspace, error) {
	if strings.TrimSpace(name) == "" {
		return nil, newValidationError("name", "must not be empty")
	}

	ws := &model.Workspace{
		Name:        name,
		Description: description,
	}
	if err := s.workspaceStore.Create(ctx, ws); err != nil {
		slog.ErrorContext(ctx, "failed to create workspace", "error", err)
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	slog.InfoContext(ctx, "workspace created", "workspace_id", ws.ID)
	return ws, nil
}

func (s *workspaceService) Get(ctx context.Context, id int64) (*model.Workspace, error) {
	return s.workspaceStore.GetByID(ctx, id)
}

func (s *workspaceService) List(ctx context.Context) ([]model.Workspace, error) {
	return s.workspaceStore.List(ctx)
}

func (s *workspaceService) Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error) {
	if upd.Name != nil && strings.TrimSpace(*upd.Name) == "" {
		return nil, newValidationError("name", "must not be empty")
	}
	return s.workspaceStore.Update(ctx, id, upd)
}

func (s *workspaceService) Delete(ctx context.Context, id int64) error {
	if err := s.workspaceStore.Delete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "workspace deleted", "workspace_id", id)
	return nil
}
