package memory

import (
	"context"
	"sort"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type workspaceStore struct {
	db *DB
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	ws, ok := s.db.workspaces[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return cloneWorkspace(ws), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	s.db.nextWorkspaceID++
	ws.ID = s.db.nextWorkspaceID
	ws.CreatedAt = s.db.now()
	ws.UpdatedAt = ws.CreatedAt
	s.db.workspaces[ws.ID] = cloneWorkspace(ws)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error) {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	ws, ok := s.db.workspaces[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if upd.Name != nil {
		ws.Name = *upd.Name
	}
	if upd.Description != nil {
		ws.Description = cp(upd.Description)
	}
	ws.UpdatedAt = s.db.now()
	return cloneWorkspace(ws), nil
}

// Delete removes the workspace only. Tasks keep their workspace
// reference as a dangling soft link.
func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	if _, ok := s.db.workspaces[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.db.workspaces, id)
	return nil
}

func (s *workspaceStore) List(ctx context.Context) ([]model.Workspace, error) {
	s.db.mu.RLock()
	defer s.db.mu.RUnlock()

	result := make([]model.Workspace, 0, len(s.db.workspaces))
	for _, ws := range s.db.workspaces {
		result = append(result, *cloneWorkspace(ws))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func cloneWorkspace(ws *model.Workspace) *model.Workspace {
	c := *ws
	c.Description = cp(ws.Description)
	return &c
}
