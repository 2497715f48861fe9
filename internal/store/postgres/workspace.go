package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type workspaceStore struct {
	db *db.DB
}

const workspaceColumns = "id, name, description, created_at, updated_at"

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+workspaceColumns+" FROM workspaces WHERE id = $1", id)
	ws, err := scanWorkspace(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return ws, nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO workspaces (name, description)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at`,
		ws.Name, ws.Description)
	if err := row.Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
		return fmt.Errorf("inserting workspace: %w", err)
	}
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, id int64, upd model.WorkspaceUpdate) (*model.Workspace, error) {
	row := s.db.Pool().QueryRow(ctx,
		`UPDATE workspaces
		 SET name = COALESCE($2, name),
		     description = COALESCE($3, description),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+workspaceColumns,
		id, upd.Name, upd.Description)
	ws, err := scanWorkspace(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return ws, nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Pool().Exec(ctx, "DELETE FROM workspaces WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting workspace: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *workspaceStore) List(ctx context.Context) ([]model.Workspace, error) {
	rows, err := s.db.Pool().Query(ctx, "SELECT "+workspaceColumns+" FROM workspaces ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying workspaces: %w", err)
	}
	defer rows.Close()

	result := make([]model.Workspace, 0)
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning workspace: %w", err)
		}
		result = append(result, *ws)
	}
	return result, rows.Err()
}

func scanWorkspace(row pgx.Row) (*model.Workspace, error) {
	var ws model.Workspace
	if err := row.Scan(&ws.ID, &ws.Name, &ws.Description, &ws.CreatedAt, &ws.UpdatedAt); err != nil {
		return nil, err
	}
	return &ws, nil
}
