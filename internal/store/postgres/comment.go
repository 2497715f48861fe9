package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
)

type commentStore struct {
	db *db.DB
}

const commentColumns = "id, task_id, user_id, content, created_at"

func (s *commentStore) GetByID(ctx context.Context, id int64) (*model.Comment, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE id = $1", id)
	c, err := scanComment(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return c, nil
}

func (s *commentStore) Create(ctx context.Context, c *model.Comment) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO comments (task_id, user_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		c.TaskID, c.UserID, c.Content)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}
	return nil
}

func (s *commentStore) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	rows, err := s.db.Pool().Query(ctx,
		"SELECT "+commentColumns+" FROM comments WHERE task_id = $1 ORDER BY created_at, id", taskID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	result := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		result = append(result, *c)
	}
	return result, rows.Err()
}

func scanComment(row pgx.Row) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.TaskID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
