package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type subtaskStore struct {
	db *db.DB
}

const subtaskColumns = "id, task_id, title, completed"

func (s *subtaskStore) GetByID(ctx context.Context, id int64) (*model.Subtask, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+subtaskColumns+" FROM subtasks WHERE id = $1", id)
	st, err := scanSubtask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return st, nil
}

func (s *subtaskStore) Create(ctx context.Context, st *model.Subtask) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO subtasks (task_id, title, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		st.TaskID, st.Title, st.Completed)
	if err := row.Scan(&st.ID); err != nil {
		return fmt.Errorf("inserting subtask: %w", err)
	}
	return nil
}

func (s *subtaskStore) Update(ctx context.Context, id int64, upd model.SubtaskUpdate) (*model.Subtask, error) {
	row := s.db.Pool().QueryRow(ctx,
		`UPDATE subtasks
		 SET title = COALESCE($2, title),
		     completed = COALESCE($3, completed)
		 WHERE id = $1
		 RETURNING `+subtaskColumns,
		id, upd.Title, upd.Completed)
	st, err := scanSubtask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return st, nil
}

func (s *subtaskStore) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Pool().Exec(ctx, "DELETE FROM subtasks WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("deleting subtask: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *subtaskStore) ListByTask(ctx context.Context, taskID int64) ([]model.Subtask, error) {
	rows, err := s.db.Pool().Query(ctx,
		"SELECT "+subtaskColumns+" FROM subtasks WHERE task_id = $1 ORDER BY id", taskID)
	if err != nil {
		return nil, fmt.Errorf("querying subtasks: %w", err)
	}
	defer rows.Close()

	result := make([]model.Subtask, 0)
	for rows.Next() {
		st, err := scanSubtask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning subtask: %w", err)
		}
		result = append(result, *st)
	}
	return result, rows.Err()
}

func scanSubtask(row pgx.Row) (*model.Subtask, error) {
	var st model.Subtask
	if err := row.Scan(&st.ID, &st.TaskID, &st.Title, &st.Completed); err != nil {
		return nil, err
	}
	return &st, nil
}
