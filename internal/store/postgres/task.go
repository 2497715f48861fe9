package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"taskflow.app/server/core/db"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/store"
)

type taskStore struct {
	db *db.DB
}

const taskColumns = `id, title, description, status, priority, assignee_id, workspace_id,
	due_date, start_date, completed, position, task_type, parent_task_id,
	email_thread_id, source, slack_message_id, created_at, updated_at`

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1", id)
	t, err := scanTask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

func (s *taskStore) GetBySlackMessageID(ctx context.Context, slackMessageID string) (*model.Task, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE slack_message_id = $1 ORDER BY id LIMIT 1", slackMessageID)
	t, err := scanTask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

func (s *taskStore) GetByEmailThreadID(ctx context.Context, threadID string) (*model.Task, error) {
	row := s.db.Pool().QueryRow(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE email_thread_id = $1 ORDER BY id LIMIT 1", threadID)
	t, err := scanTask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

func (s *taskStore) Create(ctx context.Context, task *model.Task) error {
	row := s.db.Pool().QueryRow(ctx,
		`INSERT INTO tasks (title, description, status, priority, assignee_id, workspace_id,
		                    due_date, start_date, completed, position, task_type, parent_task_id,
		                    email_thread_id, source, slack_message_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		 RETURNING id, created_at, updated_at`,
		task.Title, task.Description, string(task.Status), string(task.Priority),
		task.AssigneeID, task.WorkspaceID, task.DueDate, task.StartDate,
		task.Completed, task.Position, string(task.TaskType), task.ParentTaskID,
		task.EmailThreadID, task.Source, task.SlackMessageID)
	if err := row.Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt); err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (s *taskStore) Update(ctx context.Context, id int64, upd model.TaskUpdate) (*model.Task, error) {
	row := s.db.Pool().QueryRow(ctx,
		`UPDATE tasks
		 SET title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     status = COALESCE($4, status),
		     priority = COALESCE($5, priority),
		     assignee_id = COALESCE($6, assignee_id),
		     due_date = COALESCE($7, due_date),
		     start_date = COALESCE($8, start_date),
		     completed = COALESCE($9, completed),
		     position = COALESCE($10, position),
		     task_type = COALESCE($11, task_type),
		     parent_task_id = COALESCE($12, parent_task_id),
		     email_thread_id = COALESCE($13, email_thread_id),
		     source = COALESCE($14, source),
		     slack_message_id = COALESCE($15, slack_message_id),
		     updated_at = now()
		 WHERE id = $1
		 RETURNING `+taskColumns,
		id, upd.Title, upd.Description, statusArg(upd.Status), priorityArg(upd.Priority),
		upd.AssigneeID, upd.DueDate, upd.StartDate, upd.Completed, upd.Position,
		typeArg(upd.TaskType), upd.ParentTaskID, upd.EmailThreadID, upd.Source, upd.SlackMessageID)
	t, err := scanTask(row)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return t, nil
}

// Delete removes the task and its dependents in one transaction. The FK
// cascade would cover subtasks and comments on its own; the explicit deletes
// keep the ordering observable in statement logs.
func (s *taskStore) Delete(ctx context.Context, id int64) error {
	return s.db.WithTx(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, "DELETE FROM subtasks WHERE task_id = $1", id); err != nil {
			return fmt.Errorf("deleting subtasks: %w", err)
		}
		if _, err := tx.Exec(ctx, "DELETE FROM comments WHERE task_id = $1", id); err != nil {
			return fmt.Errorf("deleting comments: %w", err)
		}
		tag, err := tx.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
		if err != nil {
			return fmt.Errorf("deleting task: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return store.ErrNotFound
		}
		return nil
	})
}

func (s *taskStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Task, error) {
	return s.query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE workspace_id = $1 ORDER BY id", workspaceID)
}

func (s *taskStore) ListByWorkspaceAndStatus(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]model.Task, error) {
	return s.query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE workspace_id = $1 AND status = $2 ORDER BY id",
		workspaceID, string(status))
}

func (s *taskStore) ListByWorkspaceAndType(ctx context.Context, workspaceID int64, taskType model.TaskType) ([]model.Task, error) {
	return s.query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE workspace_id = $1 AND task_type = $2 ORDER BY id",
		workspaceID, string(taskType))
}

func (s *taskStore) ListByParent(ctx context.Context, parentTaskID int64) ([]model.Task, error) {
	return s.query(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE parent_task_id = $1 ORDER BY id", parentTaskID)
}

func (s *taskStore) ListByEpic(ctx context.Context, epicID int64) ([]model.Task, error) {
	return s.ListByParent(ctx, epicID)
}

func (s *taskStore) query(ctx context.Context, sql string, args ...any) ([]model.Task, error) {
	rows, err := s.db.Pool().Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer rows.Close()

	result := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		result = append(result, *t)
	}
	return result, rows.Err()
}

func scanTask(row pgx.Row) (*model.Task, error) {
	var t model.Task
	var status, priority, taskType string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &status, &priority, &t.AssigneeID,
		&t.WorkspaceID, &t.DueDate, &t.StartDate, &t.Completed, &t.Position, &taskType,
		&t.ParentTaskID, &t.EmailThreadID, &t.Source, &t.SlackMessageID,
		&t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	t.Status = model.TaskStatus(status)
	t.Priority = model.TaskPriority(priority)
	t.TaskType = model.TaskType(taskType)
	return &t, nil
}

func statusArg(s *model.TaskStatus) *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

func priorityArg(p *model.TaskPriority) *string {
	if p == nil {
		return nil
	}
	v := string(*p)
	return &v
}

func typeArg(t *model.TaskType) *string {
	if t == nil {
		return nil
	}
	v := string(*t)
	return &v
}
