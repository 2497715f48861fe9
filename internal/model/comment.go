package model

import "time"

// Comment is removed with its parent task. CreatedAt is server-assigned and
// immutable; comments are displayed oldest first.
type Comment struct {
	ID        int64     `json:"id"`
	TaskID    int64     `json:"task_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
