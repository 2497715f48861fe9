package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusInReview   TaskStatus = "in_review"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusInReview, TaskStatusCompleted:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

type TaskType string

const (
	TaskTypeAdhoc  TaskType = "adhoc"
	TaskTypeSprint TaskType = "sprint"
	TaskTypeEpic   TaskType = "epic"
)

func (t TaskType) Valid() bool {
	switch t {
	case TaskTypeAdhoc, TaskTypeSprint, TaskTypeEpic:
		return true
	}
	return false
}

// TaskSourceSlack tags tasks created from Slack channel ingestion.
const TaskSourceSlack = "slack"

// TaskSourceEmail tags tasks created from email ingestion.
const TaskSourceEmail = "email"

type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description,omitempty"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	AssigneeID  *int64       `json:"assignee_id,omitempty"`
	WorkspaceID int64        `json:"workspace_id"`
	DueDate     *time.Time   `json:"due_date,omitempty"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	Completed   bool         `json:"completed"`
	Position    int          `json:"position"`
	TaskType    TaskType     `json:"task_type"`

	// ParentTaskID is a soft reference: it carries email-reply threading and
	// epic linkage and is never validated for existence.
	ParentTaskID *int64 `json:"parent_task_id,omitempty"`

	EmailThreadID  *string `json:"email_thread_id,omitempty"`
	Source         *string `json:"source,omitempty"`
	SlackMessageID *string `json:"slack_message_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TaskUpdate is a partial update. Nil fields are left untouched by the merge.
// The typed struct cannot express "explicitly clear this field"; optional
// references stay set until overwritten.
type TaskUpdate struct {
	Title          *string       `json:"title,omitempty"`
	Description    *string       `json:"description,omitempty"`
	Status         *TaskStatus   `json:"status,omitempty"`
	Priority       *TaskPriority `json:"priority,omitempty"`
	AssigneeID     *int64        `json:"assignee_id,omitempty"`
	DueDate        *time.Time    `json:"due_date,omitempty"`
	StartDate      *time.Time    `json:"start_date,omitempty"`
	Completed      *bool         `json:"completed,omitempty"`
	Position       *int          `json:"position,omitempty"`
	TaskType       *TaskType     `json:"task_type,omitempty"`
	ParentTaskID   *int64        `json:"parent_task_id,omitempty"`
	EmailThreadID  *string       `json:"email_thread_id,omitempty"`
	Source         *string       `json:"source,omitempty"`
	SlackMessageID *string       `json:"slack_message_id,omitempty"`
}
