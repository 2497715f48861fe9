package model

import "time"

type NotificationType string

const (
	NotificationTaskCreated       NotificationType = "task_created"
	NotificationTaskCreatedSlack  NotificationType = "task_created_slack"
	NotificationTaskUpdated       NotificationType = "task_updated"
	NotificationTaskStatusChanged NotificationType = "task_status_changed"
	NotificationTaskDuplicate     NotificationType = "task_duplicate"
	NotificationEpicDocumentation NotificationType = "epic_documentation"
)

// Notification is an audit-trail record produced as a side effect of task
// mutations. TaskID is a soft reference and survives task deletion. Only the
// read flag ever changes after creation; display order is newest first.
type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id"`
	TaskID    *int64           `json:"task_id,omitempty"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Read      bool             `json:"read"`
	Type      NotificationType `json:"type"`
	CreatedAt time.Time        `json:"created_at"`
}
