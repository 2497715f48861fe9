package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/queue"
	"taskflow.app/server/internal/store"
)

// Notifier produces the audit-trail notifications that task mutations leave
// behind. Every method is best-effort: the store write it performs is
// advisory, and failures are logged and swallowed so the originating task
// mutation never rolls back or fails because of it.
type Notifier interface {
	TaskCreated(ctx context.Context, task *model.Task)
	TaskUpdated(ctx context.Context, task *model.Task, changedFields []string)
	TaskStatusChanged(ctx context.Context, task *model.Task)
	TaskDuplicate(ctx context.Context, task *model.Task)
	EpicDocumentation(ctx context.Context, epic *model.Task)
}

type notifier struct {
	userStore         store.UserStore
	notificationStore store.NotificationStore
	producer          queue.Producer // optional stream mirror, may be nil
}

func NewNotifier(userStore store.UserStore, notificationStore store.NotificationStore, producer queue.Producer) Notifier {
	return &notifier{
		userStore:         userStore,
		notificationStore: notificationStore,
		producer:          producer,
	}
}

func (n *notifier) TaskCreated(ctx context.Context, task *model.Task) {
	typ := model.NotificationTaskCreated
	fanOut := false
	if task.Source != nil {
		// External-source creations notify every admin, not just the first.
		fanOut = true
		if *task.Source == model.TaskSourceSlack {
			typ = model.NotificationTaskCreatedSlack
		}
	}

	n.deliver(ctx, task, fanOut, typ, "New task", taskSummary(task))
}

func (n *notifier) TaskUpdated(ctx context.Context, task *model.Task, changedFields []string) {
	if len(changedFields) == 0 {
		return
	}

	parts := make([]string, 0, len(changedFields))
	for _, field := range changedFields {
		switch field {
		case "status":
			parts = append(parts, fmt.Sprintf("status → %s", task.Status))
		case "priority":
			parts = append(parts, fmt.Sprintf("priority → %s", task.Priority))
		case "assignee":
			if task.AssigneeID != nil {
				parts = append(parts, fmt.Sprintf("assignee → %d", *task.AssigneeID))
			} else {
				parts = append(parts, "assignee changed")
			}
		case "due date":
			if task.DueDate != nil {
				parts = append(parts, fmt.Sprintf("due date → %s", task.DueDate.Format("2006-01-02")))
			} else {
				parts = append(parts, "due date changed")
			}
		case "task type":
			parts = append(parts, fmt.Sprintf("task type → %s", task.TaskType))
		}
	}

	msg := fmt.Sprintf("Task %q updated: %s", task.Title, strings.Join(parts, ", "))
	n.deliver(ctx, task, false, model.NotificationTaskUpdated, "Task updated", msg)
}

func (n *notifier) TaskStatusChanged(ctx context.Context, task *model.Task) {
	msg := fmt.Sprintf("Task %q moved to %s", task.Title, task.Status)
	n.deliver(ctx, task, false, model.NotificationTaskStatusChanged, "Task status changed", msg)
}

func (n *notifier) TaskDuplicate(ctx context.Context, task *model.Task) {
	msg := fmt.Sprintf("Task %q was updated in place from a repeated external message", task.Title)
	n.deliver(ctx, task, true, model.NotificationTaskDuplicate, "Duplicate task message", msg)
}

func (n *notifier) EpicDocumentation(ctx context.Context, epic *model.Task) {
	msg := fmt.Sprintf("Documentation generated for epic %q", epic.Title)
	n.deliver(ctx, epic, false, model.NotificationEpicDocumentation, "Epic documentation", msg)
}

// deliver writes one notification per recipient. Errors never escape.
func (n *notifier) deliver(ctx context.Context, task *model.Task, fanOut bool, typ model.NotificationType, title, message string) {
	admins, err := n.userStore.ListAdmins(ctx)
	if err != nil {
		slog.WarnContext(ctx, "notification skipped: listing admins failed", "error", err, "type", typ)
		return
	}
	if len(admins) == 0 {
		slog.WarnContext(ctx, "notification skipped: no admin users", "type", typ)
		return
	}
	if !fanOut {
		admins = admins[:1]
	}

	taskID := task.ID
	for _, admin := range admins {
		record := &model.Notification{
			UserID:  admin.ID,
			TaskID:  &taskID,
			Title:   title,
			Message: message,
			Type:    typ,
		}
		if err := n.notificationStore.Create(ctx, record); err != nil {
			slog.WarnContext(ctx, "notification write failed", "error", err, "type", typ, "user_id", admin.ID, "task_id", taskID)
			continue
		}
		if n.producer != nil {
			if err := n.producer.Publish(ctx, record); err != nil {
				slog.WarnContext(ctx, "notification stream publish failed", "error", err, "notification_id", record.ID)
			}
		}
	}
}

func taskSummary(task *model.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "New %s task %q (priority %s", task.TaskType, task.Title, task.Priority)
	if task.DueDate != nil {
		fmt.Fprintf(&b, ", due %s", task.DueDate.Format("2006-01-02"))
	}
	b.WriteString(")")
	if task.Source != nil {
		fmt.Fprintf(&b, " from %s", *task.Source)
	}
	return b.String()
}
