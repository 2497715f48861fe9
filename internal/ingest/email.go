package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"taskflow.app/server/common/logger"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
	"taskflow.app/server/internal/store"
)

// MailMessage is one fetched email, already flattened to the fields the
// ingestor needs.
type MailMessage struct {
	MessageID string
	InReplyTo string
	Subject   string
	From      string
	Body      string
}

// MailSource fetches unseen messages from a mailbox. Implementations mark
// fetched messages as seen so a message is delivered at most once.
type MailSource interface {
	FetchUnseen(ctx context.Context) ([]MailMessage, error)
	Close() error
}

// EmailIngestor turns mailbox messages into tasks. A fresh message becomes a
// task in the configured workspace; a reply to a known thread becomes a
// comment on that thread's task, attributed to the first admin.
type EmailIngestor struct {
	source    MailSource
	tasks     service.TaskService
	comments  service.CommentService
	taskStore store.TaskStore
	userStore store.UserStore

	workspaceID int64
}

func NewEmailIngestor(
	source MailSource,
	tasks service.TaskService,
	comments service.CommentService,
	taskStore store.TaskStore,
	userStore store.UserStore,
	workspaceID int64,
) *EmailIngestor {
	return &EmailIngestor{
		source:      source,
		tasks:       tasks,
		comments:    comments,
		taskStore:   taskStore,
		userStore:   userStore,
		workspaceID: workspaceID,
	}
}

func (e *EmailIngestor) Name() string { return "email" }

// Poll fetches unseen mail and processes each message. Per-message failures
// are logged and skipped; the poll only fails when the mailbox itself does.
func (e *EmailIngestor) Poll(ctx context.Context) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Source:      logger.Ptr(model.TaskSourceEmail),
		WorkspaceID: logger.Ptr(e.workspaceID),
	})

	messages, err := e.source.FetchUnseen(ctx)
	if err != nil {
		return fmt.Errorf("fetching unseen mail: %w", err)
	}
	if len(messages) == 0 {
		return nil
	}
	slog.InfoContext(ctx, "processing mail", "count", len(messages))

	for _, msg := range messages {
		if err := e.process(ctx, msg); err != nil {
			slog.WarnContext(ctx, "mail message skipped", "error", err, "message_id", msg.MessageID)
		}
	}
	return nil
}

func (e *EmailIngestor) process(ctx context.Context, msg MailMessage) error {
	if msg.InReplyTo != "" {
		parent, err := e.taskStore.GetByEmailThreadID(ctx, msg.InReplyTo)
		if err == nil {
			return e.addReply(ctx, parent, msg)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("looking up thread %s: %w", msg.InReplyTo, err)
		}
		// Reply to an unknown thread falls through to task creation.
	}

	title := strings.TrimSpace(msg.Subject)
	if title == "" {
		title = "(no subject)"
	}

	parsed := ParseMarkers(msg.Body)
	params := service.CreateTaskParams{
		Title:       title,
		WorkspaceID: e.workspaceID,
		Priority:    parsed.Priority,
		DueDate:     parsed.DueDate,
		TaskType:    parsed.TaskType,
		Source:      strPtr(model.TaskSourceEmail),
	}
	if parsed.Body != "" {
		params.Description = &parsed.Body
	}
	if msg.MessageID != "" {
		params.EmailThreadID = &msg.MessageID
	}

	task, err := e.tasks.Create(ctx, params)
	if err != nil {
		return fmt.Errorf("creating task from mail: %w", err)
	}
	slog.InfoContext(ctx, "task created from mail", "task_id", task.ID, "from", msg.From)
	return nil
}

func (e *EmailIngestor) addReply(ctx context.Context, parent *model.Task, msg MailMessage) error {
	admins, err := e.userStore.ListAdmins(ctx)
	if err != nil {
		return fmt.Errorf("listing admins: %w", err)
	}
	if len(admins) == 0 {
		return fmt.Errorf("no admin user to attribute reply to")
	}

	content := strings.TrimSpace(msg.Body)
	if content == "" {
		content = "(empty reply)"
	}
	if msg.From != "" {
		content = fmt.Sprintf("From %s:\n%s", msg.From, content)
	}

	if _, err := e.comments.Create(ctx, parent.ID, admins[0].ID, content); err != nil {
		return fmt.Errorf("adding reply comment: %w", err)
	}
	slog.InfoContext(ctx, "reply attached to thread task", "task_id", parent.ID, "from", msg.From)
	return nil
}

func strPtr(s string) *string { return &s }
