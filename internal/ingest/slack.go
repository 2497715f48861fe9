package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/slack-go/slack"

	"taskflow.app/server/common/logger"
	"taskflow.app/server/internal/model"
	"taskflow.app/server/internal/service"
	"taskflow.app/server/internal/store"
)

// SlackClient is the slice of the Slack Web API the ingestor needs.
// *slack.Client satisfies it.
type SlackClient interface {
	GetConversationHistoryContext(ctx context.Context, params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
}

// SlackIngestor turns channel messages into tasks. Messages are keyed by
// their Slack timestamp: a timestamp already mapped to a task updates that
// task in place instead of creating a duplicate.
type SlackIngestor struct {
	client    SlackClient
	tasks     service.TaskService
	notifier  service.Notifier
	taskStore store.TaskStore

	channelID   string
	workspaceID int64

	// latest holds the newest timestamp seen, so each poll only asks Slack
	// for messages after it.
	latest string
}

func NewSlackIngestor(
	client SlackClient,
	tasks service.TaskService,
	notifier service.Notifier,
	taskStore store.TaskStore,
	channelID string,
	workspaceID int64,
) *SlackIngestor {
	return &SlackIngestor{
		client:      client,
		tasks:       tasks,
		notifier:    notifier,
		taskStore:   taskStore,
		channelID:   channelID,
		workspaceID: workspaceID,
	}
}

func (s *SlackIngestor) Name() string { return "slack" }

func (s *SlackIngestor) Poll(ctx context.Context) error {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Source:      logger.Ptr(model.TaskSourceSlack),
		WorkspaceID: logger.Ptr(s.workspaceID),
	})

	resp, err := s.client.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: s.channelID,
		Oldest:    s.latest,
		Limit:     100,
	})
	if err != nil {
		return fmt.Errorf("fetching channel history: %w", err)
	}

	// History arrives newest first; process oldest first so task ids follow
	// message order.
	for i := len(resp.Messages) - 1; i >= 0; i-- {
		msg := resp.Messages[i]
		if msg.SubType != "" || strings.TrimSpace(msg.Text) == "" {
			continue
		}
		if msg.Timestamp > s.latest {
			s.latest = msg.Timestamp
		}
		if err := s.process(ctx, msg); err != nil {
			slog.WarnContext(ctx, "slack message skipped", "error", err, "message_ts", msg.Timestamp)
		}
	}
	return nil
}

func (s *SlackIngestor) process(ctx context.Context, msg slack.Message) error {
	existing, err := s.taskStore.GetBySlackMessageID(ctx, msg.Timestamp)
	if err == nil {
		return s.updateInPlace(ctx, existing, msg)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("looking up message %s: %w", msg.Timestamp, err)
	}

	title, parsed := splitMessage(msg.Text)
	params := service.CreateTaskParams{
		Title:          title,
		WorkspaceID:    s.workspaceID,
		Priority:       parsed.Priority,
		DueDate:        parsed.DueDate,
		TaskType:       parsed.TaskType,
		Source:         strPtr(model.TaskSourceSlack),
		SlackMessageID: &msg.Timestamp,
	}
	if parsed.Body != "" {
		params.Description = &parsed.Body
	}

	task, err := s.tasks.Create(ctx, params)
	if err != nil {
		return fmt.Errorf("creating task from slack message: %w", err)
	}
	slog.InfoContext(ctx, "task created from slack", "task_id", task.ID, "message_ts", msg.Timestamp)
	return nil
}

// updateInPlace refreshes a task from a repeated message. The write goes
// straight to the store so the only side effect is the duplicate
// notification, not a task_updated one.
func (s *SlackIngestor) updateInPlace(ctx context.Context, task *model.Task, msg slack.Message) error {
	title, parsed := splitMessage(msg.Text)

	upd := model.TaskUpdate{Title: &title}
	if parsed.Body != "" {
		upd.Description = &parsed.Body
	}
	if parsed.Priority != nil {
		upd.Priority = parsed.Priority
	}
	if parsed.DueDate != nil {
		upd.DueDate = parsed.DueDate
	}

	updated, err := s.taskStore.Update(ctx, task.ID, upd)
	if err != nil {
		return fmt.Errorf("updating task %d in place: %w", task.ID, err)
	}

	slog.InfoContext(ctx, "duplicate slack message updated task", "task_id", task.ID, "message_ts", msg.Timestamp)
	s.notifier.TaskDuplicate(ctx, updated)
	return nil
}

// splitMessage takes the first line as the title and runs the marker
// heuristics over the rest.
func splitMessage(text string) (string, ParsedMessage) {
	text = strings.TrimSpace(text)
	title, rest, _ := strings.Cut(text, "\n")
	title = strings.TrimSpace(title)
	if title == "" {
		title = "(empty message)"
	}
	return title, ParseMarkers(rest)
}
