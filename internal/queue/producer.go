package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"taskflow.app/server/internal/model"
)

// Producer mirrors stored notifications onto a stream so external consumers
// can tail them. It is advisory fan-out: the store write is the record.
type Producer interface {
	Publish(ctx context.Context, n *model.Notification) error
	Close() error
}

type redisProducer struct {
	client *redis.Client
	stream string
	logger *slog.Logger
}

func NewRedisProducer(client *redis.Client, stream string, logger *slog.Logger) Producer {
	if logger == nil {
		logger = slog.Default()
	}
	return &redisProducer{
		client: client,
		stream: stream,
		logger: logger,
	}
}

func (p *redisProducer) Publish(ctx context.Context, n *model.Notification) error {
	fields := map[string]any{
		"notification_id": n.ID,
		"user_id":         n.UserID,
		"type":            string(n.Type),
		"title":           n.Title,
		"message":         n.Message,
	}
	if n.TaskID != nil {
		fields["task_id"] = *n.TaskID
	}

	if err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: fields,
	}).Err(); err != nil {
		return fmt.Errorf("publishing notification: %w", err)
	}

	p.logger.DebugContext(ctx, "notification published", "notification_id", n.ID, "type", n.Type)
	return nil
}

func (p *redisProducer) Close() error {
	return p.client.Close()
}
