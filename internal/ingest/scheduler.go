package ingest

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/trace"

	"taskflow.app/server/common/id"
	"taskflow.app/server/common/logger"
)

// Ingestor is one external message source polled on a schedule.
type Ingestor interface {
	Name() string
	Poll(ctx context.Context) error
}

// Scheduler polls every registered ingestor at a fixed interval. There is no
// backoff or retry: a failed poll is logged and the next tick tries again.
type Scheduler struct {
	interval  time.Duration
	ingestors []Ingestor
}

func NewScheduler(interval time.Duration, ingestors ...Ingestor) *Scheduler {
	return &Scheduler{interval: interval, ingestors: ingestors}
}

// Run polls until the context is cancelled. The first poll happens
// immediately rather than one interval in.
func (s *Scheduler) Run(ctx context.Context) {
	if len(s.ingestors) == 0 {
		slog.InfoContext(ctx, "ingestion disabled: no sources configured")
		return
	}
	slog.InfoContext(ctx, "ingestion scheduler starting", "interval", s.interval, "sources", len(s.ingestors))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.pollAll(ctx)
	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "ingestion scheduler stopping")
			return
		case <-ticker.C:
			s.pollAll(ctx)
		}
	}
}

func (s *Scheduler) pollAll(ctx context.Context) {
	runID := id.New()
	for _, ing := range s.ingestors {
		sc := logger.StartSpan(ctx, "ingest.poll."+ing.Name(), trace.WithSpanKind(trace.SpanKindConsumer))
		pollCtx := logger.WithLogFields(sc.Context(), logger.LogFields{
			Component: "taskflow.ingest." + ing.Name(),
		})

		if err := ing.Poll(pollCtx); err != nil {
			sc.RecordError(err)
			slog.ErrorContext(pollCtx, "poll failed", "source", ing.Name(), "run_id", runID, "error", err)
		}
		sc.End()
	}
}
