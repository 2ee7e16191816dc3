package gateway

import (
	"context"
	"log/slog"
	"time"
)

// Event captures one gateway invocation.
type Event struct {
	Operation string
	RequestID string
	StartedAt time.Time
	Duration  time.Duration
	Success   bool
	Err       error
}

// Observer receives an Event after every invocation.
type Observer interface {
	Observe(ctx context.Context, e Event)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) Observe(context.Context, Event) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver logs every invocation as a service_use_case record.
// A nil logger yields a NoopObserver.
func NewLogObserver(logger *slog.Logger) Observer {
	if logger == nil {
		return NoopObserver{}
	}
	return &logObserver{logger: logger}
}

func (o *logObserver) Observe(ctx context.Context, e Event) {
	attrs := []any{
		"use_case", e.Operation,
		"request_id", e.RequestID,
		"duration_ms", e.Duration.Milliseconds(),
		"success", e.Success,
	}
	if e.Err != nil {
		attrs = append(attrs, "error", e.Err.Error())
		o.logger.ErrorContext(ctx, "service_use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "service_use_case", attrs...)
}

type requestIDKey struct{}

// WithRequestID attaches a caller-chosen request id to ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id carried by ctx, if any.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
