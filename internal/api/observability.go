package api

import (
	"context"
	"errors"
	"log/slog"
)

// RequestEvent records one completed API call.
type RequestEvent struct {
	Method     string
	Path       string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives an event for every API call.
type Observer interface {
	OnRequest(ctx context.Context, event RequestEvent)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnRequest(context.Context, RequestEvent) {}

// LogObserver writes request events to a slog.Logger.
type LogObserver struct {
	logger *slog.Logger
}

func NewLogObserver(logger *slog.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnRequest(ctx context.Context, event RequestEvent) {
	attrs := []any{
		"method", event.Method,
		"path", event.Path,
		"status", event.StatusCode,
		"latency_ms", event.LatencyMs,
	}
	if !event.Success {
		attrs = append(attrs, "error", event.ErrorCode)
		o.logger.WarnContext(ctx, "api_request", attrs...)
		return
	}
	o.logger.DebugContext(ctx, "api_request", attrs...)
}

// errorCode classifies a failure from Do. Non-2xx replies are tagged
// STATUS by Do itself.
func errorCode(err error) string {
	switch {
	case errors.Is(err, context.Canceled):
		return "CANCELED"
	case errors.Is(err, context.DeadlineExceeded):
		return "TIMEOUT"
	case errors.Is(err, ErrTransport):
		return "TRANSPORT"
	default:
		return "UNKNOWN"
	}
}
