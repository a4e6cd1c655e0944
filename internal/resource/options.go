package resource

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

type options struct {
	alert  string
	alerts Alerter
	logger *slog.Logger
	scope  *Scope
}

// Option configures a Query or Mutation.
type Option func(*options)

// WithAlert sets the message shown when a call fails. An empty message
// disables the alert.
func WithAlert(msg string) Option {
	return func(o *options) { o.alert = msg }
}

// WithAlerter sets where failure alerts go.
func WithAlerter(a Alerter) Option {
	return func(o *options) {
		if a != nil {
			o.alerts = a
		}
	}
}

// WithLogger sets the logger that records each call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithScope ties the hook to s.
func WithScope(s *Scope) Option {
	return func(o *options) { o.scope = s }
}

func buildOptions(alert string, opts []Option) options {
	o := options{
		alert:  alert,
		alerts: NopAlerter{},
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// settle records the outcome of one call and raises the failure alert.
// Cancelled calls are logged but never alerted.
func (o options) settle(ctx context.Context, name string, started time.Time, err error) {
	attrs := []any{
		"hook", name,
		"duration_ms", time.Since(started).Milliseconds(),
		"success", err == nil,
	}
	if err == nil {
		o.logger.DebugContext(ctx, "resource_call", attrs...)
		return
	}
	attrs = append(attrs, "error", err.Error())
	o.logger.WarnContext(ctx, "resource_call", attrs...)

	if o.alert == "" || errors.Is(err, context.Canceled) {
		return
	}
	o.alerts.Alert(context.WithoutCancel(ctx), o.alert)
}
