package resource

import (
	"log/slog"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/session"
)

// Env carries the dependencies every hook set shares. The API client reads
// its bearer token from Session, so all hooks see the same token.
type Env struct {
	API     *api.Client
	Session *session.Context
	Alerts  Alerter
	Logger  *slog.Logger
	Scope   *Scope
}

// with returns the base options for a hook built from e.
func (e Env) with(extra ...Option) []Option {
	opts := []Option{WithAlerter(e.Alerts), WithLogger(e.Logger), WithScope(e.Scope)}
	return append(opts, extra...)
}
