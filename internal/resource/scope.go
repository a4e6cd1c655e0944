package resource

import (
	"context"
	"sync"
)

// Scope bounds the lifetime of a group of hooks, typically one screen.
// Closing it cancels every call still in flight, and results that resolve
// afterwards are dropped instead of being written into hook state.
type Scope struct {
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// NewScope creates a Scope that also ends when parent is done.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := context.WithCancel(parent)
	return &Scope{ctx: ctx, cancel: cancel}
}

// Close cancels in-flight calls. It is safe to call more than once.
func (s *Scope) Close() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Closed reports whether the scope has ended.
func (s *Scope) Closed() bool {
	return s != nil && s.ctx.Err() != nil
}

// bind derives a call context that is cancelled when either ctx or the
// scope ends. The returned release func must be called when the call is done.
func (s *Scope) bind(ctx context.Context) (context.Context, func(), error) {
	if s == nil {
		return ctx, func() {}, nil
	}
	if s.Closed() {
		return nil, nil, ErrClosed
	}
	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(s.ctx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}, nil
}
