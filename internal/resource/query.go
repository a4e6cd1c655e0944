package resource

import (
	"context"
	"sync"
	"time"
)

// FetchFunc loads a value for the given parameters.
type FetchFunc[P, T any] func(ctx context.Context, p P) (T, error)

// Query is a read hook: idle → loading → ready | error.
//
// Calls are not deduplicated. Two Loads in flight race and whichever
// resolves last determines the held state.
type Query[P, T any] struct {
	name  string
	fetch FetchFunc[P, T]
	opts  options

	mu    sync.Mutex
	state State[T]
}

// NewQuery creates a Query. Read failures are not alerted unless WithAlert
// is given.
func NewQuery[P, T any](name string, fetch FetchFunc[P, T], opts ...Option) *Query[P, T] {
	return &Query[P, T]{name: name, fetch: fetch, opts: buildOptions("", opts)}
}

// Load runs the fetch and updates the hook. On failure the previously held
// data is kept and the error flag is set.
func (q *Query[P, T]) Load(ctx context.Context, p P) (T, error) {
	var zero T

	ctx, release, err := q.opts.scope.bind(ctx)
	if err != nil {
		return zero, err
	}
	defer release()

	q.mu.Lock()
	prev := q.state.Status
	q.state.Status = StatusLoading
	q.mu.Unlock()

	started := time.Now()
	data, err := q.fetch(ctx, p)
	if q.opts.scope.Closed() {
		// The result is dropped; only the loading flag is undone.
		q.mu.Lock()
		q.state.Status = prev
		q.mu.Unlock()
		return zero, ErrClosed
	}

	q.mu.Lock()
	if err != nil {
		q.state.Status = StatusError
		q.state.Err = err
	} else {
		q.state = State[T]{Status: StatusReady, Data: data, HasData: true}
	}
	q.mu.Unlock()

	q.opts.settle(ctx, q.name, started, err)
	if err != nil {
		return zero, err
	}
	return data, nil
}

// State returns a snapshot of the hook.
func (q *Query[P, T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Data returns the last loaded value.
func (q *Query[P, T]) Data() T {
	return q.State().Data
}
