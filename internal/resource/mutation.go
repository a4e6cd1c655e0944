package resource

import (
	"context"
	"sync"
	"time"
)

// Mutation is a write hook. It shares the Query lifecycle and adds a Done
// flag that is set only by a successful run.
//
// Every failed run raises exactly one alert, MsgOperationFailed by default.
type Mutation[In, Out any] struct {
	name string
	run  FetchFunc[In, Out]
	opts options

	mu    sync.Mutex
	state State[Out]
	done  bool
}

func NewMutation[In, Out any](name string, run FetchFunc[In, Out], opts ...Option) *Mutation[In, Out] {
	return &Mutation[In, Out]{name: name, run: run, opts: buildOptions(MsgOperationFailed, opts)}
}

// Run sends in. Prior data is left untouched when the call fails.
func (m *Mutation[In, Out]) Run(ctx context.Context, in In) (Out, error) {
	var zero Out

	ctx, release, err := m.opts.scope.bind(ctx)
	if err != nil {
		return zero, err
	}
	defer release()

	m.mu.Lock()
	prev := m.state.Status
	m.state.Status = StatusLoading
	m.done = false
	m.mu.Unlock()

	started := time.Now()
	out, err := m.run(ctx, in)
	if m.opts.scope.Closed() {
		m.mu.Lock()
		m.state.Status = prev
		m.mu.Unlock()
		return zero, ErrClosed
	}

	m.mu.Lock()
	if err != nil {
		m.state.Status = StatusError
		m.state.Err = err
	} else {
		m.state = State[Out]{Status: StatusReady, Data: out, HasData: true}
		m.done = true
	}
	m.mu.Unlock()

	m.opts.settle(ctx, m.name, started, err)
	if err != nil {
		return zero, err
	}
	return out, nil
}

// State returns a snapshot of the hook.
func (m *Mutation[In, Out]) State() State[Out] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Done reports whether the most recent run succeeded.
func (m *Mutation[In, Out]) Done() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.done
}
