// Package resource holds the per-resource state containers that combine a
// remote call, response validation and the loading/error flags views render.
package resource

import "errors"

// ErrClosed is returned by hooks whose scope has been closed.
var ErrClosed = errors.New("resource scope closed")

// Status is the lifecycle position of a hook.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is a snapshot of a hook. Data keeps the last successful result;
// a failure never replaces it.
type State[T any] struct {
	Status  Status
	Data    T
	HasData bool
	Err     error
}

// IsLoading reports whether a call is in flight.
func (s State[T]) IsLoading() bool { return s.Status == StatusLoading }

// IsError reports whether the last resolved call failed. Transport, HTTP
// status and validation failures all collapse into this one flag.
func (s State[T]) IsError() bool { return s.Status == StatusError }
