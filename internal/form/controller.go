// Package form holds an editable draft of one record between load and save.
package form

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/alexanderramin/tenement/internal/resource"
)

// ErrImmutableField is returned when changing the id field of a loaded record.
var ErrImmutableField = errors.New("field cannot be changed after load")

// MinLength is the shortest value not flagged by FieldErrors.
const MinLength = 3

// State is the position of an edit session.
type State int

const (
	Viewing State = iota
	Editing
	Saving
	Saved
	SaveFailed
)

func (s State) String() string {
	switch s {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Saving:
		return "saving"
	case Saved:
		return "saved"
	case SaveFailed:
		return "save_failed"
	default:
		return "unknown"
	}
}

// Saver sends a draft to the server.
type Saver[T any] func(ctx context.Context, draft T) error

// Option configures a Controller.
type Option func(*config)

type config struct {
	ack resource.Alerter
}

// WithAcknowledger shows resource.MsgSaved through a after each successful save.
func WithAcknowledger(a resource.Alerter) Option {
	return func(c *config) {
		if a != nil {
			c.ack = a
		}
	}
}

// Controller is the draft of one record of struct type T.
//
// Reset restores the defaults given to New rather than the loaded record.
// The id field survives a reset so a loaded record keeps its identity.
type Controller[T any] struct {
	defaults T
	idField  string
	save     Saver[T]
	cfg      config

	mu     sync.Mutex
	draft  T
	id     string
	pinned bool
	state  State
}

// New creates a Controller whose draft starts as defaults. idField is the
// json name of the record id ("" when the record has none).
func New[T any](defaults T, idField string, save Saver[T], opts ...Option) *Controller[T] {
	cfg := config{ack: resource.NopAlerter{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Controller[T]{
		defaults: defaults,
		idField:  idField,
		save:     save,
		cfg:      cfg,
		draft:    defaults,
		state:    Editing,
	}
}

// Load replaces the draft with a fetched record and pins its id.
func (c *Controller[T]) Load(rec T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = rec
	c.id = ""
	c.pinned = false
	if c.idField != "" {
		if id, ok := Get(rec, c.idField); ok && id != "" {
			c.id = id
			c.pinned = true
		}
	}
	c.state = Viewing
}

// Draft returns the current draft.
func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft
}

// Value returns one field of the draft.
func (c *Controller[T]) Value(field string) (string, bool) {
	return Get(c.Draft(), field)
}

// ID returns the pinned id, if any.
func (c *Controller[T]) ID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.id
}

// State returns the session state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Change replaces one field. The previous draft value is never mutated.
func (c *Controller[T]) Change(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pinned && field == c.idField {
		return fmt.Errorf("%w: %s", ErrImmutableField, field)
	}
	next := c.draft
	if err := set(&next, field, value); err != nil {
		return err
	}
	c.draft = next
	c.state = Editing
	return nil
}

// Reset restores the default snapshot. Calling it again changes nothing.
func (c *Controller[T]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := c.defaults
	if c.pinned {
		_ = set(&next, c.idField, c.id)
	}
	c.draft = next
	c.state = Editing
}

// Save sends the whole draft. On failure the draft is kept as it was and
// the session reports SaveFailed until the next change.
func (c *Controller[T]) Save(ctx context.Context) error {
	c.mu.Lock()
	draft := c.draft
	c.state = Saving
	c.mu.Unlock()

	err := c.save(ctx, draft)

	c.mu.Lock()
	if err != nil {
		c.state = SaveFailed
	} else {
		c.state = Saved
	}
	c.mu.Unlock()

	if err != nil {
		return err
	}
	c.cfg.ack.Alert(ctx, resource.MsgSaved)
	return nil
}

// Tracked lists the fields the length rule applies to: every string field
// except the id.
func (c *Controller[T]) Tracked() []string {
	fields := Fields(c.defaults)
	if c.idField == "" {
		return fields
	}
	return slices.DeleteFunc(fields, func(f string) bool { return f == c.idField })
}

// FieldErrors lists the tracked fields whose value is shorter than
// MinLength characters, in field order.
func (c *Controller[T]) FieldErrors() []string {
	draft := c.Draft()
	var bad []string
	for _, f := range c.Tracked() {
		v, _ := Get(draft, f)
		if InError(v) {
			bad = append(bad, f)
		}
	}
	return bad
}

// InError applies the length rule to one value.
func InError(v string) bool {
	return utf8.RuneCountInString(v) < MinLength
}
