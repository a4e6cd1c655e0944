// Package teatest runs bubbletea models without a tea.Program.
//
// Each Update result is executed on the spot and its message fed back in,
// so a test sees the model after every reaction to a key has settled.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultCmdTimeout bounds a Cmd unless WithCmdTimeout says otherwise.
const DefaultCmdTimeout = 10 * time.Millisecond

const maxChain = 100

// Driver feeds messages to a model and executes what it returns.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// CmdTimeout is how long one Cmd may run before its message is dropped.
	CmdTimeout time.Duration

	// Quitting records a tea.Quit seen while running Cmds.
	Quitting bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithCmdTimeout gives Cmds doing real I/O, such as a fetch against an
// httptest server, time to finish.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.CmdTimeout = timeout }
}

// New wraps model. Call DrainInit before sending input.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, CmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs the model's Init command.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg unless the model already quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// PressKey sends one rune.
func (d *Driver) PressKey(r rune) {
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressEsc() {
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressDown() {
	d.Send(tea.KeyMsg{Type: tea.KeyDown})
}

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	for _, r := range s {
		d.PressKey(r)
	}
}

func (d *Driver) View() string {
	return d.Model.View()
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxChain {
		d.T.Logf("teatest: stopped after %d chained commands", maxChain)
		return
	}

	msg := d.exec(cmd)
	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			d.run(c, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.run(next, depth+1)
	}
}

// exec returns nil when cmd outlives CmdTimeout.
func (d *Driver) exec(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(d.CmdTimeout):
		return nil
	}
}
