package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
)

// terminalAlerter shows hook alerts. On a terminal the alert blocks until
// dismissed; otherwise it is a line on the command's error stream.
// It also owns the loading spinner so an alert never draws over it.
type terminalAlerter struct {
	mu          sync.Mutex
	w           io.Writer
	interactive func() bool
	stopSpinner func()
}

func newTerminalAlerter(interactive func() bool) *terminalAlerter {
	return &terminalAlerter{w: os.Stderr, interactive: interactive}
}

func (t *terminalAlerter) setOutput(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.w = w
}

// spin starts a spinner on a terminal. The returned stop is safe to call
// after an alert already stopped it.
func (t *terminalAlerter) spin(msg string) func() {
	if !t.interactive() {
		return func() {}
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopSpinner = formatter.StartSpinner(t.w, msg)
	return t.stopSpinner
}

func (t *terminalAlerter) Alert(ctx context.Context, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopSpinner != nil {
		t.stopSpinner()
		t.stopSpinner = nil
	}
	if t.interactive() {
		if err := alertForm(msg).RunWithContext(ctx); err == nil {
			return
		}
	}
	fmt.Fprintln(t.w, formatter.Failure(msg))
}

// ackAlerter prints form acknowledgements such as 儲存成功 on w.
type ackAlerter struct {
	w io.Writer
}

func (a ackAlerter) Alert(_ context.Context, msg string) {
	fmt.Fprintln(a.w, formatter.Success(msg))
}
