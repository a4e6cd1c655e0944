package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/form"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/spf13/cobra"
)

// saveWith adapts a mutation to a form saver.
func saveWith[T, Out any](m *resource.Mutation[T, Out]) form.Saver[T] {
	return func(ctx context.Context, rec T) error {
		_, err := m.Run(ctx, rec)
		return err
	}
}

func newController[T any](cmd *cobra.Command, defaults T, idField string, save form.Saver[T]) *form.Controller[T] {
	return form.New(defaults, idField, save, form.WithAcknowledger(ackAlerter{w: cmd.OutOrStdout()}))
}

// editRecord applies changes to the controller's draft and saves it. The
// changes come from --set, or from a prompt when none were given on a
// terminal. Values breaking the length rule are reported but still sent.
func editRecord[T any](cmd *cobra.Command, app *App, title string, ctl *form.Controller[T], sets assignments) error {
	ctx := cmd.Context()
	changes := sets
	if len(changes) == 0 {
		if !app.interactive() {
			return fmt.Errorf("nothing to change; pass --set field=value")
		}
		prompted, err := promptChanges(ctx, title, ctl)
		if err != nil {
			return err
		}
		if len(prompted) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("沒有變更"))
			return nil
		}
		changes = prompted
	}

	for _, kv := range changes {
		if err := ctl.Change(kv.Key, kv.Value); err != nil {
			return fmt.Errorf("--set %s: %w", kv.Key, err)
		}
		if form.InError(kv.Value) {
			fmt.Fprintln(cmd.ErrOrStderr(), formatter.StyleYellow.Render(
				fmt.Sprintf("! %s: 至少需要 %d 個字", kv.Key, form.MinLength)))
		}
	}
	return ctl.Save(ctx)
}

// promptChanges shows every tracked field and returns the ones edited.
func promptChanges[T any](ctx context.Context, title string, ctl *form.Controller[T]) (assignments, error) {
	fields := ctl.Tracked()
	before := make(map[string]string, len(fields))
	values := make(map[string]*string, len(fields))
	for _, f := range fields {
		v, _ := ctl.Value(f)
		before[f] = v
		values[f] = &v
	}

	if err := recordForm(title, fields, values).RunWithContext(ctx); err != nil {
		return nil, err
	}

	var changed assignments
	for _, f := range fields {
		if *values[f] != before[f] {
			changed = append(changed, assignment{Key: f, Value: *values[f]})
		}
	}
	return changed, nil
}

// showRecord prints every string field of rec.
func showRecord(w io.Writer, title string, rec any) {
	fmt.Fprintln(w, formatter.FormatRecord(title, form.Fields(rec), form.Values(rec), nil))
}

// readFailed leaves a list or detail view in its error state: the
// placeholder is printed and err still sets the exit status.
func readFailed(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.OutOrStdout(), formatter.Failure(formatter.ReadError))
	return err
}

// renderList loads records through q and prints them through t, narrowed
// by the list flags.
func renderList[P, R any](cmd *cobra.Command, app *App, title string, t listview.Table[R], q *resource.Query[P, []R], p P, lf *listFlags) error {
	if err := checkColumns(t, lf); err != nil {
		return err
	}

	stop := app.alerts.spin("載入中")
	records, err := q.Load(cmd.Context(), p)
	stop()
	if err != nil {
		return readFailed(cmd, err)
	}

	rows := t.Build(records, lf.view())
	fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatList(title, t, rows, len(records)))
	return nil
}
