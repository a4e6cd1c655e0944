package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/spf13/cobra"
)

// parseMonth reads YYYY-MM; empty means the month of now.
func parseMonth(s string, now time.Time) (resource.Month, error) {
	if s == "" {
		return resource.Month{Year: now.Year(), Month: int(now.Month())}, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return resource.Month{}, fmt.Errorf("invalid month %q, use YYYY-MM", s)
	}
	return resource.Month{Year: t.Year(), Month: int(t.Month())}, nil
}

func newCalendarCmd(app *App) *cobra.Command {
	var (
		month      string
		collection bool
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the events of a month",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := parseMonth(month, time.Now())
			if err != nil {
				return err
			}

			q := app.Calendar.Tenements
			if collection {
				q = app.Calendar.Collections
			}
			days, err := q.Load(cmd.Context(), m)
			if err != nil {
				return readFailed(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCalendar(m.Year, m.Month, days))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month to show (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&collection, "collection", false, "Show collection events instead of tenement events")

	return cmd
}
