package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/spf13/cobra"
)

// tenementIDField is the json name of the path id on every tenement record.
const tenementIDField = "tenement_id"

func newTenementCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tenement",
		Aliases: []string{"t"},
		Short:   "Manage tenement listings",
	}

	cmd.AddCommand(
		newTenementListCmd(app),
		newTenementShowCmd(app),
		newTenementEditCmd(app),
		newTenementAddCmd(app),
		newTenementDeleteCmd(app),
	)

	return cmd
}

func newTenementListCmd(app *App) *cobra.Command {
	var (
		kind  string
		query assignments
		lf    listFlags
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenements",
		Long: `List tenements. --query fields are sent to the server (for example
rent_price_max=20000 or tenement_type=出租); --filter, --search and --sort
narrow and order the fetched rows locally.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields := query.last()
			if err := listview.ValidateRanges(fields); err != nil {
				return err
			}
			q := listview.BuildQuery(fields)
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatCrumbs(listview.AllTenements, listview.Breadcrumb(fields)))

			switch kind {
			case "", "all":
				return renderList(cmd, app, listview.AllTenements.Value, listview.TenementTable(), app.Tenements.List, q, &lf)
			case string(domain.KindSell):
				return renderList(cmd, app, domain.KindSell.Label(), listview.SellTable(), app.Tenements.SellList, q, &lf)
			case string(domain.KindRent):
				return renderList(cmd, app, domain.KindRent.Label(), listview.RentTable(), app.Tenements.RentList, q, &lf)
			default:
				return fmt.Errorf("invalid --kind %q (want all, sell or rent)", kind)
			}
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "all", "List to show: all, sell or rent")
	cmd.Flags().Var(&query, "query", "Server-side filter field (key=value, repeatable)")
	lf.register(cmd.Flags())

	return cmd
}

func newTenementShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show KIND ID",
		Short: "Show a tenement record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseTenementKind(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			switch kind {
			case domain.KindSell:
				return showTenement(cmd, kind, app.Tenements.Sell, id)
			case domain.KindRent:
				return showTenement(cmd, kind, app.Tenements.Rent, id)
			case domain.KindDevelop:
				return showTenement(cmd, kind, app.Tenements.Develop, id)
			default:
				return showTenement(cmd, kind, app.Tenements.Market, id)
			}
		},
	}
}

func showTenement[T any](cmd *cobra.Command, kind domain.TenementKind, q *resource.Query[string, T], id string) error {
	rec, err := q.Load(cmd.Context(), id)
	if err != nil {
		return readFailed(cmd, err)
	}
	showRecord(cmd.OutOrStdout(), kind.Label()+" "+id, rec)
	return nil
}

func newTenementEditCmd(app *App) *cobra.Command {
	var sets assignments

	cmd := &cobra.Command{
		Use:   "edit KIND ID",
		Short: "Edit a tenement record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseTenementKind(args[0])
			if err != nil {
				return err
			}
			id := args[1]
			h := app.Tenements
			switch kind {
			case domain.KindSell:
				return editTenement(cmd, app, kind, h.Sell, h.SaveSell, id, sets)
			case domain.KindRent:
				return editTenement(cmd, app, kind, h.Rent, h.SaveRent, id, sets)
			case domain.KindDevelop:
				return editTenement(cmd, app, kind, h.Develop, h.SaveDevelop, id, sets)
			default:
				return editTenement(cmd, app, kind, h.Market, h.SaveMarket, id, sets)
			}
		},
	}

	cmd.Flags().Var(&sets, "set", "Field to change (field=value, repeatable)")

	return cmd
}

// editTenement loads the record, applies the changes and posts the whole
// draft back. The record is fetched again afterwards so the printed copy
// is what the server stored.
func editTenement[T any](cmd *cobra.Command, app *App, kind domain.TenementKind, get *resource.Query[string, T], save *resource.Mutation[T, api.None], id string, sets assignments) error {
	rec, err := get.Load(cmd.Context(), id)
	if err != nil {
		return err
	}

	var defaults T
	ctl := newController(cmd, defaults, tenementIDField, saveWith(save))
	ctl.Load(rec)
	title := kind.Label() + " " + id
	if err := editRecord(cmd, app, title, ctl, sets); err != nil {
		return err
	}

	stored, err := get.Load(cmd.Context(), id)
	if err != nil {
		return err
	}
	showRecord(cmd.OutOrStdout(), title, stored)
	return nil
}

func newTenementAddCmd(app *App) *cobra.Command {
	var sets assignments

	cmd := &cobra.Command{
		Use:   "add KIND",
		Short: "Create a tenement record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseTenementKind(args[0])
			if err != nil {
				return err
			}
			base := domain.TenementBase{TenementType: kind.Label(), TenementImages: []string{}}
			switch kind {
			case domain.KindSell:
				return addTenement(cmd, app, kind, domain.TenementSell{
					TenementBase: base,
					BuyerInfo:    domain.BuyerInfo{BuyerIDImages: []string{}},
				}, sets)
			case domain.KindRent:
				return addTenement(cmd, app, kind, domain.TenementRent{
					TenementBase: base,
					RenterInfo:   domain.RenterInfo{RenterIDImages: []string{}},
				}, sets)
			case domain.KindDevelop:
				return addTenement(cmd, app, kind, domain.TenementDevelop{TenementBase: base}, sets)
			default:
				return addTenement(cmd, app, kind, domain.TenementMarket{TenementBase: base}, sets)
			}
		},
	}

	cmd.Flags().Var(&sets, "set", "Field value (field=value, repeatable)")

	return cmd
}

func addTenement[T any](cmd *cobra.Command, app *App, kind domain.TenementKind, defaults T, sets assignments) error {
	ctl := newController(cmd, defaults, "", func(ctx context.Context, rec T) error {
		_, err := app.Tenements.Add.Run(ctx, resource.NewTenement{Kind: kind, Record: rec})
		return err
	})
	return editRecord(cmd, app, "新增"+kind.Label(), ctl, sets)
}

func newTenementDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a tenement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd.Context(), app, yes); err != nil {
				return err
			}
			if _, err := app.Tenements.Delete.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已刪除房屋 "+args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
