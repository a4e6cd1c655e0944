package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/alexanderramin/tenement/internal/resource"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseLists are the lists the browser can open.
var browseLists = []string{"all", "sell", "rent", "collection", "user"}

func newBrowseCmd(app *App) *cobra.Command {
	var (
		list  string
		query assignments
	)

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse a list interactively",
		Long: fmt.Sprintf(`Open a list in a full-screen browser with search, sort and preset
filters. --list is one of %v. Results that arrive after the browser
closes are dropped.`, browseLists),
		RunE: func(cmd *cobra.Command, args []string) error {
			model, scope, err := newBrowser(cmd.Context(), app, list, query.last())
			if err != nil {
				return err
			}
			defer scope.Close()

			p := tea.NewProgram(model,
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&list, "list", "all", "List to browse")
	cmd.Flags().Var(&query, "query", "Server-side tenement filter field (key=value, repeatable)")

	return cmd
}

// newBrowser builds the browser for one list. Its hooks are bound to a
// fresh scope that the browser closes when it quits.
func newBrowser(ctx context.Context, app *App, list string, fields map[string]string) (tea.Model, *resource.Scope, error) {
	if err := listview.ValidateRanges(fields); err != nil {
		return nil, nil, err
	}
	q := listview.BuildQuery(fields)
	crumbs := formatter.FormatCrumbs(listview.AllTenements, listview.Breadcrumb(fields))

	scope := resource.NewScope(ctx)
	box := &alertBox{}
	env := app.scopedEnv(scope, box)

	switch list {
	case "", "all":
		h := resource.NewTenementHooks(env)
		return newListBrowser(crumbs, listview.TenementTable(), func(ctx context.Context) ([]domain.TenementListItem, error) {
			return h.List.Load(ctx, q)
		}, scope, box), scope, nil
	case "sell":
		h := resource.NewTenementHooks(env)
		return newListBrowser(crumbs, listview.SellTable(), func(ctx context.Context) ([]domain.TenementSellListItem, error) {
			return h.SellList.Load(ctx, q)
		}, scope, box), scope, nil
	case "rent":
		h := resource.NewTenementHooks(env)
		return newListBrowser(crumbs, listview.RentTable(), func(ctx context.Context) ([]domain.TenementRentListItem, error) {
			return h.RentList.Load(ctx, q)
		}, scope, box), scope, nil
	case "collection":
		h := resource.NewCollectionHooks(env)
		return newListBrowser(formatter.StyleHeader.Render("代收付列表"), listview.CollectionTable(), func(ctx context.Context) ([]domain.CollectionListItem, error) {
			return h.List.Load(ctx, api.None{})
		}, scope, box), scope, nil
	case "user":
		h := resource.NewUserHooks(env)
		return newListBrowser(formatter.StyleHeader.Render("員工列表"), listview.UserTable(), func(ctx context.Context) ([]domain.UserListItem, error) {
			return h.List.Load(ctx, api.None{})
		}, scope, box), scope, nil
	default:
		scope.Close()
		return nil, nil, fmt.Errorf("invalid --list %q (want one of %v)", list, browseLists)
	}
}
