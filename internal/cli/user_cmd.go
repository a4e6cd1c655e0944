package cli

import (
	"fmt"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/spf13/cobra"
)

const userIDField = "user_id"

func newUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"u"},
		Short:   "Manage staff accounts",
	}

	cmd.AddCommand(
		newUserListCmd(app),
		newUserShowCmd(app),
		newUserAddCmd(app),
		newUserEditCmd(app),
		newUserDeleteCmd(app),
	)

	return cmd
}

func newUserListCmd(app *App) *cobra.Command {
	var lf listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderList(cmd, app, "員工列表", listview.UserTable(), app.Users.List, api.None{}, &lf)
		},
	}

	lf.register(cmd.Flags())

	return cmd
}

func newUserShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := app.Users.Get.Load(cmd.Context(), args[0])
			if err != nil {
				return readFailed(cmd, err)
			}
			showRecord(cmd.OutOrStdout(), u.UserName, u)
			return nil
		},
	}
}

func newUserAddCmd(app *App) *cobra.Command {
	var sets assignments

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults := domain.User{Status: "在職中", IsAdmin: "false"}
			ctl := newController(cmd, defaults, userIDField, saveWith(app.Users.Create))
			return editRecord(cmd, app, "新增員工", ctl, sets)
		},
	}

	cmd.Flags().Var(&sets, "set", "Field value (field=value, repeatable)")

	return cmd
}

func newUserEditCmd(app *App) *cobra.Command {
	var sets assignments

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			u, err := app.Users.Get.Load(ctx, args[0])
			if err != nil {
				return err
			}

			ctl := newController(cmd, domain.User{}, userIDField, saveWith(app.Users.Update))
			ctl.Load(u)
			if err := editRecord(cmd, app, u.UserName, ctl, sets); err != nil {
				return err
			}

			stored, err := app.Users.Get.Load(ctx, args[0])
			if err != nil {
				return err
			}
			showRecord(cmd.OutOrStdout(), stored.UserName, stored)
			return nil
		},
	}

	cmd.Flags().Var(&sets, "set", "Field to change (field=value, repeatable)")

	return cmd
}

func newUserDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd.Context(), app, yes); err != nil {
				return err
			}
			if _, err := app.Users.Delete.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已刪除員工 "+args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
