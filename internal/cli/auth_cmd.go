package cli

import (
	"fmt"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *App) *cobra.Command {
	var cred domain.Credentials

	cmd := &cobra.Command{
		Use:         "login",
		Short:       "Sign in and store the session token",
		Annotations: map[string]string{annotationPublic: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cred.UserEmail == "" || cred.UserPassword == "" {
				if !app.interactive() {
					return fmt.Errorf("--email and --password are required without a terminal")
				}
				if err := loginForm(&cred.UserEmail, &cred.UserPassword).RunWithContext(ctx); err != nil {
					return err
				}
			}

			if _, err := app.Auth.Login.Run(ctx, cred); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已登入 "+cred.UserEmail))
			return nil
		},
	}

	cmd.Flags().StringVar(&cred.UserEmail, "email", "", "Account email")
	cmd.Flags().StringVar(&cred.UserPassword, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "logout",
		Short:       "Forget the stored session token",
		Annotations: map[string]string{annotationPublic: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Auth.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已登出"))
			return nil
		},
	}
}

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account and its role",
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := app.Auth.Role.Load(cmd.Context(), api.None{})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatRole(app.Session.Account(), role))
			return nil
		},
	}
}
