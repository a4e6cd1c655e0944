package cli

import (
	"fmt"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newFileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Manage uploaded images",
	}

	var yes bool
	del := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete an uploaded image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd.Context(), app, yes); err != nil {
				return err
			}
			if _, err := app.Files.Delete.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已刪除檔案 "+args[0]))
			return nil
		},
	}
	del.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	cmd.AddCommand(del)
	return cmd
}
