package cli

import (
	"fmt"

	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/form"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/spf13/cobra"
)

func newNoticeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notice",
		Aliases: []string{"n"},
		Short:   "Manage visit notices and reminders",
		Long: `Manage the notices of a tenement or collection. SCOPE is collection,
rent, sell, develop or market; PARENT is the id of the record the notices
belong to.`,
	}

	cmd.AddCommand(
		newNoticeListCmd(app),
		newNoticeAddCmd(app),
		newNoticeEditCmd(app),
		newNoticeDeleteCmd(app),
	)

	return cmd
}

func noticeTarget(scope, parent string) (resource.NoticeTarget, error) {
	s, err := parseScope(scope)
	if err != nil {
		return resource.NoticeTarget{}, err
	}
	return resource.NoticeTarget{Scope: s, ParentID: parent}, nil
}

func newNoticeListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list SCOPE PARENT",
		Short: "List notices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := noticeTarget(args[0], args[1])
			if err != nil {
				return err
			}
			notices, err := app.Notices.List.Load(cmd.Context(), target)
			if err != nil {
				return readFailed(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNotices("提醒事項", notices))
			return nil
		},
	}
}

func newNoticeAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add SCOPE PARENT NOTICE...",
		Short: "Add notices",
		Long: `Add notices. Each NOTICE is a record, or "field=value;field=value"
with the fields visitDate, record, remindDate and remind.`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := noticeTarget(args[0], args[1])
			if err != nil {
				return err
			}

			list := form.NewNoticeList(nil)
			for _, text := range args[2:] {
				if err := appendNotice(list, text); err != nil {
					return fmt.Errorf("notice %q: %w", text, err)
				}
			}
			if err := app.Notices.SaveBatch(cmd.Context(), target, list.Batch()); err != nil {
				return err
			}
			list.Saved(app.Notices.Create.State().Data)

			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNotices("已新增", list.Entries()))
			return nil
		},
	}
}

func newNoticeEditCmd(app *App) *cobra.Command {
	var sets assignments

	cmd := &cobra.Command{
		Use:   "edit SCOPE PARENT ID",
		Short: "Edit a stored notice",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			target, err := noticeTarget(args[0], args[1])
			if err != nil {
				return err
			}
			if len(sets) == 0 {
				return fmt.Errorf("nothing to change; pass --set field=value")
			}

			stored, err := app.Notices.List.Load(ctx, target)
			if err != nil {
				return err
			}
			list := form.NewNoticeList(stored)
			key, ok := list.KeyOf(args[2])
			if !ok {
				return fmt.Errorf("notice %q not found", args[2])
			}
			for _, kv := range sets {
				if err := list.Change(key, kv.Key, kv.Value); err != nil {
					return fmt.Errorf("--set %s: %w", kv.Key, err)
				}
			}

			if err := app.Notices.SaveBatch(ctx, target, list.Batch()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(resource.MsgSaved))
			return nil
		},
	}

	cmd.Flags().Var(&sets, "set", "Field to change (field=value, repeatable)")

	return cmd
}

func newNoticeDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete SCOPE ID",
		Short: "Delete a stored notice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := parseScope(args[0])
			if err != nil {
				return err
			}
			if err := confirmDelete(cmd.Context(), app, yes); err != nil {
				return err
			}
			ref := resource.NoticeRef{Scope: scope, ID: args[1]}
			if _, err := app.Notices.Delete.Run(cmd.Context(), ref); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已刪除提醒 "+args[1]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
