package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli/formatter"
	"github.com/alexanderramin/tenement/internal/domain"
	"github.com/alexanderramin/tenement/internal/form"
	"github.com/alexanderramin/tenement/internal/listview"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/spf13/cobra"
)

const collectionIDField = "collection_id"

func newCollectionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "collection",
		Aliases: []string{"c"},
		Short:   "Manage collections and payments",
	}

	cmd.AddCommand(
		newCollectionListCmd(app),
		newCollectionShowCmd(app),
		newCollectionAddCmd(app),
		newCollectionEditCmd(app),
		newCollectionDeleteCmd(app),
	)

	return cmd
}

func newCollectionListCmd(app *App) *cobra.Command {
	var lf listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return renderList(cmd, app, "代收付列表", listview.CollectionTable(), app.Collections.List, api.None{}, &lf)
		},
	}

	lf.register(cmd.Flags())

	return cmd
}

func newCollectionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a collection and its notices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.Collections.Get.Load(cmd.Context(), args[0])
			if err != nil {
				return readFailed(cmd, err)
			}
			printCollection(cmd, c)
			return nil
		},
	}
}

func printCollection(cmd *cobra.Command, c domain.Collection) {
	out := cmd.OutOrStdout()
	showRecord(out, c.CollectionName, c)
	fmt.Fprintln(out, formatter.FormatNotices("提醒事項", c.Notices))
}

// collectionNoticeFlags edit the notice list saved along with a collection.
type collectionNoticeFlags struct {
	add    []string
	remove []string
}

func (f *collectionNoticeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.add, "add-notice", nil, `Notice to add: a record, or "field=value;field=value" (repeatable)`)
	cmd.Flags().StringArrayVar(&f.remove, "remove-notice", nil, "Id of a stored notice to remove (repeatable)")
}

func (f *collectionNoticeFlags) any() bool {
	return len(f.add) > 0 || len(f.remove) > 0
}

// apply turns the flags into edits on l.
func (f *collectionNoticeFlags) apply(l *form.NoticeList) error {
	for _, text := range f.add {
		if err := appendNotice(l, text); err != nil {
			return fmt.Errorf("--add-notice %q: %w", text, err)
		}
	}
	for _, id := range f.remove {
		key, ok := l.KeyOf(id)
		if !ok {
			return fmt.Errorf("--remove-notice: no notice %q on this collection", id)
		}
		if err := l.Remove(key); err != nil {
			return err
		}
	}
	return nil
}

// saveCollectionNotices posts the notice list when it gained entries and
// deletes the removed ones.
func saveCollectionNotices(ctx context.Context, app *App, l *form.NoticeList) error {
	b := l.Batch()
	if len(b.Create) > 0 {
		if _, err := app.Collections.SaveNotices.Run(ctx, l.Entries()); err != nil {
			return err
		}
	}
	for _, id := range b.Delete {
		ref := resource.NoticeRef{Scope: domain.NoticeCollection, ID: id}
		if _, err := app.Notices.Delete.Run(ctx, ref); err != nil {
			return err
		}
	}
	return nil
}

func newCollectionAddCmd(app *App) *cobra.Command {
	var (
		sets    assignments
		notices collectionNoticeFlags
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			list := form.NewNoticeList(nil)
			if err := notices.apply(list); err != nil {
				return err
			}

			defaults := domain.Collection{Notices: []domain.Notice{}}
			ctl := newController(cmd, defaults, collectionIDField, func(ctx context.Context, c domain.Collection) error {
				c.Notices = list.Entries()
				if _, err := app.Collections.Create.Run(ctx, c); err != nil {
					return err
				}
				return saveCollectionNotices(ctx, app, list)
			})
			return editRecord(cmd, app, "新增代收付", ctl, sets)
		},
	}

	cmd.Flags().Var(&sets, "set", "Field value (field=value, repeatable)")
	notices.register(cmd)

	return cmd
}

func newCollectionEditCmd(app *App) *cobra.Command {
	var (
		sets    assignments
		notices collectionNoticeFlags
	)

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Edit a collection and its notices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := app.Collections.Get.Load(ctx, args[0])
			if err != nil {
				return err
			}

			list := form.NewNoticeList(c.Notices)
			if err := notices.apply(list); err != nil {
				return err
			}

			ctl := newController(cmd, domain.Collection{Notices: []domain.Notice{}}, collectionIDField,
				func(ctx context.Context, c domain.Collection) error {
					c.Notices = list.Entries()
					if _, err := app.Collections.Update.Run(ctx, c); err != nil {
						return err
					}
					return saveCollectionNotices(ctx, app, list)
				})
			ctl.Load(c)

			// Notice-only edits still save the collection as a whole.
			if len(sets) == 0 && notices.any() {
				if err := ctl.Save(ctx); err != nil {
					return err
				}
			} else if err := editRecord(cmd, app, c.CollectionName, ctl, sets); err != nil {
				return err
			}

			stored, err := app.Collections.Get.Load(ctx, args[0])
			if err != nil {
				return err
			}
			printCollection(cmd, stored)
			return nil
		},
	}

	cmd.Flags().Var(&sets, "set", "Field to change (field=value, repeatable)")
	notices.register(cmd)

	return cmd
}

func newCollectionDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := confirmDelete(cmd.Context(), app, yes); err != nil {
				return err
			}
			if _, err := app.Collections.Delete.Run(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success("已刪除代收付 "+args[0]))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
