package cli

import (
	"errors"

	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/alexanderramin/tenement/internal/session"
	"github.com/spf13/cobra"
)

// ErrNotLoggedIn is returned by commands that need a token when none is held.
var ErrNotLoggedIn = errors.New("not logged in; run `tenement login` first")

// annotationPublic marks commands that run without a session token.
const annotationPublic = "public"

// App holds the hook sets used by CLI commands. All of them share one
// session, so a login is visible to every later call.
type App struct {
	Auth        *resource.Auth
	Tenements   *resource.TenementHooks
	Collections *resource.CollectionHooks
	Users       *resource.UserHooks
	Notices     *resource.NoticeHooks
	Calendar    *resource.CalendarHooks
	Files       *resource.FileHooks
	Session     *session.Context

	// IsInteractive reports whether prompts and blocking alerts can be
	// shown. Nil means never.
	IsInteractive func() bool

	env    resource.Env
	alerts *terminalAlerter
}

// NewApp builds every hook set over env. Alerts raised by the hooks go to
// the terminal of the running command.
func NewApp(env resource.Env) *App {
	app := &App{Session: env.Session}
	app.alerts = newTerminalAlerter(app.interactive)
	env.Alerts = app.alerts
	app.env = env

	app.Auth = resource.NewAuth(env)
	app.Tenements = resource.NewTenementHooks(env)
	app.Collections = resource.NewCollectionHooks(env)
	app.Users = resource.NewUserHooks(env)
	app.Notices = resource.NewNoticeHooks(env)
	app.Calendar = resource.NewCalendarHooks(env)
	app.Files = resource.NewFileHooks(env)
	return app
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// scopedEnv returns the app environment bound to scope and alerter.
// Hooks built from it stop publishing once scope is closed.
func (a *App) scopedEnv(scope *resource.Scope, alerts resource.Alerter) resource.Env {
	env := a.env
	env.Scope = scope
	env.Alerts = alerts
	return env
}

// NewRootCmd creates the top-level "tenement" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "tenement",
		Short:         "Property management back office",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			app.alerts.setOutput(cmd.ErrOrStderr())
			if isPublic(cmd) || app.Auth.IsLogin() {
				return nil
			}
			return ErrNotLoggedIn
		},
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newTenementCmd(app),
		newCollectionCmd(app),
		newUserCmd(app),
		newNoticeCmd(app),
		newCalendarCmd(app),
		newFileCmd(app),
		newBrowseCmd(app),
	)

	return root
}

// builtin names the commands cobra adds on its own.
var builtin = map[string]bool{"help": true, "completion": true, "__complete": true}

func isPublic(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[annotationPublic] == "true" || builtin[c.Name()] {
			return true
		}
	}
	return !cmd.Runnable()
}
