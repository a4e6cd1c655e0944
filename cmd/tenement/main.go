package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alexanderramin/tenement/internal/api"
	"github.com/alexanderramin/tenement/internal/cli"
	"github.com/alexanderramin/tenement/internal/config"
	"github.com/alexanderramin/tenement/internal/db"
	"github.com/alexanderramin/tenement/internal/repository"
	"github.com/alexanderramin/tenement/internal/resource"
	"github.com/alexanderramin/tenement/internal/session"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Open the local token store
	database, err := db.OpenDB(cfg.DB.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	tokens := repository.NewTokenStore(repository.NewSQLiteKVStore(database), db.NewSQLiteUnitOfWork(database))
	sess, err := session.Open(ctx, tokens)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}

	var observer api.Observer = api.NoopObserver{}
	if cfg.Log.Requests {
		observer = api.NewLogObserver(logger)
	}

	scope := resource.NewScope(ctx)
	defer scope.Close()

	app := cli.NewApp(resource.Env{
		API:     api.NewClient(cfg.API.BaseURL, sess, observer),
		Session: sess,
		Logger:  logger,
		Scope:   scope,
	})

	// Prompts and blocking alerts need a terminal on both ends.
	app.IsInteractive = func() bool {
		in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		return in && out
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
