package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexanderramin/confplan/internal/cli"
	"github.com/alexanderramin/confplan/internal/config"
	"github.com/alexanderramin/confplan/internal/db"
	"github.com/alexanderramin/confplan/internal/logging"
	"github.com/alexanderramin/confplan/internal/repository"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var closers []io.Closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i].Close()
		}
	}()

	app := &cli.App{}

	// Detect interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	app.Setup = func(ctx context.Context, app *cli.App, flags cli.GlobalFlags) error {
		c, err := setup(ctx, app, flags)
		closers = append(closers, c...)
		return err
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(ctx)
}

// setup resolves configuration and wires the App's services. It returns
// whatever must be closed on exit, even on error.
func setup(ctx context.Context, app *cli.App, flags cli.GlobalFlags) ([]io.Closer, error) {
	var closers []io.Closer

	cfg, err := config.LoadConfig(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	applyFlags(&cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	// Logs must not reach the terminal while the TUI owns it.
	var logOut io.Writer = os.Stderr
	if flags.TUI {
		logOut = nil
		if cfg.LogFile != "" {
			f, err := logging.OpenFile(cfg.LogFile)
			if err != nil {
				return closers, err
			}
			closers = append(closers, f)
			logOut = f
		}
	}
	logger, err := logging.New(logOut, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return closers, err
	}

	loc, err := cfg.Location()
	if err != nil {
		return closers, err
	}

	observer := service.NewSlogUseCaseObserver(logger)

	// Wire the catalog store only when something reads or writes it
	var (
		catalogRepo repository.CatalogRepo
		metaRepo    repository.CatalogMetaRepo
		uow         db.UnitOfWork
	)
	if cfg.UseStore || flags.NeedsStore {
		database, err := db.OpenDB(cfg.Store)
		if err != nil {
			return closers, fmt.Errorf("opening catalog store: %w", err)
		}
		closers = append(closers, database)
		catalogRepo = repository.NewSQLiteCatalogRepo(database)
		metaRepo = repository.NewSQLiteCatalogMetaRepo(database)
		uow = db.NewSQLiteUnitOfWork(database)
	}

	app.Catalogs = service.NewCatalogService(catalogRepo, metaRepo, uow, observer)
	app.Source = service.Source{Path: cfg.Catalog, UseStore: cfg.UseStore}
	app.Observer = observer
	app.Location = loc
	app.Logger = logger

	logger.DebugContext(logging.WithLogger(ctx, logger), "configured",
		"catalog", cfg.Catalog,
		"use_store", cfg.UseStore,
		"store", cfg.Store,
		"timezone", cfg.Timezone,
	)
	return closers, nil
}

// applyFlags lets explicit command-line flags win over file and environment.
func applyFlags(cfg *config.Config, flags cli.GlobalFlags) {
	if flags.Catalog != "" {
		cfg.Catalog = flags.Catalog
		cfg.UseStore = false
	}
	if flags.UseStore {
		cfg.UseStore = true
	}
	if flags.LogLevel != "" {
		cfg.LogLevel = flags.LogLevel
	}
	cfg.Normalize()
}
