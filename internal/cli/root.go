package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/alexanderramin/confplan/internal/logging"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/spf13/cobra"
)

// annotationNeedsStore marks commands that must open the SQLite catalog
// store even when the catalog itself is read from a file.
const annotationNeedsStore = "confplan/needs-store"

// GlobalFlags are the persistent root flags, handed to App.Setup once cobra
// has parsed them.
type GlobalFlags struct {
	ConfigPath string
	Catalog    string
	UseStore   bool
	LogLevel   string

	// NeedsStore is set for commands annotated as store users.
	NeedsStore bool
	// TUI is set when the invocation will start the full-screen interface.
	TUI bool
}

// App holds references to all services used by CLI commands and the TUI.
type App struct {
	Catalogs service.CatalogService
	Source   service.Source

	// Planner is built from the loaded catalog on first use when nil.
	Planner  service.PlannerService
	Observer service.UseCaseObserver

	// Location interprets session times for calendar export.
	Location *time.Location
	Logger   *slog.Logger

	IsInteractive func() bool

	// Setup wires services from flags and configuration before any command
	// runs. Tests fill the fields directly and leave it nil.
	Setup func(ctx context.Context, app *App, flags GlobalFlags) error
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *slog.Logger {
	if a.Logger == nil {
		return logging.Discard()
	}
	return a.Logger
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

// planner returns the itinerary planner, loading the catalog on first use.
func (a *App) planner(ctx context.Context) (service.PlannerService, error) {
	if a.Planner != nil {
		return a.Planner, nil
	}
	if a.Catalogs == nil {
		a.Catalogs = service.NewCatalogService(nil, nil, nil, a.Observer)
	}
	cat, err := a.Catalogs.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	a.Planner = service.NewPlannerService(cat, nil, a.Observer)
	return a.Planner, nil
}

// NewRootCmd creates the top-level "confplan" command and registers all
// subcommands against the provided App. Without arguments on an interactive
// terminal it starts the TUI.
func NewRootCmd(app *App) *cobra.Command {
	var flags GlobalFlags

	root := &cobra.Command{
		Use:           "confplan",
		Short:         "Conference schedule browser and itinerary planner",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(cmd.Context(), app)
		},
	}

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if app.Setup == nil {
			return nil
		}
		f := flags
		f.NeedsStore = cmd.Annotations[annotationNeedsStore] == "true"
		f.TUI = cmd == root && len(args) == 0 && app.interactive()
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.Setup(ctx, app, f)
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.ConfigPath, "config", "", "Config file (default ~/.confplan/config.yaml)")
	pf.StringVar(&flags.Catalog, "catalog", "", "Catalog file or glob (default: built-in schedule)")
	pf.BoolVar(&flags.UseStore, "store", false, "Read the catalog from the SQLite store")
	pf.StringVar(&flags.LogLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(
		newScheduleCmd(app),
		newTimelineCmd(app),
		newConflictsCmd(app),
		newExportCmd(app),
		newCatalogCmd(app),
	)

	return root
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
