package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/confplan/internal/catalog"
	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/repository"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/spf13/cobra"
)

func newCatalogCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage schedule catalogs",
	}

	cmd.AddCommand(
		newCatalogValidateCmd(),
		newCatalogImportCmd(app),
		newCatalogShowCmd(app),
	)
	return cmd
}

func newCatalogValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate PATH",
		Short: "Check a catalog file or glob without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := catalog.ReadSource(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			problems := catalog.ValidateScheduleFile(file)
			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Fprintf(out, "  %s %s\n", formatter.StyleRed.Render("✗"), p)
				}
				return fmt.Errorf("%s: %d problem(s)", args[0], len(problems))
			}

			sessions := 0
			for _, sec := range file.ConferenceSchedule {
				sessions += len(sec.Sessions)
			}
			fmt.Fprintf(out, "%s %s: %d section(s), %d session(s)\n",
				formatter.StyleGreen.Render("✓"), args[0], len(file.ConferenceSchedule), sessions)
			return nil
		},
	}
}

func newCatalogImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "import PATH",
		Short:       "Replace the SQLite catalog store with a catalog file or glob",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{annotationNeedsStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Catalogs == nil {
				return service.ErrStoreUnavailable
			}
			result, err := app.Catalogs.Import(contextOf(cmd), args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if result.Unchanged {
				fmt.Fprintf(out, "Store already up to date (%s)\n", formatter.Dim(shortChecksum(result.Checksum)))
				return nil
			}
			fmt.Fprintf(out, "Imported %d section(s), %d session(s) from %s %s\n",
				result.Sections, result.Sessions, result.Source, formatter.Dim(shortChecksum(result.Checksum)))
			return nil
		},
	}
}

func newCatalogShowCmd(app *App) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the active catalog",
		Long: `Print the active catalog. The text format summarises each track; json
and yaml print the catalog in file form, ready to edit and re-import.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := contextOf(cmd)
			planner, err := app.planner(ctx)
			if err != nil {
				return err
			}
			cat := planner.Catalog()
			out := cmd.OutOrStdout()

			switch format {
			case "json", "yaml":
				data, err := catalog.FileFromSections(cat.ListSections()).Encode(catalog.Format(format))
				if err != nil {
					return err
				}
				_, err = out.Write(data)
				return err
			case "", "text":
			default:
				return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
			}

			rows := make([][]string, 0, cat.Len())
			for _, sec := range cat.ListSections() {
				first, last := "", ""
				if n := len(sec.Sessions); n > 0 {
					first = sec.Sessions[0].Start.String()
					last = sec.Sessions[n-1].End.String()
				}
				rows = append(rows, []string{
					formatter.FeatureBadge(sec.Feature),
					sec.Date,
					fmt.Sprintf("%d", len(sec.Sessions)),
					first + "-" + last,
				})
			}
			fmt.Fprintln(out, formatter.Header("Catalog"))
			fmt.Fprintf(out, "Source: %s\n\n", sourceName(app.Source))
			fmt.Fprint(out, formatter.RenderTable([]string{"FEATURE", "DATE", "SESSIONS", "SPAN"}, rows))

			if app.Source.UseStore && app.Catalogs != nil {
				meta, err := app.Catalogs.StoreInfo(ctx)
				if err != nil && !errors.Is(err, service.ErrStoreUnavailable) && !errors.Is(err, repository.ErrNotFound) {
					return err
				}
				if meta != nil {
					fmt.Fprintf(out, "\nStore: imported from %s at %s %s\n",
						meta.Source, meta.ImportedAt.Local().Format(time.DateTime), formatter.Dim(shortChecksum(meta.Checksum)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text, json or yaml")
	return cmd
}

func sourceName(src service.Source) string {
	switch {
	case src.UseStore:
		return "SQLite store"
	case src.Path == "":
		return "built-in schedule"
	default:
		return src.Path
	}
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
