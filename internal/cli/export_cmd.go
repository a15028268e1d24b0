package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alexanderramin/confplan/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an itinerary",
	}
	cmd.AddCommand(newExportICSCmd(app))
	return cmd
}

func newExportICSCmd(app *App) *cobra.Command {
	var refs []string
	var date, tz, output string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Write the itinerary as an iCalendar file",
		Long: `Write the itinerary as iCalendar (RFC 5545). Each session becomes an
event on its track's date. Use --date for sessions whose date cannot be read.`,
		Example: `  confplan export ics --add "The Future/Keynote" -o itinerary.ics`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := export.Options{Location: app.location()}
			if tz != "" {
				loc, err := time.LoadLocation(tz)
				if err != nil {
					return fmt.Errorf("invalid time zone %q: %w", tz, err)
				}
				opts.Location = loc
			}
			if date != "" {
				d, err := time.ParseInLocation("2006-01-02", date, opts.Location)
				if err != nil {
					return fmt.Errorf("invalid date %q: %w", date, err)
				}
				opts.FallbackDate = d
			}

			planner, err := plannerWith(cmd, app, refs)
			if err != nil {
				return err
			}
			entries := planner.Entries()
			if len(entries) == 0 {
				return fmt.Errorf("nothing to export: add sessions with --add")
			}

			if output == "" || output == "-" {
				return export.WriteICS(cmd.OutOrStdout(), entries, opts)
			}
			if err := writeFile(output, func(w io.Writer) error {
				return export.WriteICS(w, entries, opts)
			}); err != nil {
				return err
			}
			app.logger().Info("itinerary exported", "path", output, "events", len(entries))
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d events to %s\n", len(entries), output)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&refs, "add", nil, addFlagUsage)
	cmd.Flags().StringVar(&date, "date", "", "Fallback date (YYYY-MM-DD) for sessions without one")
	cmd.Flags().StringVar(&tz, "tz", "", "IANA time zone for session times (default from config)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return write(f)
}
