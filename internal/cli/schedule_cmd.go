package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *App) *cobra.Command {
	var feature string
	var detail bool

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "List the catalog by track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := app.planner(contextOf(cmd))
			if err != nil {
				return err
			}
			cat := planner.Catalog()

			sections := cat.ListSections()
			if feature != "" {
				sections = cat.SectionsFor(feature)
				if len(sections) == 0 {
					return fmt.Errorf("unknown feature %q (have: %s)", feature, strings.Join(cat.Features(), ", "))
				}
			}

			out := cmd.OutOrStdout()
			if !detail {
				fmt.Fprint(out, formatter.FormatSchedule(sections, nil))
				return nil
			}
			for i, sec := range sections {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, formatter.Header(sec.Feature))
				fmt.Fprintln(out, formatter.Dim(sec.Date))
				for _, s := range sec.Sessions {
					fmt.Fprintln(out)
					fmt.Fprint(out, formatter.FormatSessionDetail(withFeature(s, sec.Feature)))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&feature, "feature", "", "Only show this track")
	cmd.Flags().BoolVar(&detail, "detail", false, "Show descriptions and every participant")
	return cmd
}

// withFeature tags a catalog session with its section's track for display.
func withFeature(s domain.Session, feature string) domain.Session {
	if s.Feature == "" {
		s.Feature = feature
	}
	return s
}
