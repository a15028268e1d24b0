package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/service"
	"github.com/spf13/cobra"
)

// errConflicts is returned by "conflicts --strict" when any slot is double
// booked.
var errConflicts = errors.New("itinerary has conflicting sessions")

// addRefs resolves every "Feature/Title" reference into the itinerary.
func addRefs(ctx context.Context, planner service.PlannerService, refs []string) error {
	for _, raw := range refs {
		ref, err := service.ParseSessionRef(raw)
		if err != nil {
			return err
		}
		if _, err := planner.Add(ctx, ref); err != nil {
			return fmt.Errorf("adding %q: %w", raw, err)
		}
	}
	return nil
}

// plannerWith loads the planner and adds refs to it.
func plannerWith(cmd *cobra.Command, app *App, refs []string) (service.PlannerService, error) {
	ctx := contextOf(cmd)
	planner, err := app.planner(ctx)
	if err != nil {
		return nil, err
	}
	if err := addRefs(ctx, planner, refs); err != nil {
		return nil, err
	}
	return planner, nil
}

const addFlagUsage = `Session to add as "Feature/Title" (repeatable; feature optional when the title is unique)`

func newTimelineCmd(app *App) *cobra.Command {
	var refs []string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Build an itinerary and print its timeline",
		Long: `Build an itinerary from --add references and print it as a 10-minute
timeline from 08:00 to 18:00, followed by any conflicts.`,
		Example: `  confplan timeline --add "The Future/Keynote" --add "Fireside Chat"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := plannerWith(cmd, app, refs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatItinerary(planner.Entries()))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatTimeline(planner.Timeline()))
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.FormatConflicts(planner.Conflicts()))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&refs, "add", nil, addFlagUsage)
	return cmd
}

func newConflictsCmd(app *App) *cobra.Command {
	var refs []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List the time ranges where chosen sessions overlap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			planner, err := plannerWith(cmd, app, refs)
			if err != nil {
				return err
			}
			spans := planner.Conflicts()
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConflicts(spans))
			if strict && len(spans) > 0 {
				titles := make([]string, 0, len(spans))
				for _, sp := range spans {
					titles = append(titles, strings.Join(sp.Titles, " + "))
				}
				return fmt.Errorf("%w: %s", errConflicts, strings.Join(titles, "; "))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&refs, "add", nil, addFlagUsage)
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error when any conflict exists")
	return cmd
}
