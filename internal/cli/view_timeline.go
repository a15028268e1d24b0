package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/export"
	"github.com/alexanderramin/confplan/internal/itinerary"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

type timelineKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Export key.Binding
	Scroll key.Binding
}

var timelineKeys = timelineKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Remove: key.NewBinding(key.WithKeys("x", "d"), key.WithHelp("x", "remove")),
	Export: key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export ics")),
	Scroll: key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
}

// timelineView lists the chosen entries above a scrollable 08:00-18:00
// timeline. The selected entry can be removed individually by ID.
type timelineView struct {
	state   *SharedState
	entries []itinerary.Entry
	cursor  int
	vp      viewport.Model
}

func newTimelineView(state *SharedState) *timelineView {
	vp := viewport.New(0, 0)
	vp.KeyMap = timelineViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	v := &timelineView{state: state, vp: vp}
	v.reload()
	return v
}

// timelineViewportKeyMap returns a restricted keymap for the viewport.
// Only page keys scroll; arrows move the entry selection.
func timelineViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
	}
}

func (v *timelineView) ID() ViewID    { return ViewTimeline }
func (v *timelineView) Title() string { return "Timeline" }

func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{timelineKeys.Remove, timelineKeys.Export, timelineKeys.Scroll}
}

func (v *timelineView) Init() tea.Cmd { return nil }

// reload re-reads the itinerary and re-renders the timeline content.
func (v *timelineView) reload() {
	v.entries = v.state.Planner.Entries()
	if v.cursor >= len(v.entries) {
		v.cursor = max(len(v.entries)-1, 0)
	}

	var b strings.Builder
	b.WriteString(formatter.FormatTimeline(v.state.Planner.Timeline()))
	b.WriteString("\n")
	b.WriteString(formatter.FormatConflicts(v.state.Planner.Conflicts()))
	v.vp.SetContent(b.String())
	v.resize()
}

func (v *timelineView) resize() {
	v.vp.Width = v.state.ContentWidth()
	// Entry list: one line per entry plus a blank line and a separator.
	listLines := max(len(v.entries), 1) + 2
	v.vp.Height = max(v.state.ContentHeight()-listLines, 3)
}

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itineraryChangedMsg:
		v.reload()
		return v, nil

	case tea.WindowSizeMsg:
		v.resize()
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, timelineKeys.Up):
			if v.cursor > 0 {
				v.cursor--
			}
			return v, nil
		case key.Matches(msg, timelineKeys.Down):
			if v.cursor < len(v.entries)-1 {
				v.cursor++
			}
			return v, nil
		case key.Matches(msg, timelineKeys.Remove):
			return v, v.removeSelected()
		case key.Matches(msg, timelineKeys.Export):
			return v, v.startExport()
		}
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *timelineView) removeSelected() tea.Cmd {
	if v.cursor >= len(v.entries) {
		return nil
	}
	entry := v.entries[v.cursor]
	if !v.state.Planner.RemoveByID(context.Background(), entry.ID) {
		return status(entry.Session.Title + " was already removed")
	}
	return changedWithStatus("Removed " + entry.Session.Title)
}

func (v *timelineView) startExport() tea.Cmd {
	if len(v.entries) == 0 {
		return status("Nothing to export")
	}
	path := new(string)
	app := v.state.App
	entries := v.entries
	return startWizardCmd(v.state, "Export", exportPathForm(path), func() tea.Cmd {
		target := strings.TrimSpace(*path)
		opts := export.Options{Location: app.location()}
		err := writeFile(target, func(w io.Writer) error {
			return export.WriteICS(w, entries, opts)
		})
		if err != nil {
			app.logger().Error("itinerary export failed", "path", target, "error", err)
			return status("Export failed: " + err.Error())
		}
		app.logger().Info("itinerary exported", "path", target, "events", len(entries))
		return status(fmt.Sprintf("Wrote %d events to %s", len(entries), target))
	})
}

func (v *timelineView) View() string {
	var b strings.Builder
	b.WriteString("\n")
	if len(v.entries) == 0 {
		b.WriteString("  " + formatter.Dim("Itinerary is empty. Add sessions from the schedule.") + "\n")
	}
	titleWidth := max(v.state.ContentWidth()-40, 16)
	for i, e := range v.entries {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			formatter.StyleBlue.Render(formatter.TimeRange(e.Session)),
			titleStyle.Render(formatter.Truncate(e.Session.Title, titleWidth)),
			formatter.FeatureBadge(e.Session.Feature),
		))
	}
	b.WriteString(formatter.Dim(strings.Repeat("─", max(v.state.ContentWidth(), 20))))
	b.WriteString("\n")
	b.WriteString(v.vp.View())
	return b.String()
}
