package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/itinerary"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type scheduleKeyMap struct {
	NextTab  key.Binding
	PrevTab  key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Remove   key.Binding
	Timeline key.Binding
}

var scheduleKeys = scheduleKeyMap{
	NextTab:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next track")),
	PrevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev track")),
	Up:       key.NewBinding(key.WithKeys("up", "k")),
	Down:     key.NewBinding(key.WithKeys("down", "j")),
	Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "add/remove")),
	Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Remove:   key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "remove")),
	Timeline: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeline")),
}

// scheduleItem is one selectable row: a catalog session and the section it
// belongs to.
type scheduleItem struct {
	section domain.ScheduleSection
	session domain.Session
}

// scheduleView browses the catalog one track (feature) per tab and toggles
// sessions in and out of the itinerary.
type scheduleView struct {
	state    *SharedState
	features []string
	tab      int
	items    []scheduleItem
	cursor   int
}

func newScheduleView(state *SharedState) *scheduleView {
	v := &scheduleView{state: state}
	if state.Planner != nil {
		v.features = state.Planner.Catalog().Features()
	}
	v.loadTab()
	return v
}

func (v *scheduleView) ID() ViewID    { return ViewSchedule }
func (v *scheduleView) Title() string { return "Schedule" }

func (v *scheduleView) ShortHelp() []key.Binding {
	return []key.Binding{
		scheduleKeys.NextTab,
		scheduleKeys.Toggle,
		scheduleKeys.Add,
		scheduleKeys.Remove,
		scheduleKeys.Timeline,
	}
}

func (v *scheduleView) Init() tea.Cmd { return nil }

// loadTab rebuilds the rows for the current feature.
func (v *scheduleView) loadTab() {
	v.items = nil
	if len(v.features) == 0 {
		return
	}
	for _, sec := range v.state.Planner.Catalog().SectionsFor(v.features[v.tab]) {
		for _, s := range sec.Sessions {
			v.items = append(v.items, scheduleItem{section: sec, session: s})
		}
	}
	if v.cursor >= len(v.items) {
		v.cursor = max(len(v.items)-1, 0)
	}
}

func (v *scheduleView) selected() (scheduleItem, bool) {
	if v.cursor < 0 || v.cursor >= len(v.items) {
		return scheduleItem{}, false
	}
	return v.items[v.cursor], true
}

func (v *scheduleView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(keyMsg, scheduleKeys.NextTab):
		v.switchTab(1)
	case key.Matches(keyMsg, scheduleKeys.PrevTab):
		v.switchTab(-1)
	case key.Matches(keyMsg, scheduleKeys.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(keyMsg, scheduleKeys.Down):
		if v.cursor < len(v.items)-1 {
			v.cursor++
		}
	case key.Matches(keyMsg, scheduleKeys.Toggle):
		item, ok := v.selected()
		if !ok {
			return v, nil
		}
		if entry, ok := v.entryFor(item); ok {
			v.state.Planner.RemoveByID(context.Background(), entry.ID)
			return v, changedWithStatus("Removed " + item.session.Title)
		}
		return v, v.add(item)
	case key.Matches(keyMsg, scheduleKeys.Add):
		if item, ok := v.selected(); ok {
			return v, v.add(item)
		}
	case key.Matches(keyMsg, scheduleKeys.Remove):
		if item, ok := v.selected(); ok {
			return v, v.remove(item.session.Title)
		}
	case key.Matches(keyMsg, scheduleKeys.Timeline):
		return v, pushView(newTimelineView(v.state))
	}
	return v, nil
}

func (v *scheduleView) switchTab(delta int) {
	if len(v.features) == 0 {
		return
	}
	v.tab = (v.tab + delta + len(v.features)) % len(v.features)
	v.cursor = 0
	v.loadTab()
}

func (v *scheduleView) add(item scheduleItem) tea.Cmd {
	v.state.Planner.AddSession(context.Background(), item.section, item.session)
	return changedWithStatus("Added " + item.session.Title)
}

// entryFor finds the itinerary entry added from this exact catalog slot.
// Titles repeat across tracks, so the section and start time must match too.
func (v *scheduleView) entryFor(item scheduleItem) (itinerary.Entry, bool) {
	for _, e := range v.state.Planner.Entries() {
		if e.Session.Title == item.session.Title &&
			e.Session.Feature == item.section.Feature &&
			e.Date == item.section.Date &&
			e.Session.Start == item.session.Start {
			return e, true
		}
	}
	return itinerary.Entry{}, false
}

// remove drops every entry titled title, asking first when more than one
// entry would go.
func (v *scheduleView) remove(title string) tea.Cmd {
	planner := v.state.Planner
	switch n := planner.Count(title); n {
	case 0:
		return status(title + " is not in the itinerary")
	case 1:
		planner.Remove(context.Background(), title)
		return changedWithStatus("Removed " + title)
	default:
		confirmed := new(bool)
		form := confirmRemoveForm(title, n, confirmed)
		return startWizardCmd(v.state, "Remove", form, func() tea.Cmd {
			if !*confirmed {
				return status("Kept " + title)
			}
			removed := planner.Remove(context.Background(), title)
			return changedWithStatus(fmt.Sprintf("Removed %d × %s", removed, title))
		})
	}
}

func (v *scheduleView) View() string {
	if len(v.features) == 0 {
		return "\n  " + formatter.Dim("No sessions in catalog.")
	}

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(v.renderTabs())
	b.WriteString("\n")
	if len(v.items) > 0 {
		b.WriteString("  " + formatter.Dim(v.items[0].section.Date) + "\n")
	}
	b.WriteString("\n")

	titleWidth := max(v.state.ContentWidth()-24, 16)
	for i, item := range v.items {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}
		mark := " "
		if _, chosen := v.entryFor(item); chosen {
			mark = formatter.StyleGreen.Render("✓")
		}
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n",
			cursor,
			mark,
			formatter.StyleBlue.Render(formatter.TimeRange(item.session)),
			titleStyle.Render(formatter.Truncate(item.session.Title, titleWidth)),
		))
	}

	if item, ok := v.selected(); ok {
		b.WriteString("\n")
		detail := formatter.FormatSessionDetail(withFeature(item.session, item.section.Feature))
		for _, line := range strings.Split(strings.TrimRight(detail, "\n"), "\n") {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func (v *scheduleView) renderTabs() string {
	tabs := make([]string, len(v.features))
	for i, f := range v.features {
		if i == v.tab {
			tabs[i] = formatter.StyleHeader.Render("[" + f + "]")
		} else {
			tabs[i] = formatter.Dim(" " + f + " ")
		}
	}
	return strings.Join(tabs, " ")
}
