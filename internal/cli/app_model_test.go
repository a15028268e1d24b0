package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubView records the messages it receives.
type stubView struct {
	id    ViewID
	title string
	body  string
	msgs  []tea.Msg
}

func newStubView(id ViewID, title, body string) *stubView {
	return &stubView{id: id, title: title, body: body}
}

func (v *stubView) Init() tea.Cmd { return nil }
func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.msgs = append(v.msgs, msg)
	return v, nil
}
func (v *stubView) View() string             { return v.body }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) Title() string            { return v.title }
func (v *stubView) ShortHelp() []key.Binding { return nil }

func testModel(t *testing.T) appModel {
	t.Helper()
	app := testApp(t)
	planner, err := app.planner(context.Background())
	require.NoError(t, err)
	return newAppModel(app, planner)
}

func TestAppModel_StartsOnSchedule(t *testing.T) {
	m := testModel(t)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewSchedule, m.activeView().ID())
}

func TestAppModel_Navigation(t *testing.T) {
	t.Run("push and pop", func(t *testing.T) {
		m := testModel(t)
		model, _ := m.Update(pushViewMsg{view: newStubView(ViewTimeline, "Timeline", "tl")})
		m = model.(appModel)
		require.Len(t, m.viewStack, 2)
		assert.Equal(t, ViewTimeline, m.activeView().ID())

		model, _ = m.Update(popViewMsg{})
		m = model.(appModel)
		require.Len(t, m.viewStack, 1)

		// The home view is never popped.
		model, _ = m.Update(popViewMsg{})
		m = model.(appModel)
		require.Len(t, m.viewStack, 1)
	})

	t.Run("esc pops back stack", func(t *testing.T) {
		m := testModel(t)
		m.viewStack = append(m.viewStack, newStubView(ViewTimeline, "Timeline", "tl"))
		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		assert.Nil(t, cmd)
		assert.Len(t, m.viewStack, 1)
	})

	t.Run("form captures q and esc", func(t *testing.T) {
		m := testModel(t)
		form := newStubView(ViewForm, "Remove", "form")
		m.viewStack = append(m.viewStack, form)

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
		m = model.(appModel)
		assert.False(t, m.quitting)
		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		m = model.(appModel)
		assert.Len(t, m.viewStack, 2)
		assert.Len(t, form.msgs, 2)
	})
}

func TestAppModel_BroadcastsChangesToAllViews(t *testing.T) {
	m := testModel(t)
	bottom := newStubView(ViewSchedule, "Schedule", "")
	top := newStubView(ViewTimeline, "Timeline", "")
	m.viewStack = []View{bottom, top}

	m.Update(itineraryChangedMsg{})
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	for _, v := range []*stubView{bottom, top} {
		require.Len(t, v.msgs, 2)
		assert.IsType(t, itineraryChangedMsg{}, v.msgs[0])
		assert.IsType(t, tea.WindowSizeMsg{}, v.msgs[1])
	}
	assert.Equal(t, 90, m.state.Width)
}

func TestAppModel_WizardCompletePopsFormAndRunsNext(t *testing.T) {
	m := testModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "Remove", "form"))

	model, cmd := m.Update(wizardCompleteMsg{nextCmd: status("done")})
	m = model.(appModel)
	require.Len(t, m.viewStack, 1)
	require.NotNil(t, cmd)

	model, _ = m.Update(cmd())
	m = model.(appModel)
	assert.Equal(t, "done", m.lastStatus)
	assert.Contains(t, m.View(), "done")

	// Any key clears the notice.
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = model.(appModel)
	assert.Empty(t, m.lastStatus)
}

func TestAppModel_HeaderShowsBreadcrumbAndCount(t *testing.T) {
	m := testModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewTimeline, "Timeline", "tl"))
	header := m.renderHeader()
	assert.Contains(t, header, "confplan")
	assert.Contains(t, header, "Schedule › Timeline")
	assert.Contains(t, header, "0 chosen")
}

func TestAppModel_ViewPadsToHeight(t *testing.T) {
	m := testModel(t)
	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 60})
	m = model.(appModel)
	assert.GreaterOrEqual(t, strings.Count(m.View(), "\n")+1, 60)
}

func TestViewCapturesInput(t *testing.T) {
	assert.False(t, viewCapturesInput(nil))
	assert.True(t, viewCapturesInput(newStubView(ViewForm, "Form", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewSchedule, "Schedule", "")))
	assert.False(t, viewCapturesInput(newStubView(ViewTimeline, "Timeline", "")))
}
