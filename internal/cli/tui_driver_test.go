package cli

import (
	"context"
	"testing"

	"github.com/alexanderramin/confplan/internal/teatest"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with confplan-specific inspection methods.
// It exposes appModel internals (view stack, shared state, status line)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	planner, err := app.planner(context.Background())
	require.NoError(t, err)

	m := newAppModel(app, planner)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app asked to quit, through the model flag
// or a drained tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// LastStatus returns the status line notice.
func (d *TestDriver) LastStatus() string {
	return d.appModel().lastStatus
}

// Titles returns the titles currently in the itinerary, in order.
func (d *TestDriver) Titles() []string {
	entries := d.State().Planner.Entries()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Session.Title
	}
	return out
}
