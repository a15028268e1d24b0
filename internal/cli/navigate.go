package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// itineraryChangedMsg is broadcast to every view on the stack after the
// itinerary is modified so each can rebuild what it renders.
type itineraryChangedMsg struct{}

// statusMsg carries a one-line notice shown in the status bar until the
// next key press.
type statusMsg struct {
	text string
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

func itineraryChanged() tea.Msg { return itineraryChangedMsg{} }

// status returns a tea.Cmd that shows text in the status bar.
func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

// changedWithStatus reports an itinerary change and a notice together.
func changedWithStatus(text string) tea.Cmd {
	return tea.Batch(itineraryChanged, status(text))
}
