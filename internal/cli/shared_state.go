package cli

import "github.com/alexanderramin/confplan/internal/service"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App     *App
	Planner service.PlannerService

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}

// ContentWidth returns the terminal width, or 80 before the first resize.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 80
	}
	return s.Width
}
