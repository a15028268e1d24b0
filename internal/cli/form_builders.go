package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/confplan/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// confplanHuhTheme returns a huh theme using the formatter's Gruvbox palette.
func confplanHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// confirmRemoveForm asks before removing every entry that shares title.
// confirmed starts true so Enter accepts.
func confirmRemoveForm(title string, count int, confirmed *bool) *huh.Form {
	*confirmed = true
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Remove %d sessions titled %q?", count, title)).
				Description("Sessions are removed by title, so every copy goes.").
				Affirmative("Remove all").
				Negative("Keep").
				Value(confirmed),
		),
	).WithTheme(confplanHuhTheme()).WithShowHelp(false)
}

// exportPathForm collects the file an itinerary is exported to.
func exportPathForm(path *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export itinerary to").
				Placeholder("itinerary.ics").
				Value(path).
				Validate(validateICSPath),
		),
	).WithTheme(confplanHuhTheme()).WithShowHelp(false)
}

func validateICSPath(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("a file name is required")
	}
	if ext := strings.ToLower(filepath.Ext(s)); ext != ".ics" {
		return fmt.Errorf("file must end in .ics")
	}
	return nil
}
