package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// TimeRange renders "09:00-09:45".
func TimeRange(s domain.Session) string {
	return s.Start.String() + "-" + s.End.String()
}

// Truncate shortens s to at most width terminal cells, ending in "…" when
// cut. Wide runes count as two cells.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// ParticipantLines renders one "Role: a, b" line per non-empty role.
func ParticipantLines(inv domain.Involvement) []string {
	roles := domain.RolesOf(inv)
	lines := make([]string, len(roles))
	for i, r := range roles {
		lines[i] = r.Label()
	}
	return lines
}

// ParticipantSummary is the first role's values, used in narrow columns.
func ParticipantSummary(inv domain.Involvement) string {
	roles := domain.RolesOf(inv)
	if len(roles) == 0 {
		return ""
	}
	return strings.Join(roles[0].Values, ", ")
}

// ShortID returns the first 8 characters of an entry ID.
func ShortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return id
}
