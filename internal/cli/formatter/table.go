package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Table is an aligned table with a header separator line. MaxWidths caps
// each column (0 = unlimited); capped cells are truncated, which is only
// safe for unstyled cell text.
type Table struct {
	Headers   []string
	Rows      [][]string
	MaxWidths []int
}

// RenderTable renders headers and rows with no column caps.
func RenderTable(headers []string, rows [][]string) string {
	return Table{Headers: headers, Rows: rows}.Render()
}

func (t Table) maxWidth(col int) int {
	if col < len(t.MaxWidths) {
		return t.MaxWidths[col]
	}
	return 0
}

// Render lays the table out. Columns are padded to the widest visible
// cell, measured without ANSI escape sequences.
func (t Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}
	cols := len(t.Headers)

	rows := make([][]string, len(t.Rows))
	for r, row := range t.Rows {
		rows[r] = make([]string, cols)
		for i := 0; i < cols && i < len(row); i++ {
			cell := row[i]
			if max := t.maxWidth(i); max > 0 && lipgloss.Width(cell) > max {
				cell = Truncate(cell, max)
			}
			rows[r][i] = cell
		}
	}

	widths := make([]int, cols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	const colGap = 2
	var b strings.Builder

	writeRow := func(cells []string, style func(string) string) {
		for i, cell := range cells {
			pad := widths[i] - lipgloss.Width(cell)
			if pad < 0 {
				pad = 0
			}
			b.WriteString(style(cell))
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	writeRow(t.Headers, func(s string) string { return StyleHeader.Render(s) })

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(row, func(s string) string { return s })
	}
	return b.String()
}
