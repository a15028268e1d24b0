package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/scheduler"
)

const (
	timelineLabelWidth = 5
	timelineGutter     = " │ "
	timelineCellWidth  = 48
)

// FormatTimeline renders one line per grid row. Hour rows carry the
// "HH:MM" label; other rows leave the label blank. A session prints its
// title, feature and range on the row it starts and a bar on the rows it
// continues. Conflicting rows are drawn in the conflict style.
func FormatTimeline(rows []scheduler.Row) string {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(TimelineLine(row))
		b.WriteString("\n")
	}
	return b.String()
}

// TimelineLine renders a single row without the trailing newline.
func TimelineLine(row scheduler.Row) string {
	label := strings.Repeat(" ", timelineLabelWidth)
	if row.HourMark {
		label = row.Slot.String()
	}

	var line strings.Builder
	line.WriteString(Dim(label))
	line.WriteString(StyleDim.Render(timelineGutter))

	if len(row.Cells) == 0 {
		return line.String()
	}

	style := OccupancyStyle(row.Conflict)
	cells := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		cells[i] = style.Render(cellText(c))
	}
	line.WriteString(strings.Join(cells, StyleDim.Render(" ┆ ")))
	if row.Conflict {
		line.WriteString(" ")
		line.WriteString(StyleRed.Render("!"))
	}
	return line.String()
}

func cellText(c scheduler.Cell) string {
	if !c.Starts {
		return "┃"
	}
	s := c.Session
	text := fmt.Sprintf("┏ %s · %s · %s", s.Title, s.Feature, TimeRange(s))
	return Truncate(text, timelineCellWidth)
}

// FormatConflicts lists merged conflict spans, or a placeholder when the
// itinerary has none.
func FormatConflicts(spans []scheduler.ConflictSpan) string {
	if len(spans) == 0 {
		return StyleGreen.Render("No conflicts.") + "\n"
	}
	var b strings.Builder
	b.WriteString(Header("Conflicts"))
	b.WriteString("\n")
	for _, sp := range spans {
		b.WriteString(fmt.Sprintf("%s  %s\n",
			StyleYellow.Render(sp.Start.String()+"-"+sp.End.String()),
			strings.Join(sp.Titles, ", "),
		))
	}
	return b.String()
}
