package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/domain"
)

const (
	scheduleTitleWidth  = 44
	schedulePeopleWidth = 32
)

// FormatSchedule renders each section as a header plus a session table.
// inItinerary marks rows already chosen; it may be nil.
func FormatSchedule(sections []domain.ScheduleSection, inItinerary func(title string) bool) string {
	if len(sections) == 0 {
		return Dim("No sessions in catalog.") + "\n"
	}

	var b strings.Builder
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(sec.Feature))
		b.WriteString("\n")
		b.WriteString(Dim(sec.Date))
		b.WriteString("\n\n")

		rows := make([][]string, 0, len(sec.Sessions))
		for _, s := range sec.Sessions {
			mark := " "
			if inItinerary != nil && inItinerary(s.Title) {
				mark = "✓"
			}
			rows = append(rows, []string{
				mark,
				TimeRange(s),
				s.Title,
				ParticipantSummary(s.Involvement),
			})
		}
		b.WriteString(Table{
			Headers:   []string{" ", "TIME", "SESSION", "WITH"},
			Rows:      rows,
			MaxWidths: []int{0, 0, scheduleTitleWidth, schedulePeopleWidth},
		}.Render())
	}
	return b.String()
}

// FormatSessionDetail renders one session with description and every
// participant role.
func FormatSessionDetail(s domain.Session) string {
	var b strings.Builder
	b.WriteString(Bold(s.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		StyleBlue.Render(TimeRange(s)),
		FeatureBadge(s.Feature),
		Dim(FormatMinutes(s.Minutes())),
	))
	if s.Description != "" {
		b.WriteString("\n")
		b.WriteString(s.Description)
		b.WriteString("\n")
	}
	if lines := ParticipantLines(s.Involvement); len(lines) > 0 {
		b.WriteString("\n")
		for _, l := range lines {
			b.WriteString(Dim(l))
			b.WriteString("\n")
		}
	}
	return b.String()
}
