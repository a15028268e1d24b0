package formatter

import (
	"strings"

	"github.com/alexanderramin/confplan/internal/itinerary"
)

// FormatItinerary renders the chosen entries in insertion order.
func FormatItinerary(entries []itinerary.Entry) string {
	if len(entries) == 0 {
		return Dim("Itinerary is empty.") + "\n"
	}
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			Dim(ShortID(e.ID)),
			TimeRange(e.Session),
			e.Session.Title,
			e.Session.Feature,
		}
	}
	var b strings.Builder
	b.WriteString(Header("Itinerary"))
	b.WriteString("\n")
	b.WriteString(Table{
		Headers:   []string{"ID", "TIME", "SESSION", "FEATURE"},
		Rows:      rows,
		MaxWidths: []int{0, 0, scheduleTitleWidth, 0},
	}.Render())
	return b.String()
}
