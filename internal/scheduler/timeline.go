package scheduler

import "github.com/alexanderramin/confplan/internal/domain"

// Cell is one session drawn in a timeline row.
type Cell struct {
	// Index is the session's position in the itinerary passed to BuildTimeline.
	Index   int
	Session domain.Session
	// Starts is true on the first grid row the session occupies; renderers
	// print the session header there.
	Starts bool
}

// Row is the timeline at one grid slot.
type Row struct {
	Slot     domain.Clock
	HourMark bool
	Conflict bool
	Cells    []Cell
}

// ConflictSpan is a maximal run of consecutive conflicting rows.
type ConflictSpan struct {
	Start  domain.Clock
	End    domain.Clock // exclusive: last conflicting slot plus the grid step
	Titles []string
}

// BuildTimeline samples sessions at every slot of g. This is a full
// O(slots x sessions) pass; callers rebuild it after every itinerary change.
func BuildTimeline(sessions []domain.Session, g Grid) []Row {
	rows := make([]Row, g.Len())
	started := make([]bool, len(sessions))
	for i := 0; i < g.Len(); i++ {
		slot := g.At(i)
		row := Row{Slot: slot, HourMark: slot.Minute() == 0}
		for idx, s := range sessions {
			if !Occupies(s, slot) {
				continue
			}
			row.Cells = append(row.Cells, Cell{Index: idx, Session: s, Starts: !started[idx]})
			started[idx] = true
		}
		row.Conflict = len(row.Cells) > 1
		rows[i] = row
	}
	return rows
}

// ConflictSpans merges consecutive conflicting rows. step is the grid
// spacing used to close the last span.
func ConflictSpans(rows []Row, step int) []ConflictSpan {
	var spans []ConflictSpan
	var cur *ConflictSpan
	seen := map[string]bool{}

	flush := func(end domain.Clock) {
		if cur == nil {
			return
		}
		cur.End = end
		spans = append(spans, *cur)
		cur = nil
		seen = map[string]bool{}
	}

	for _, row := range rows {
		if !row.Conflict {
			flush(row.Slot)
			continue
		}
		if cur == nil {
			cur = &ConflictSpan{Start: row.Slot}
		}
		for _, c := range row.Cells {
			if !seen[c.Session.Title] {
				seen[c.Session.Title] = true
				cur.Titles = append(cur.Titles, c.Session.Title)
			}
		}
	}
	if len(rows) > 0 {
		flush(rows[len(rows)-1].Slot + domain.Clock(step))
	}
	return spans
}
