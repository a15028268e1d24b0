package scheduler

import (
	"sort"

	"github.com/alexanderramin/confplan/internal/domain"
)

// Dated pairs a session with the display date of the section it came from.
type Dated struct {
	ID      string // caller's handle, untouched by sorting
	Date    string
	Session domain.Session
}

// ChronologicalSort orders sessions by the deterministic agenda rules:
// 1. Date: order in which each date label first appears in items
// 2. Start: earliest first
// 3. End: earliest first
// 4. Feature: lexical ascending
// 5. Title: lexical ascending
// The sort is stable, so exact duplicates keep insertion order.
func ChronologicalSort(items []Dated) {
	dateRank := make(map[string]int)
	for _, it := range items {
		if _, ok := dateRank[it.Date]; !ok {
			dateRank[it.Date] = len(dateRank)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]

		// 1. Date
		if ra, rb := dateRank[a.Date], dateRank[b.Date]; ra != rb {
			return ra < rb
		}

		// 2. Start
		if a.Session.Start != b.Session.Start {
			return a.Session.Start < b.Session.Start
		}

		// 3. End
		if a.Session.End != b.Session.End {
			return a.Session.End < b.Session.End
		}

		// 4. Feature
		if a.Session.Feature != b.Session.Feature {
			return a.Session.Feature < b.Session.Feature
		}

		// 5. Title
		return a.Session.Title < b.Session.Title
	})
}
