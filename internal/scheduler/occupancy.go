package scheduler

import "github.com/alexanderramin/confplan/internal/domain"

// Occupies reports whether s is running at slot. The interval is half-open,
// [Start, End): a session ending exactly at slot does not occupy it, so
// back-to-back sessions touch without conflicting.
func Occupies(s domain.Session, slot domain.Clock) bool {
	return s.Start <= slot && slot < s.End
}

// Occupants returns the sessions occupying slot, preserving input order.
func Occupants(sessions []domain.Session, slot domain.Clock) []domain.Session {
	var out []domain.Session
	for _, s := range sessions {
		if Occupies(s, slot) {
			out = append(out, s)
		}
	}
	return out
}

// HasConflict reports whether more than one session occupies slot.
func HasConflict(sessions []domain.Session, slot domain.Clock) bool {
	n := 0
	for _, s := range sessions {
		if Occupies(s, slot) {
			n++
			if n > 1 {
				return true
			}
		}
	}
	return false
}

// Overlaps reports whether two sessions share at least one minute.
func Overlaps(a, b domain.Session) bool {
	return a.Start < b.End && b.Start < a.End
}
