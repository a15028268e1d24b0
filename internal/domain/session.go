package domain

// Session is one schedule item. Catalog sessions are read-only; the
// itinerary holds copies with Feature set to the track they came from.
type Session struct {
	Start       Clock
	End         Clock
	Title       string
	Description string
	Involvement Involvement // nil when nobody is listed
	Feature     string
}

// Minutes returns the session length.
func (s Session) Minutes() int {
	return int(s.End - s.Start)
}

// Clone returns a deep copy so the caller cannot alias the receiver's
// participant lists.
func (s Session) Clone() Session {
	out := s
	if s.Involvement != nil {
		out.Involvement = s.Involvement.clone()
	}
	return out
}

// ScheduleSection groups sessions under one date and one feature (track).
// Session order is display order.
type ScheduleSection struct {
	Date     string
	Feature  string
	Sessions []Session
}

// Clone returns a deep copy of the section.
func (s ScheduleSection) Clone() ScheduleSection {
	out := ScheduleSection{Date: s.Date, Feature: s.Feature}
	if s.Sessions != nil {
		out.Sessions = make([]Session, len(s.Sessions))
		for i, sess := range s.Sessions {
			out.Sessions[i] = sess.Clone()
		}
	}
	return out
}
