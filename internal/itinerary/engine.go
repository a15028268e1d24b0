// Package itinerary holds the user's chosen sessions and answers timeline
// occupancy queries over them.
//
// An Engine is owned by a single caller (one TUI program or one CLI
// invocation) and is not safe for concurrent use.
package itinerary

import (
	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/scheduler"
	"github.com/google/uuid"
)

// Entry is one itinerary item. ID is generated at add time and is the only
// stable way to address a single entry; titles may repeat.
type Entry struct {
	ID      string
	Session domain.Session
	Date    string // source section date, empty when added without a section
}

// Engine owns the ordered itinerary.
type Engine struct {
	entries []Entry
	grid    scheduler.Grid
	newID   func() string
}

// Option configures an Engine.
type Option func(*Engine)

// WithGrid overrides the timeline grid.
func WithGrid(g scheduler.Grid) Option {
	return func(e *Engine) { e.grid = g }
}

// WithIDGenerator overrides entry ID generation. Tests use it for stable IDs.
func WithIDGenerator(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// New returns an empty itinerary. The slot grid is built once here and
// reused for the engine's lifetime.
func New(opts ...Option) *Engine {
	e := &Engine{
		grid:  scheduler.DefaultGrid(),
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Add appends a copy of session tagged with feature. Adding the same session
// twice yields two entries.
func (e *Engine) Add(session domain.Session, feature string) Entry {
	s := session.Clone()
	s.Feature = feature
	entry := Entry{ID: e.newID(), Session: s}
	e.entries = append(e.entries, entry)
	return entry
}

// AddFromSection is Add with the feature and date taken from section.
func (e *Engine) AddFromSection(section domain.ScheduleSection, session domain.Session) Entry {
	entry := e.Add(session, section.Feature)
	entry.Date = section.Date
	e.entries[len(e.entries)-1].Date = section.Date
	return entry
}

// Remove deletes every entry whose title equals title and returns how many
// were removed. An absent title is a no-op.
func (e *Engine) Remove(title string) int {
	kept := e.entries[:0:0]
	for _, entry := range e.entries {
		if entry.Session.Title != title {
			kept = append(kept, entry)
		}
	}
	removed := len(e.entries) - len(kept)
	if removed > 0 {
		e.entries = kept
	}
	return removed
}

// RemoveByID deletes the single entry with the given ID.
func (e *Engine) RemoveByID(id string) bool {
	for i, entry := range e.entries {
		if entry.ID == id {
			e.entries = append(e.entries[:i:i], e.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns the itinerary sessions in insertion order.
func (e *Engine) List() []domain.Session {
	out := make([]domain.Session, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry.Session.Clone()
	}
	return out
}

// Entries returns a copy of the itinerary entries in insertion order.
func (e *Engine) Entries() []Entry {
	out := make([]Entry, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry
		out[i].Session = entry.Session.Clone()
	}
	return out
}

// Len returns the number of entries.
func (e *Engine) Len() int { return len(e.entries) }

// Count returns how many entries carry title.
func (e *Engine) Count(title string) int {
	n := 0
	for _, entry := range e.entries {
		if entry.Session.Title == title {
			n++
		}
	}
	return n
}

// Contains reports whether any entry carries title.
func (e *Engine) Contains(title string) bool {
	return e.Count(title) > 0
}

// Occupants returns the sessions s with s.Start <= slot < s.End, in
// insertion order.
func (e *Engine) Occupants(slot domain.Clock) []domain.Session {
	occ := scheduler.Occupants(e.sessions(), slot)
	for i := range occ {
		occ[i] = occ[i].Clone()
	}
	return occ
}

// HasConflict reports whether more than one session occupies slot.
func (e *Engine) HasConflict(slot domain.Clock) bool {
	return len(e.Occupants(slot)) > 1
}

// Grid returns the slot grid used by Timeline.
func (e *Engine) Grid() scheduler.Grid { return e.grid }

// Timeline samples the itinerary at every grid slot.
func (e *Engine) Timeline() []scheduler.Row {
	return scheduler.BuildTimeline(e.sessions(), e.grid)
}

// Conflicts returns the merged runs of conflicting slots.
func (e *Engine) Conflicts() []scheduler.ConflictSpan {
	return scheduler.ConflictSpans(e.Timeline(), e.grid.Step())
}

func (e *Engine) sessions() []domain.Session {
	out := make([]domain.Session, len(e.entries))
	for i, entry := range e.entries {
		out[i] = entry.Session
	}
	return out
}
