package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/confplan/internal/domain"
)

var testIDCounter atomic.Int64

// Session options
type SessionOption func(*domain.Session)

func WithDescription(d string) SessionOption {
	return func(s *domain.Session) {
		s.Description = d
	}
}

func WithInvolvement(inv domain.Involvement) SessionOption {
	return func(s *domain.Session) {
		s.Involvement = inv
	}
}

func WithSpeaker(name string) SessionOption {
	return WithInvolvement(domain.Speaker{Name: name})
}

func WithPanel(moderator string, panelists ...string) SessionOption {
	return WithInvolvement(domain.Panel{Moderator: moderator, Panelists: panelists})
}

func WithFeature(f string) SessionOption {
	return func(s *domain.Session) {
		s.Feature = f
	}
}

// NewTestSession builds a catalog session from HH:MM literals. It panics on
// malformed times, which is a bug in the test, not in the code under test.
func NewTestSession(title, start, end string, opts ...SessionOption) domain.Session {
	s := domain.Session{
		Start: domain.MustParseClock(start),
		End:   domain.MustParseClock(end),
		Title: title,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// NewTestSection builds a section; an empty date gets a fixed default.
func NewTestSection(feature, date string, sessions ...domain.Session) domain.ScheduleSection {
	if date == "" {
		date = ConferenceDate
	}
	return domain.ScheduleSection{Date: date, Feature: feature, Sessions: sessions}
}

// SequentialIDs returns an ID generator yielding "entry-1", "entry-2", ...
// Each call returns an independent sequence.
func SequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
}

// UniqueTitle returns title with a process-unique numeric suffix.
func UniqueTitle(title string) string {
	return fmt.Sprintf("%s #%d", title, testIDCounter.Add(1))
}
