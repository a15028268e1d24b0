// Package export renders an itinerary as an iCalendar feed.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/itinerary"
	"github.com/alexanderramin/confplan/internal/scheduler"
)

// ErrNoDate is returned when an entry has no parseable date and no fallback
// date was supplied.
var ErrNoDate = errors.New("session has no calendar date")

// DateLayout is the section date format, e.g. "17 October 2024 (Thursday)".
// The parenthesised weekday is optional.
const DateLayout = "2 January 2006"

const defaultProductID = "-//confplan//itinerary//EN"

// Options controls calendar rendering.
type Options struct {
	// Location interprets session times. Defaults to UTC.
	Location *time.Location
	// FallbackDate is used for entries whose section date cannot be parsed.
	// Only its year, month and day matter.
	FallbackDate time.Time
	// Now stamps DTSTAMP; defaults to time.Now.
	Now       func() time.Time
	ProductID string
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

// ParseSectionDate parses a section date label in loc.
func ParseSectionDate(label string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(label)
	if i := strings.Index(s, "("); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", label, err)
	}
	return t, nil
}

// BuildCalendar turns entries into a calendar with one VEVENT each, in
// chronological order.
func BuildCalendar(entries []itinerary.Entry, opts Options) (*ical.Calendar, error) {
	loc := opts.location()
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	productID := opts.ProductID
	if productID == "" {
		productID = defaultProductID
	}

	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)

	stamp := now().UTC()
	for _, entry := range sortEntries(entries) {
		day, err := entryDay(entry, opts.FallbackDate, loc)
		if err != nil {
			return nil, err
		}

		s := entry.Session
		ev := cal.AddEvent(entry.ID + "@confplan")
		ev.SetDtStampTime(stamp)
		ev.SetStartAt(at(day, s.Start))
		ev.SetEndAt(at(day, s.End))
		ev.SetSummary(s.Title)
		if desc := describe(s); desc != "" {
			ev.SetDescription(desc)
		}
		if s.Feature != "" {
			ev.SetLocation(s.Feature)
			ev.SetProperty(ical.ComponentPropertyCategories, s.Feature)
		}
	}
	return cal, nil
}

// WriteICS writes the itinerary as an iCalendar document to w.
func WriteICS(w io.Writer, entries []itinerary.Entry, opts Options) error {
	cal, err := BuildCalendar(entries, opts)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, cal.Serialize()); err != nil {
		return fmt.Errorf("writing calendar: %w", err)
	}
	return nil
}

func entryDay(entry itinerary.Entry, fallback time.Time, loc *time.Location) (time.Time, error) {
	if entry.Date != "" {
		if day, err := ParseSectionDate(entry.Date, loc); err == nil {
			return day, nil
		}
	}
	if fallback.IsZero() {
		return time.Time{}, fmt.Errorf("%q (date %q): %w", entry.Session.Title, entry.Date, ErrNoDate)
	}
	y, m, d := fallback.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
}

func at(day time.Time, c domain.Clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.Hour(), c.Minute(), 0, 0, day.Location())
}

// describe joins the session description and its participant roles.
func describe(s domain.Session) string {
	var lines []string
	if s.Description != "" {
		lines = append(lines, s.Description)
	}
	for _, role := range domain.RolesOf(s.Involvement) {
		lines = append(lines, role.Label())
	}
	return strings.Join(lines, "\n")
}

// sortEntries returns entries in agenda order without touching the input.
func sortEntries(entries []itinerary.Entry) []itinerary.Entry {
	dated := make([]scheduler.Dated, len(entries))
	byID := make(map[string]itinerary.Entry, len(entries))
	for i, e := range entries {
		dated[i] = scheduler.Dated{ID: e.ID, Date: e.Date, Session: e.Session}
		byID[e.ID] = e
	}
	scheduler.ChronologicalSort(dated)

	out := make([]itinerary.Entry, len(dated))
	for i, d := range dated {
		out[i] = byID[d.ID]
	}
	return out
}
