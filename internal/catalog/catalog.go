// Package catalog loads and serves the read-only conference schedule.
package catalog

import (
	"github.com/alexanderramin/confplan/internal/domain"
)

// Catalog is the immutable schedule: sections in file order, each holding
// sessions in display order. Every accessor returns copies.
type Catalog struct {
	sections []domain.ScheduleSection
}

// New builds a catalog from already-validated sections.
func New(sections []domain.ScheduleSection) *Catalog {
	c := &Catalog{sections: make([]domain.ScheduleSection, len(sections))}
	for i, sec := range sections {
		c.sections[i] = sec.Clone()
	}
	return c
}

// ListSections returns every section in catalog order.
func (c *Catalog) ListSections() []domain.ScheduleSection {
	out := make([]domain.ScheduleSection, len(c.sections))
	for i, sec := range c.sections {
		out[i] = sec.Clone()
	}
	return out
}

// Features returns the distinct feature names in first-appearance order.
func (c *Catalog) Features() []string {
	seen := make(map[string]bool, len(c.sections))
	var out []string
	for _, sec := range c.sections {
		if seen[sec.Feature] {
			continue
		}
		seen[sec.Feature] = true
		out = append(out, sec.Feature)
	}
	return out
}

// SectionsFor returns the sections belonging to feature.
func (c *Catalog) SectionsFor(feature string) []domain.ScheduleSection {
	var out []domain.ScheduleSection
	for _, sec := range c.sections {
		if sec.Feature == feature {
			out = append(out, sec.Clone())
		}
	}
	return out
}

// Match is a catalog session together with the section it came from.
type Match struct {
	Section domain.ScheduleSection
	Session domain.Session
}

// Find returns every session titled title in feature. An empty feature
// searches all tracks.
func (c *Catalog) Find(feature, title string) []Match {
	var out []Match
	for _, sec := range c.sections {
		if feature != "" && sec.Feature != feature {
			continue
		}
		for _, s := range sec.Sessions {
			if s.Title == title {
				out = append(out, Match{
					Section: domain.ScheduleSection{Date: sec.Date, Feature: sec.Feature},
					Session: s.Clone(),
				})
			}
		}
	}
	return out
}

// SessionCount returns the number of sessions across all sections.
func (c *Catalog) SessionCount() int {
	n := 0
	for _, sec := range c.sections {
		n += len(sec.Sessions)
	}
	return n
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}
