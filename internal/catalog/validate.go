package catalog

import (
	"fmt"

	"github.com/alexanderramin/confplan/internal/domain"
)

// ValidateScheduleFile checks a parsed catalog before conversion and returns
// every problem found. Malformed times are caught here so the itinerary
// engine never sees them.
func ValidateScheduleFile(file *ScheduleFile) []error {
	if file == nil || len(file.ConferenceSchedule) == 0 {
		return []error{ErrEmptyCatalog}
	}

	var errs []error
	for i := range file.ConferenceSchedule {
		errs = append(errs, validateSection(i, &file.ConferenceSchedule[i])...)
	}
	return errs
}

func validateSection(idx int, sec *SectionRecord) []error {
	var errs []error

	if sec.Feature == "" {
		errs = append(errs, fmt.Errorf("conference_schedule[%d].feature is required", idx))
	}
	if sec.Date == "" {
		errs = append(errs, fmt.Errorf("conference_schedule[%d].date is required", idx))
	}

	for j := range sec.Sessions {
		errs = append(errs, validateSession(idx, j, sec.Feature, &sec.Sessions[j])...)
	}
	return errs
}

func validateSession(secIdx, idx int, feature string, s *SessionRecord) []error {
	var errs []error
	prefix := fmt.Sprintf("conference_schedule[%d].sessions[%d]", secIdx, idx)

	if s.Title == "" {
		errs = append(errs, fmt.Errorf("%s.title is required", prefix))
	}
	if s.Feature != "" && s.Feature != feature {
		errs = append(errs, fmt.Errorf("%s.feature %q does not match section feature %q", prefix, s.Feature, feature))
	}

	start, startErr := domain.ParseClock(s.Time)
	if startErr != nil {
		errs = append(errs, &MalformedTimeError{Feature: feature, Title: s.Title, Field: "time", Value: s.Time})
	}
	end, endErr := domain.ParseClock(s.EndTime)
	if endErr != nil {
		errs = append(errs, &MalformedTimeError{Feature: feature, Title: s.Title, Field: "end_time", Value: s.EndTime})
	}
	if startErr == nil && endErr == nil && end <= start {
		errs = append(errs, &InvertedRangeError{Feature: feature, Title: s.Title, Start: s.Time, End: s.EndTime})
	}

	if kinds, roles := involvementKinds(s.InvolvedParticipants); len(kinds) > 1 {
		errs = append(errs, &MixedInvolvementError{Feature: feature, Title: s.Title, Kinds: kinds, Roles: roles})
	}

	return errs
}

// involvementKinds lists which involvement shapes the record's roles belong
// to, and the role keys that put them there, both in declaration order.
func involvementKinds(p ParticipantRecord) ([]domain.InvolvementKind, []string) {
	var (
		kinds []domain.InvolvementKind
		roles []string
	)
	add := func(kind domain.InvolvementKind, present map[string]bool, order ...string) {
		found := false
		for _, r := range order {
			if present[r] {
				roles = append(roles, r)
				found = true
			}
		}
		if found {
			kinds = append(kinds, kind)
		}
	}
	add(domain.KindSpeaker, map[string]bool{"speaker": p.Speaker != ""}, "speaker")
	add(domain.KindPanel, map[string]bool{
		"moderator": p.Moderator != "",
		"panelists": p.Panelists != nil,
	}, "moderator", "panelists")
	add(domain.KindPresentation, map[string]bool{"presenter": p.Presenter != ""}, "presenter")
	add(domain.KindCeremony, map[string]bool{
		"witness":       p.Witness != "",
		"exchange":      p.Exchange != "",
		"organizations": p.Organizations != nil,
	}, "witness", "exchange", "organizations")
	return kinds, roles
}
