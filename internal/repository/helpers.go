package repository

import (
	"time"

	"github.com/alexanderramin/confplan/internal/domain"
)

// parseStoredTime parses an RFC3339 timestamp written by nowUTC.
// Returns the zero time if the value is empty or fails to parse.
func parseStoredTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// kindOf returns the stored kind column for an involvement; "" for none.
func kindOf(inv domain.Involvement) string {
	if inv == nil {
		return ""
	}
	return string(inv.Kind())
}

// involvementFromRoles rebuilds an involvement from its kind column and the
// role rows that belong to it.
func involvementFromRoles(kind string, roles map[string][]string) domain.Involvement {
	first := func(name string) string {
		if v := roles[name]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	switch domain.InvolvementKind(kind) {
	case domain.KindSpeaker:
		return domain.Speaker{Name: first("speaker")}
	case domain.KindPanel:
		return domain.Panel{Moderator: first("moderator"), Panelists: roles["panelists"]}
	case domain.KindPresentation:
		return domain.Presentation{Presenter: first("presenter")}
	case domain.KindCeremony:
		return domain.Ceremony{
			Witness:       first("witness"),
			Exchange:      first("exchange"),
			Organizations: roles["organizations"],
		}
	default:
		return nil
	}
}
