package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/confplan/internal/domain"
)

// ErrEmptyCatalog is returned when a catalog source has no sections at all.
var ErrEmptyCatalog = errors.New("catalog has no sections")

// MalformedTimeError reports a session whose time or end_time is not HH:MM.
type MalformedTimeError struct {
	Feature string
	Title   string
	Field   string // "time" or "end_time"
	Value   string
}

func (e *MalformedTimeError) Error() string {
	return fmt.Sprintf("%s / %q: malformed %s %q (expected HH:MM)", e.Feature, e.Title, e.Field, e.Value)
}

// InvertedRangeError reports a session that does not end after it starts.
type InvertedRangeError struct {
	Feature string
	Title   string
	Start   string
	End     string
}

func (e *InvertedRangeError) Error() string {
	return fmt.Sprintf("%s / %q: end_time %s must be after time %s", e.Feature, e.Title, e.End, e.Start)
}

// MixedInvolvementError reports participant roles that belong to more than
// one kind of involvement, e.g. a speaker and a moderator on one session.
type MixedInvolvementError struct {
	Feature string
	Title   string
	Kinds   []domain.InvolvementKind
	Roles   []string // the clashing role keys as written in the file
}

func (e *MixedInvolvementError) Error() string {
	kinds := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		kinds[i] = string(k)
	}
	msg := fmt.Sprintf("%s / %q: participants mix %s roles", e.Feature, e.Title, strings.Join(kinds, " and "))
	if len(e.Roles) > 0 {
		msg += " (" + strings.Join(e.Roles, ", ") + ")"
	}
	return msg
}

// ValidationErrors aggregates every problem found in a catalog.
type ValidationErrors []error

func (v ValidationErrors) Error() string {
	if len(v) == 1 {
		return "invalid catalog: " + v[0].Error()
	}
	msgs := make([]string, len(v))
	for i, err := range v {
		msgs[i] = "  - " + err.Error()
	}
	return fmt.Sprintf("invalid catalog (%d problems):\n%s", len(v), strings.Join(msgs, "\n"))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (v ValidationErrors) Unwrap() []error {
	return v
}
