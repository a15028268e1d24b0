package domain

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// InvolvementKind names the shape of a session's participant list.
type InvolvementKind string

const (
	KindSpeaker      InvolvementKind = "speaker"
	KindPanel        InvolvementKind = "panel"
	KindPresentation InvolvementKind = "presentation"
	KindCeremony     InvolvementKind = "ceremony"
)

// Role is one labelled line of participants, e.g. "panelists" with three names.
type Role struct {
	Name   string
	Values []string
}

// Involvement describes who takes part in a session. The set of
// implementations is closed: Speaker, Panel, Presentation and Ceremony.
type Involvement interface {
	Kind() InvolvementKind
	// Roles lists the non-empty roles in display order.
	Roles() []Role
	clone() Involvement
}

// Speaker is a talk given by a single person.
type Speaker struct {
	Name string
}

// Panel is a moderated discussion.
type Panel struct {
	Moderator string
	Panelists []string
}

// Presentation is a demo or showcase by one presenter (often an organization).
type Presentation struct {
	Presenter string
}

// Ceremony is a witnessed exchange between organizations, such as an MOU signing.
type Ceremony struct {
	Witness       string
	Exchange      string
	Organizations []string
}

func (Speaker) Kind() InvolvementKind      { return KindSpeaker }
func (Panel) Kind() InvolvementKind        { return KindPanel }
func (Presentation) Kind() InvolvementKind { return KindPresentation }
func (Ceremony) Kind() InvolvementKind     { return KindCeremony }

func (s Speaker) Roles() []Role {
	return appendRole(nil, "speaker", s.Name)
}

func (p Panel) Roles() []Role {
	roles := appendRole(nil, "moderator", p.Moderator)
	return appendRoleList(roles, "panelists", p.Panelists)
}

func (p Presentation) Roles() []Role {
	return appendRole(nil, "presenter", p.Presenter)
}

func (c Ceremony) Roles() []Role {
	roles := appendRole(nil, "witness", c.Witness)
	roles = appendRole(roles, "exchange", c.Exchange)
	return appendRoleList(roles, "organizations", c.Organizations)
}

func (s Speaker) clone() Involvement      { return s }
func (p Presentation) clone() Involvement { return p }

func (p Panel) clone() Involvement {
	p.Panelists = cloneStrings(p.Panelists)
	return p
}

func (c Ceremony) clone() Involvement {
	c.Organizations = cloneStrings(c.Organizations)
	return c
}

// RolesOf returns inv.Roles(), or nil when inv is nil.
func RolesOf(inv Involvement) []Role {
	if inv == nil {
		return nil
	}
	return inv.Roles()
}

func appendRole(roles []Role, name, value string) []Role {
	if value == "" {
		return roles
	}
	return append(roles, Role{Name: name, Values: []string{value}})
}

// appendRoleList keeps an explicitly empty list out of the output; a panel
// with no panelists renders only its moderator.
func appendRoleList(roles []Role, name string, values []string) []Role {
	if len(values) == 0 {
		return roles
	}
	return append(roles, Role{Name: name, Values: cloneStrings(values)})
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

// Label renders the role as "Panelists: a, b".
func (r Role) Label() string {
	return cases.Title(language.English).String(r.Name) + ": " + strings.Join(r.Values, ", ")
}
