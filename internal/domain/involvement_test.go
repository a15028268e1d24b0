package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoles_DisplayOrder(t *testing.T) {
	cases := []struct {
		name string
		inv  Involvement
		want []Role
	}{
		{
			name: "speaker",
			inv:  Speaker{Name: "John Low Jaei Hong"},
			want: []Role{{Name: "speaker", Values: []string{"John Low Jaei Hong"}}},
		},
		{
			name: "panel",
			inv:  Panel{Moderator: "Tim Miller", Panelists: []string{"Richard Goh", "Ibrahim Sani"}},
			want: []Role{
				{Name: "moderator", Values: []string{"Tim Miller"}},
				{Name: "panelists", Values: []string{"Richard Goh", "Ibrahim Sani"}},
			},
		},
		{
			name: "panel without panelists",
			inv:  Panel{Moderator: "Tim Miller", Panelists: []string{}},
			want: []Role{{Name: "moderator", Values: []string{"Tim Miller"}}},
		},
		{
			name: "presentation",
			inv:  Presentation{Presenter: "FutureLab"},
			want: []Role{{Name: "presenter", Values: []string{"FutureLab"}}},
		},
		{
			name: "ceremony",
			inv:  Ceremony{Witness: "W", Exchange: "E", Organizations: []string{"A", "B"}},
			want: []Role{
				{Name: "witness", Values: []string{"W"}},
				{Name: "exchange", Values: []string{"E"}},
				{Name: "organizations", Values: []string{"A", "B"}},
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.inv.Roles())
		})
	}
}

func TestRolesOf_Nil(t *testing.T) {
	assert.Nil(t, RolesOf(nil))
}

func TestSessionClone_DoesNotAliasLists(t *testing.T) {
	orig := Session{
		Start:       MustParseClock("09:50"),
		End:         MustParseClock("10:30"),
		Title:       "Panel Discussion",
		Involvement: Panel{Moderator: "Tim Miller", Panelists: []string{"Richard Goh"}},
	}
	cp := orig.Clone()
	cp.Involvement.(Panel).Panelists[0] = "changed"

	assert.Equal(t, "Richard Goh", orig.Involvement.(Panel).Panelists[0])
}

func TestSectionClone_Independent(t *testing.T) {
	sec := ScheduleSection{
		Date:    "17 October 2024 (Thursday)",
		Feature: "The Future",
		Sessions: []Session{
			{Start: MustParseClock("09:00"), End: MustParseClock("09:45"), Title: "Keynote"},
		},
	}
	cp := sec.Clone()
	cp.Sessions[0].Title = "changed"

	assert.Equal(t, "Keynote", sec.Sessions[0].Title)
	assert.Equal(t, 45, sec.Sessions[0].Minutes())
}

func TestRole_Label(t *testing.T) {
	assert.Equal(t, "Speaker: Jane Doe", Role{Name: "speaker", Values: []string{"Jane Doe"}}.Label())
	assert.Equal(t, "Panelists: A, B, C", Role{Name: "panelists", Values: []string{"A", "B", "C"}}.Label())
	assert.Equal(t, "Organizations: Dropee", Role{Name: "organizations", Values: []string{"Dropee"}}.Label())
}
