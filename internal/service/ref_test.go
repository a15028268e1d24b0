package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSessionRef(t *testing.T) {
	cases := []struct {
		in   string
		want SessionRef
	}{
		{"The Future/Keynote", SessionRef{Feature: "The Future", Title: "Keynote"}},
		{" Startup Village / Panel Discussion ", SessionRef{Feature: "Startup Village", Title: "Panel Discussion"}},
		{"Keynote", SessionRef{Title: "Keynote"}},
		{"Track/A/B testing", SessionRef{Feature: "Track", Title: "A/B testing"}},
		{"/Keynote", SessionRef{Title: "Keynote"}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseSessionRef(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSessionRef_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "The Future/", "The Future/  "} {
		_, err := ParseSessionRef(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestSessionRef_String(t *testing.T) {
	assert.Equal(t, "The Future/Keynote", SessionRef{Feature: "The Future", Title: "Keynote"}.String())
	assert.Equal(t, "Keynote", SessionRef{Title: "Keynote"}.String())
}
