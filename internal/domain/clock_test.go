package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want Clock
	}{
		{"00:00", 0},
		{"08:00", 480},
		{"09:45", 585},
		{"18:00", 1080},
		{"23:59", 1439},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		require.NoError(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
		assert.Equal(t, tc.in, got.String())
	}
}

func TestParseClock_Malformed(t *testing.T) {
	cases := []string{"", "9:00", "0900", "09-00", "09:0", "ab:cd", "24:00", "12:60", " 9:00", "09:00 "}
	for _, in := range cases {
		_, err := ParseClock(in)
		assert.Error(t, err, "should reject %q", in)
	}
}

func TestClock_Components(t *testing.T) {
	c := MustParseClock("14:05")
	assert.Equal(t, 14, c.Hour())
	assert.Equal(t, 5, c.Minute())
}

func TestMustParseClock_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParseClock("nope") })
}
