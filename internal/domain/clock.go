package domain

import "fmt"

// Clock is a wall-clock time of day expressed as minutes since midnight.
type Clock int

// ParseClock parses a 24-hour "HH:MM" string. Both parts must be exactly two
// digits; hours run 00-23 and minutes 00-59.
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("clock %q: expected HH:MM", s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM {
		return 0, fmt.Errorf("clock %q: expected HH:MM", s)
	}
	if h > 23 {
		return 0, fmt.Errorf("clock %q: hour out of range", s)
	}
	if m > 59 {
		return 0, fmt.Errorf("clock %q: minute out of range", s)
	}
	return Clock(h*60 + m), nil
}

// MustParseClock is ParseClock for literals known to be valid. It panics on error.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hour returns the hour component.
func (c Clock) Hour() int { return int(c) / 60 }

// Minute returns the minute component.
func (c Clock) Minute() int { return int(c) % 60 }

// String renders the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}
