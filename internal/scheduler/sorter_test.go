package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func dated(date, feature, title, start, end string) Dated {
	s := sess(title, start, end)
	s.Feature = feature
	return Dated{Date: date, Session: s}
}

func titles(items []Dated) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Session.Title
	}
	return out
}

func TestChronologicalSort_StartTime(t *testing.T) {
	items := []Dated{
		dated("D1", "A", "Late", "11:00", "11:30"),
		dated("D1", "A", "Early", "09:00", "09:45"),
		dated("D1", "A", "Middle", "10:00", "10:30"),
	}

	ChronologicalSort(items)

	assert.Equal(t, []string{"Early", "Middle", "Late"}, titles(items))
}

func TestChronologicalSort_DateOrderIsFirstSeen(t *testing.T) {
	items := []Dated{
		dated("18 October", "A", "Day2 early", "08:00", "09:00"),
		dated("17 October", "A", "Day1 late", "15:00", "16:00"),
		dated("18 October", "A", "Day2 late", "15:00", "16:00"),
	}

	ChronologicalSort(items)

	assert.Equal(t, []string{"Day2 early", "Day2 late", "Day1 late"}, titles(items),
		"date labels are not parsed; the first label seen ranks first")
}

func TestChronologicalSort_EndThenFeatureThenTitle(t *testing.T) {
	items := []Dated{
		dated("D1", "Startup Village", "B", "09:00", "10:00"),
		dated("D1", "The Future", "A", "09:00", "09:45"),
		dated("D1", "Startup Village", "A", "09:00", "10:00"),
		dated("D1", "Expo", "Z", "09:00", "10:00"),
	}

	ChronologicalSort(items)

	assert.Equal(t, []string{"A", "Z", "A", "B"}, titles(items))
	assert.Equal(t, "The Future", items[0].Session.Feature, "shorter session first")
	assert.Equal(t, "Expo", items[1].Session.Feature)
}

func TestChronologicalSort_StableForDuplicates(t *testing.T) {
	first := dated("D1", "A", "Same", "09:00", "10:00")
	second := dated("D1", "A", "Same", "09:00", "10:00")
	second.Session.Description = "second"
	items := []Dated{first, second}

	ChronologicalSort(items)

	assert.Empty(t, items[0].Session.Description)
	assert.Equal(t, "second", items[1].Session.Description)
}
