package formatter

import (
	"testing"

	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatSchedule_ListsSectionsAndMarksChosen(t *testing.T) {
	chosen := map[string]bool{"Keynote": true}
	out := stripANSI(FormatSchedule(testutil.SampleSchedule(), func(title string) bool { return chosen[title] }))

	assert.Contains(t, out, "THE FUTURE")
	assert.Contains(t, out, "STARTUP VILLAGE")
	assert.Contains(t, out, testutil.ConferenceDate)
	assert.Contains(t, out, "✓  09:00-09:45")
	assert.Contains(t, out, "Fireside Chat")
	assert.Contains(t, out, "FutureLab")
}

func TestFormatSchedule_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatSchedule(nil, nil)), "No sessions")
}

func TestFormatSessionDetail(t *testing.T) {
	s := testutil.NewTestSession("Panel Discussion", "09:50", "10:30",
		testutil.WithDescription("The Impact of AI Across Industries"),
		testutil.WithPanel("Tim Miller", "Richard Goh"),
		testutil.WithFeature(testutil.FeatureFuture))

	out := stripANSI(FormatSessionDetail(s))
	assert.Contains(t, out, "Panel Discussion")
	assert.Contains(t, out, "09:50-10:30")
	assert.Contains(t, out, "The Future")
	assert.Contains(t, out, "40m")
	assert.Contains(t, out, "The Impact of AI Across Industries")
	assert.Contains(t, out, "Moderator: Tim Miller")
	assert.Contains(t, out, "Panelists: Richard Goh")
}

func TestFormatSessionDetail_NoParticipants(t *testing.T) {
	out := stripANSI(FormatSessionDetail(domain.Session{
		Title: "Lunch", Start: domain.MustParseClock("12:00"), End: domain.MustParseClock("13:00"),
	}))
	assert.Contains(t, out, "Lunch")
	assert.Contains(t, out, "1h")
	assert.NotContains(t, out, "Speaker")
}
