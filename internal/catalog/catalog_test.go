package catalog

import (
	"testing"

	"github.com/alexanderramin/confplan/internal/domain"
	"github.com/alexanderramin/confplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_MatchesSampleSchedule(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, testutil.SampleSchedule(), c.ListSections())
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 11, c.SessionCount())
	assert.Equal(t, []string{testutil.FeatureFuture, testutil.FeatureStartup}, c.Features())
}

func TestCatalog_ListSectionsReturnsCopies(t *testing.T) {
	c := New(testutil.SampleSchedule())

	first := c.ListSections()
	first[0].Sessions[0].Title = "mutated"
	first[0].Sessions[1].Involvement.(domain.Panel).Panelists[0] = "mutated"

	again := c.ListSections()
	assert.Equal(t, "Keynote", again[0].Sessions[0].Title)
	assert.Equal(t, "Richard Goh", again[0].Sessions[1].Involvement.(domain.Panel).Panelists[0])
}

func TestCatalog_NewCopiesInput(t *testing.T) {
	sections := testutil.SampleSchedule()
	c := New(sections)
	sections[0].Sessions[0].Title = "mutated"

	assert.Equal(t, "Keynote", c.ListSections()[0].Sessions[0].Title)
}

func TestCatalog_Find(t *testing.T) {
	c := New(testutil.SampleSchedule())

	t.Run("scoped to feature", func(t *testing.T) {
		matches := c.Find(testutil.FeatureStartup, "Panel Discussion")
		require.Len(t, matches, 1)
		assert.Equal(t, testutil.FeatureStartup, matches[0].Section.Feature)
		assert.Equal(t, testutil.ConferenceDate, matches[0].Section.Date)
		assert.Equal(t, domain.MustParseClock("11:40"), matches[0].Session.Start)
		assert.Empty(t, matches[0].Section.Sessions)
	})

	t.Run("all features", func(t *testing.T) {
		matches := c.Find("", "Panel Discussion")
		require.Len(t, matches, 2)
		assert.Equal(t, testutil.FeatureFuture, matches[0].Section.Feature)
		assert.Equal(t, testutil.FeatureStartup, matches[1].Section.Feature)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, c.Find(testutil.FeatureFuture, "Fireside Chat"))
		assert.Empty(t, c.Find("Nope", "Keynote"))
	})
}

func TestCatalog_SectionsFor(t *testing.T) {
	c := New(testutil.SampleSchedule())

	got := c.SectionsFor(testutil.FeatureFuture)
	require.Len(t, got, 1)
	assert.Len(t, got[0].Sessions, 6)
	assert.Empty(t, c.SectionsFor("Nope"))
}

func TestCatalog_Empty(t *testing.T) {
	c := New(nil)
	assert.Empty(t, c.ListSections())
	assert.Empty(t, c.Features())
	assert.Zero(t, c.SessionCount())
}
