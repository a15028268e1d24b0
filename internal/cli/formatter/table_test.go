package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := stripANSI(RenderTable(
		[]string{"TIME", "SESSION"},
		[][]string{
			{"09:00-09:45", "Keynote"},
			{"09:50-10:30", "Panel Discussion"},
		},
	))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[0], "TIME"))
	assert.Contains(t, lines[1], "─")
	// the SESSION column starts at the same offset in every row
	col := strings.Index(lines[0], "SESSION")
	assert.Equal(t, col, strings.Index(lines[2], "Keynote"))
	assert.Equal(t, col, strings.Index(lines[3], "Panel Discussion"))
}

func TestTable_MaxWidthTruncates(t *testing.T) {
	out := stripANSI(Table{
		Headers:   []string{"SESSION"},
		Rows:      [][]string{{"Sustainable Development Through Green Infrastructure"}},
		MaxWidths: []int{12},
	}.Render())
	assert.NotContains(t, out, "Infrastructure")
	assert.Contains(t, out, "…")
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Equal(t, "", RenderTable(nil, [][]string{{"x"}}))
}
