package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGrid_Has61Slots(t *testing.T) {
	g := DefaultGrid()

	require.Equal(t, 61, g.Len())
	assert.Equal(t, "08:00", g.At(0).String())
	assert.Equal(t, "08:10", g.At(1).String())
	assert.Equal(t, "18:00", g.At(g.Len()-1).String())
	assert.Equal(t, 10, g.Step())
}

func TestDefaultGrid_Deterministic(t *testing.T) {
	assert.Equal(t, DefaultGrid().Slots(), DefaultGrid().Slots())
}

func TestGrid_SlotsReturnsCopy(t *testing.T) {
	g := DefaultGrid()
	slots := g.Slots()
	slots[0] = clk("23:00")

	assert.Equal(t, "08:00", g.At(0).String())
}

func TestNewGrid_Invalid(t *testing.T) {
	_, err := NewGrid(clk("10:00"), clk("09:00"), 10)
	assert.Error(t, err)

	_, err = NewGrid(clk("08:00"), clk("09:00"), 0)
	assert.Error(t, err)
}

func TestNewGrid_EndNotOnStep(t *testing.T) {
	g, err := NewGrid(clk("08:00"), clk("08:25"), 10)
	require.NoError(t, err)

	assert.Equal(t, []string{"08:00", "08:10", "08:20"}, []string{
		g.At(0).String(), g.At(1).String(), g.At(2).String(),
	})
	assert.Equal(t, 3, g.Len())
}
