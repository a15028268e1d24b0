package scheduler

import (
	"fmt"

	"github.com/alexanderramin/confplan/internal/domain"
)

// Default timeline bounds: every 10 minutes from 08:00 through 18:00 inclusive.
const (
	DefaultGridStart = domain.Clock(8 * 60)
	DefaultGridEnd   = domain.Clock(18 * 60)
	DefaultGridStep  = 10
)

// Grid is the ordered set of time points at which itinerary occupancy is
// sampled for the timeline. A Grid is immutable once built.
type Grid struct {
	slots []domain.Clock
	step  int
}

// NewGrid returns every slot from start through end inclusive at step-minute
// intervals.
func NewGrid(start, end domain.Clock, step int) (Grid, error) {
	if step <= 0 {
		return Grid{}, fmt.Errorf("grid step must be positive, got %d", step)
	}
	if end < start {
		return Grid{}, fmt.Errorf("grid end %s is before start %s", end, start)
	}
	slots := make([]domain.Clock, 0, int(end-start)/step+1)
	for t := start; t <= end; t += domain.Clock(step) {
		slots = append(slots, t)
	}
	return Grid{slots: slots, step: step}, nil
}

// DefaultGrid returns the 61-slot 08:00..18:00 grid.
func DefaultGrid() Grid {
	g, err := NewGrid(DefaultGridStart, DefaultGridEnd, DefaultGridStep)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of slots.
func (g Grid) Len() int { return len(g.slots) }

// Step returns the spacing between slots in minutes.
func (g Grid) Step() int { return g.step }

// At returns the i-th slot.
func (g Grid) At(i int) domain.Clock { return g.slots[i] }

// Slots returns a copy of the slot sequence.
func (g Grid) Slots() []domain.Clock {
	out := make([]domain.Clock, len(g.slots))
	copy(out, g.slots)
	return out
}
