// Package area combines a loop and a flood fill into the final partition
// of a pipe grid: loop cells, exterior cells and enclosed cells.
//
// Enclosed = all cells − loop cells − exterior cells. The flood treats
// every mutual pipe edge as a wall, clutter included, so a closed clutter
// ring also shields whatever it surrounds.
package area

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrNilLoop is returned when Classify is given no loop.
var ErrNilLoop = errors.New("area: loop is nil")

// Class is the category of a single cell.
type Class int

const (
	// Enclosed cells are neither on the loop nor reachable from outside.
	Enclosed Class = iota
	// Loop cells belong to the main loop.
	Loop
	// Exterior cells are reachable from outside and not on the loop.
	Exterior
)

// String returns the lower-case class name.
func (c Class) String() string {
	switch c {
	case Loop:
		return "loop"
	case Exterior:
		return "exterior"
	default:
		return "enclosed"
	}
}

// Classification partitions every cell of a grid into three disjoint sets.
type Classification struct {
	Loop     mapset.Set[pipegrid.Point]
	Exterior mapset.Set[pipegrid.Point]
	Enclosed mapset.Set[pipegrid.Point]
}

// Classify partitions the cells of m. Exterior cells that are on the loop
// are reported as Loop only.
// Complexity: O(W×H).
func Classify(m pipegrid.AdjacencyMap, l *loop.Result, exterior mapset.Set[pipegrid.Point]) (*Classification, error) {
	if l == nil {
		return nil, ErrNilLoop
	}
	c := &Classification{
		Loop:     mapset.New[pipegrid.Point](),
		Exterior: mapset.New[pipegrid.Point](),
		Enclosed: mapset.New[pipegrid.Point](),
	}
	for p := range m {
		switch {
		case l.Contains(p):
			c.Loop.Put(p)
		case exterior.Has(p):
			c.Exterior.Put(p)
		default:
			c.Enclosed.Put(p)
		}
	}
	return c, nil
}

// Count returns the number of enclosed cells.
func (c *Classification) Count() int {
	return c.Enclosed.Size()
}

// Of returns the class of p. Points outside the grid report Exterior.
func (c *Classification) Of(p pipegrid.Point) Class {
	switch {
	case c.Loop.Has(p):
		return Loop
	case c.Enclosed.Has(p):
		return Enclosed
	default:
		return Exterior
	}
}
