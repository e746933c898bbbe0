package flood

import (
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrEmptyMap is returned when the adjacency map has no cells.
	ErrEmptyMap = errors.New("flood: adjacency map is empty")
)

// Quadrant is an optional cell reference; Valid is false when the
// quadrant lies outside the grid.
type Quadrant struct {
	Point pipegrid.Point
	Valid bool
}

// Joint is the corner shared by up to four cells. Row and Col locate the
// corner at the top-left of cell (Row, Col); the quadrants are the cells
// around it. Joints are transient values, compared by value.
type Joint struct {
	Row, Col       int
	NW, NE, SW, SE Quadrant
}

// Cells returns the present quadrants of j.
func (j Joint) Cells() []pipegrid.Point {
	out := make([]pipegrid.Point, 0, 4)
	for _, q := range [...]Quadrant{j.NW, j.NE, j.SW, j.SE} {
		if q.Valid {
			out = append(out, q.Point)
		}
	}
	return out
}

// WallFunc reports whether the boundary between adjacent cells a and b
// is closed.
type WallFunc func(a, b pipegrid.Point) bool

// Option configures Fill via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize Fill.
type Options struct {
	// Wall decides whether two straddling cells block a step.
	// nil means "mutually connected in the map being filled".
	Wall WallFunc

	// OnVisit is called for every joint as it is dequeued. If it returns
	// an error, Fill aborts and propagates that error.
	OnVisit func(j Joint) error
}

// DefaultOptions returns Options with the mutual-connection wall and a
// no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Wall:    nil,
		OnVisit: func(Joint) error { return nil },
	}
}

// WithWall replaces the wall predicate.
func WithWall(fn WallFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Wall = fn
		}
	}
}

// WithOnVisit registers a callback run on every visited joint.
func WithOnVisit(fn func(j Joint) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a flood fill:
//   - Order: joints in visit sequence, starting with the outer corner.
//   - Exterior: every cell in a quadrant of a visited joint.
type Result struct {
	Order    []Joint
	Exterior mapset.Set[pipegrid.Point]
}

// Reached reports whether p was classified as reachable from outside.
func (r *Result) Reached(p pipegrid.Point) bool {
	return r.Exterior.Has(p)
}
