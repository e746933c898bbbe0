package loop

import (
	"errors"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

var (
	// ErrStartNotFound indicates the start point is not a cell of the map.
	ErrStartNotFound = errors.New("loop: start point not found")

	// ErrNoLoop indicates no path from the start ever closed, e.g. the
	// start cell has fewer than two mutual neighbours.
	ErrNoLoop = errors.New("loop: no loop through start")
)

// edge is an undirected pair of cells, stored with the smaller point first.
type edge [2]pipegrid.Point

func makeEdge(a, b pipegrid.Point) edge {
	if b.Row < a.Row || (b.Row == a.Row && b.Col < a.Col) {
		a, b = b, a
	}
	return edge{a, b}
}

// Result is a closed loop through the start cell.
//   - Path: the cells in walk order, starting at the start cell and ending
//     with the closure point (which therefore appears twice).
//   - ClosureIndex: index of the first occurrence of the closure point.
//   - Farthest: steps along the loop to the point farthest from the start.
type Result struct {
	Path         []pipegrid.Point
	ClosureIndex int
	Farthest     int

	index map[pipegrid.Point]int
	edges map[edge]struct{}
}

func newResult(p *path) *Result {
	n := len(p.points)
	closure := p.seen[p.points[n-1]]
	r := &Result{
		Path:         p.points,
		ClosureIndex: closure,
		Farthest:     (n-closure)/2 + closure,
		index:        make(map[pipegrid.Point]int, n-1),
		edges:        make(map[edge]struct{}, n-1),
	}
	for i, pt := range p.points[:n-1] {
		r.index[pt] = i
		r.edges[makeEdge(pt, p.points[i+1])] = struct{}{}
	}
	return r
}

// Cells returns the distinct cells of the loop in walk order.
func (r *Result) Cells() []pipegrid.Point {
	return r.Path[:len(r.Path)-1]
}

// Len returns the number of edges walked, which for a loop closing at
// the start is its perimeter.
func (r *Result) Len() int {
	return len(r.Path) - 1
}

// Contains reports whether p is a cell of the loop.
func (r *Result) Contains(p pipegrid.Point) bool {
	_, ok := r.index[p]
	return ok
}

// Linked reports whether a and b are consecutive along the loop.
func (r *Result) Linked(a, b pipegrid.Point) bool {
	_, ok := r.edges[makeEdge(a, b)]
	return ok
}

// path is an in-progress walk. seen maps each point to its first index.
type path struct {
	points []pipegrid.Point
	seen   map[pipegrid.Point]int
}

func (p *path) tail() pipegrid.Point {
	return p.points[len(p.points)-1]
}

// prev returns the point just before the tail, if any.
func (p *path) prev() (pipegrid.Point, bool) {
	if len(p.points) < 2 {
		return pipegrid.Point{}, false
	}
	return p.points[len(p.points)-2], true
}

// extend appends pt and reports whether it closed the path.
func (p *path) extend(pt pipegrid.Point) bool {
	p.points = append(p.points, pt)
	if _, ok := p.seen[pt]; ok {
		return true
	}
	p.seen[pt] = len(p.points) - 1
	return false
}

func (p *path) clone() *path {
	q := &path{
		points: make([]pipegrid.Point, len(p.points), len(p.points)+1),
		seen:   make(map[pipegrid.Point]int, len(p.seen)+1),
	}
	copy(q.points, p.points)
	for k, v := range p.seen {
		q.seen[k] = v
	}
	return q
}
