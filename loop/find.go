package loop

import (
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// finder encapsulates the frontier of in-progress paths.
type finder struct {
	m      pipegrid.AdjacencyMap
	active []*path
	closed []*Result
}

// Find returns the first loop through start to close.
// m must be a mutual map (pipegrid.Bidirectional); it is not modified.
// Returns ErrStartNotFound or ErrNoLoop.
func Find(m pipegrid.AdjacencyMap, start pipegrid.Point) (*Result, error) {
	f, err := newFinder(m, start)
	if err != nil {
		return nil, err
	}
	for len(f.active) > 0 && len(f.closed) == 0 {
		f.step()
	}
	if len(f.closed) == 0 {
		return nil, ErrNoLoop
	}
	return f.closed[0], nil
}

// All expands the frontier until it is empty and returns every closed
// loop in discovery order. A well-formed start cell with two neighbours
// yields the same loop twice, walked in opposite directions.
// Returns ErrStartNotFound or ErrNoLoop.
func All(m pipegrid.AdjacencyMap, start pipegrid.Point) ([]*Result, error) {
	f, err := newFinder(m, start)
	if err != nil {
		return nil, err
	}
	for len(f.active) > 0 {
		f.step()
	}
	if len(f.closed) == 0 {
		return nil, ErrNoLoop
	}
	return f.closed, nil
}

func newFinder(m pipegrid.AdjacencyMap, start pipegrid.Point) (*finder, error) {
	if !m.Has(start) {
		return nil, ErrStartNotFound
	}
	seed := &path{
		points: []pipegrid.Point{start},
		seen:   map[pipegrid.Point]int{start: 0},
	}
	return &finder{m: m, active: []*path{seed}}, nil
}

// step advances every active path by one cell.
func (f *finder) step() {
	next := make([]*path, 0, len(f.active))
	for _, p := range f.active {
		cands := f.candidates(p)
		switch len(cands) {
		case 0:
			// dead end: the path is dropped
		case 1:
			next = f.route(next, p, cands[0])
		default:
			for _, c := range cands {
				next = f.route(next, p.clone(), c)
			}
		}
	}
	f.active = next
}

// route extends p by pt and files it as closed or still active.
func (f *finder) route(next []*path, p *path, pt pipegrid.Point) []*path {
	if p.extend(pt) {
		f.closed = append(f.closed, newResult(p))
		return next
	}
	return append(next, p)
}

// candidates returns the mutual neighbours of p's tail, minus the point
// the path just came from.
func (f *finder) candidates(p *path) []pipegrid.Point {
	prev, hasPrev := p.prev()
	nbrs := f.m.Neighbors(p.tail())
	out := make([]pipegrid.Point, 0, len(nbrs))
	for _, n := range nbrs {
		if hasPrev && n == prev {
			continue
		}
		out = append(out, n)
	}
	return out
}
