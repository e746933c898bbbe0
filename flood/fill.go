package flood

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// corner identifies a joint on the lattice.
type corner struct {
	row, col int
}

// walker encapsulates mutable flood state.
type walker struct {
	m          pipegrid.AdjacencyMap
	rows, cols int
	opts       Options
	queue      []Joint
	visited    mapset.Set[corner]
	res        *Result
}

// Fill floods the joint lattice of m from the outer corner and returns the
// cells reachable from outside the grid. m is expected to be a mutual map
// covering a rectangle anchored at (0,0); it is not modified.
// Returns ErrEmptyMap, or a wrapped OnVisit error.
func Fill(m pipegrid.AdjacencyMap, opts ...Option) (*Result, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMap
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Wall == nil {
		o.Wall = m.Connected
	}

	rows, cols := m.Bounds()
	w := &walker{
		m:       m,
		rows:    rows,
		cols:    cols,
		opts:    o,
		queue:   make([]Joint, 0, rows+cols+2),
		visited: mapset.New[corner](),
		res: &Result{
			Order:    make([]Joint, 0, (rows+1)*(cols+1)),
			Exterior: mapset.New[pipegrid.Point](),
		},
	}

	w.enqueue(w.jointAt(0, 0))
	return w.res, w.loop()
}

// jointAt builds the joint at corner (r, c), leaving off-grid quadrants invalid.
func (w *walker) jointAt(r, c int) Joint {
	return Joint{
		Row: r,
		Col: c,
		NW:  w.quadrant(r-1, c-1),
		NE:  w.quadrant(r-1, c),
		SW:  w.quadrant(r, c-1),
		SE:  w.quadrant(r, c),
	}
}

func (w *walker) quadrant(r, c int) Quadrant {
	p := pipegrid.Point{Row: r, Col: c}
	return Quadrant{Point: p, Valid: w.m.Has(p)}
}

// enqueue marks j visited and adds it to the queue.
func (w *walker) enqueue(j Joint) {
	w.visited.Put(corner{j.Row, j.Col})
	w.queue = append(w.queue, j)
}

// loop processes the queue until it is empty or a hook fails.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		j := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(j); err != nil {
			return err
		}
		w.enqueueNeighbors(j)
	}
	return nil
}

// visit records j in Order, marks its cells exterior and calls OnVisit.
func (w *walker) visit(j Joint) error {
	w.res.Order = append(w.res.Order, j)
	for _, p := range j.Cells() {
		w.res.Exterior.Put(p)
	}
	if err := w.opts.OnVisit(j); err != nil {
		return fmt.Errorf("flood: OnVisit error at joint %d,%d: %w", j.Row, j.Col, err)
	}
	return nil
}

// enqueueNeighbors enqueues every unseen orthogonal neighbour of j whose
// straddling cell pair is not a wall.
func (w *walker) enqueueNeighbors(j Joint) {
	steps := [...]struct {
		dr, dc int
		a, b   Quadrant
	}{
		{-1, 0, j.NW, j.NE}, // north
		{1, 0, j.SW, j.SE},  // south
		{0, 1, j.NE, j.SE},  // east
		{0, -1, j.NW, j.SW}, // west
	}
	for _, s := range steps {
		r, c := j.Row+s.dr, j.Col+s.dc
		if r < 0 || r > w.rows || c < 0 || c > w.cols {
			continue
		}
		if w.visited.Has(corner{r, c}) || !w.passable(s.a, s.b) {
			continue
		}
		w.enqueue(w.jointAt(r, c))
	}
}

// passable reports whether a step between quadrants a and b is open.
func (w *walker) passable(a, b Quadrant) bool {
	if !a.Valid || !b.Valid {
		return true
	}
	return !w.opts.Wall(a.Point, b.Point)
}
