package pipegrid

import (
	"errors"
	"fmt"
	"sort"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = errors.New("pipegrid: no start cell 'S' in grid")
	// ErrMultipleStarts indicates the grid has more than one start cell.
	ErrMultipleStarts = errors.New("pipegrid: more than one start cell 'S' in grid")
)

// StartSymbol marks the distinguished start cell of the loop.
const StartSymbol = 'S'

// Point is a cell coordinate. It has no identity beyond its coordinates.
type Point struct {
	Row, Col int
}

// String renders the point as "row,col".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

// North returns the point one row up.
func (p Point) North() Point { return Point{p.Row - 1, p.Col} }

// South returns the point one row down.
func (p Point) South() Point { return Point{p.Row + 1, p.Col} }

// East returns the point one column right.
func (p Point) East() Point { return Point{p.Row, p.Col + 1} }

// West returns the point one column left.
func (p Point) West() Point { return Point{p.Row, p.Col - 1} }

// Direction is one of the four compass directions a pipe can open to.
type Direction uint8

const (
	North Direction = 1 << iota
	South
	East
	West
)

// Step returns the neighbour of p in direction d. d must be exactly one of
// North, South, East or West; zero or a combination of bits is not a
// direction and Step returns p unchanged. Openings only yields single
// directions, so Parse never produces a cell listing itself.
func (d Direction) Step(p Point) Point {
	switch d {
	case North:
		return p.North()
	case South:
		return p.South()
	case East:
		return p.East()
	case West:
		return p.West()
	}
	return p
}

// AdjacencyMap maps every cell to the cells it claims to connect to.
// The base map built by Parse may contain off-grid candidates; the map
// returned by Bidirectional never does.
type AdjacencyMap map[Point][]Point

// Neighbors returns the candidates of p (nil when p is not a key).
func (m AdjacencyMap) Neighbors(p Point) []Point {
	return m[p]
}

// Connected reports whether b is among a's candidates.
// On a mutual map this is exactly "a and b are joined by a pipe".
// Complexity: O(1) (≤ 4 candidates).
func (m AdjacencyMap) Connected(a, b Point) bool {
	for _, c := range m[a] {
		if c == b {
			return true
		}
	}
	return false
}

// Has reports whether p is a cell of the map.
func (m AdjacencyMap) Has(p Point) bool {
	_, ok := m[p]
	return ok
}

// Bounds returns the number of rows and columns covered by the keys,
// assuming the grid is anchored at (0,0).
// Complexity: O(W×H).
func (m AdjacencyMap) Bounds() (rows, cols int) {
	for p := range m {
		if p.Row+1 > rows {
			rows = p.Row + 1
		}
		if p.Col+1 > cols {
			cols = p.Col + 1
		}
	}
	return rows, cols
}

// Points returns all cells in row-major order.
// Complexity: O(W×H·log(W×H)).
func (m AdjacencyMap) Points() []Point {
	pts := make([]Point, 0, len(m))
	for p := range m {
		pts = append(pts, p)
	}
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].Row != pts[j].Row {
			return pts[i].Row < pts[j].Row
		}
		return pts[i].Col < pts[j].Col
	})
	return pts
}

// Grid is a parsed pipe diagram. It is immutable once built.
// Symbols[r][c] holds the raw rune of cell (r,c); Adjacency is the
// base (optimistic) map built from those symbols.
type Grid struct {
	Rows, Cols int
	Start      Point
	Symbols    [][]rune
	Adjacency  AdjacencyMap
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Rows && p.Col >= 0 && p.Col < g.Cols
}

// Symbol returns the rune at p, or 0 when p is outside the grid.
func (g *Grid) Symbol(p Point) rune {
	if !g.InBounds(p) {
		return 0
	}
	return g.Symbols[p.Row][p.Col]
}

// Mutual returns the bidirectional map of g's adjacency.
// Complexity: O(W×H).
func (g *Grid) Mutual() AdjacencyMap {
	return Bidirectional(g.Adjacency)
}
