package pipegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// openings lists, per pipe symbol, the directions it connects to.
// Order is significant: it fixes candidate order and therefore the
// discovery order of loops through the start cell.
var openings = map[rune][]Direction{
	'|':         {North, South},
	'-':         {East, West},
	'L':         {North, East},
	'J':         {North, West},
	'7':         {South, West},
	'F':         {South, East},
	StartSymbol: {North, South, West, East},
}

// Openings returns the directions symbol r connects to.
// Unknown symbols (including '.') connect to nothing.
func Openings(r rune) []Direction {
	return openings[r]
}

// Parse builds a Grid from text. Rows are separated by '\n' (a trailing
// '\r' is dropped); the first blank line or the end of text terminates
// the grid and anything after it is ignored.
//
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNoStart or ErrMultipleStarts.
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	return ParseReader(strings.NewReader(text))
}

// ParseReader is Parse over an io.Reader.
func ParseReader(r io.Reader) (*Grid, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			break // sentinel, not an error
		}
		rows = append(rows, []rune(line))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pipegrid: reading input: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(rows[0])
	for i, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, i, len(row), w)
		}
	}

	g := &Grid{
		Rows:      len(rows),
		Cols:      w,
		Symbols:   rows,
		Adjacency: make(AdjacencyMap, len(rows)*w),
	}
	starts := 0
	for r, row := range rows {
		for c, sym := range row {
			p := Point{Row: r, Col: c}
			if sym == StartSymbol {
				g.Start = p
				starts++
			}
			dirs := Openings(sym)
			cands := make([]Point, 0, len(dirs))
			for _, d := range dirs {
				cands = append(cands, d.Step(p))
			}
			g.Adjacency[p] = cands
		}
	}

	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	return g, nil
}

// Bidirectional returns a new map in which an edge (p, c) survives only
// if c is a candidate of p and p is a candidate of c, both looked up in
// m itself. Off-grid candidates never survive because m has no entry for
// them. The input is not modified; the result is symmetric, and applying
// Bidirectional to it again yields an identical map.
// Complexity: O(W×H).
func Bidirectional(m AdjacencyMap) AdjacencyMap {
	out := make(AdjacencyMap, len(m))
	for p, cands := range m {
		kept := make([]Point, 0, len(cands))
		for _, c := range cands {
			if m.Connected(c, p) {
				kept = append(kept, c)
			}
		}
		out[p] = kept
	}
	return out
}
