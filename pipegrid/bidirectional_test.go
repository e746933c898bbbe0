package pipegrid_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// TestBidirectional_ResolvesStart verifies that 'S' keeps only its real connections.
func TestBidirectional_ResolvesStart(t *testing.T) {
	g, err := pipegrid.Parse(square)
	require.NoError(t, err)

	m := pipegrid.Bidirectional(g.Adjacency)
	assert.ElementsMatch(t,
		[]pipegrid.Point{{Row: 2, Col: 1}, {Row: 1, Col: 2}},
		m[g.Start],
	)
	// Base map is left untouched.
	assert.Len(t, g.Adjacency[g.Start], 4)
}

// TestBidirectional_Symmetric checks b ∈ m[a] ⇔ a ∈ m[b] on a cluttered grid.
func TestBidirectional_Symmetric(t *testing.T) {
	g, err := pipegrid.Parse(complexLoop)
	require.NoError(t, err)

	m := g.Mutual()
	for a, nbrs := range m {
		for _, b := range nbrs {
			assert.Truef(t, m.Connected(b, a), "edge %v→%v has no reverse", a, b)
			assert.Truef(t, m.Has(b), "edge %v→%v leaves the grid", a, b)
		}
	}
}

// TestBidirectional_Idempotent checks that filtering a mutual map changes nothing.
func TestBidirectional_Idempotent(t *testing.T) {
	for _, input := range []string{square, complexLoop, "-L|F7\n7S-7|\nL|7||\n-L-J|\nL|-JF\n"} {
		g, err := pipegrid.Parse(input)
		require.NoError(t, err)

		once := pipegrid.Bidirectional(g.Adjacency)
		twice := pipegrid.Bidirectional(once)
		if diff := cmp.Diff(once, twice); diff != "" {
			t.Errorf("Bidirectional not idempotent (-once +twice):\n%s", diff)
		}
	}
}

// TestBidirectional_DeadEnds checks that clutter keeps zero or one neighbour without error.
func TestBidirectional_DeadEnds(t *testing.T) {
	g, err := pipegrid.Parse("S-.\n...\n")
	require.NoError(t, err)

	m := g.Mutual()
	assert.Equal(t, []pipegrid.Point{{Row: 0, Col: 1}}, m[g.Start])
	assert.Equal(t, []pipegrid.Point{{Row: 0, Col: 0}}, m[pipegrid.Point{Row: 0, Col: 1}])
	assert.Empty(t, m[pipegrid.Point{Row: 0, Col: 2}])
}

// TestAdjacencyMap_BoundsAndPoints checks the derived dimensions and ordering.
func TestAdjacencyMap_BoundsAndPoints(t *testing.T) {
	g, err := pipegrid.Parse("S7\nLJ\n.-\n")
	require.NoError(t, err)

	rows, cols := g.Mutual().Bounds()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 2, cols)

	pts := g.Adjacency.Points()
	require.Len(t, pts, 6)
	assert.Equal(t, pipegrid.Point{Row: 0, Col: 0}, pts[0])
	assert.Equal(t, pipegrid.Point{Row: 0, Col: 1}, pts[1])
	assert.Equal(t, pipegrid.Point{Row: 2, Col: 1}, pts[5])
	assert.Equal(t, "2,1", pts[5].String())
}

const complexLoop = `7-F7-
.FJ|7
SJLL7
|F--J
LJ.LJ
`
