package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/render"
	"github.com/katalvlaran/pipeloop/solver"
)

const square = `.....
.S-7.
.|.|.
.L-J.
.....
`

// TestRender_Plain draws the square with class marks.
func TestRender_Plain(t *testing.T) {
	rep, err := solver.Solve(square)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, rep.Mutual, rep.Classes))

	want := "OOOOO\n" +
		"O┏━┓O\n" +
		"O┃I┃O\n" +
		"O┗━┛O\n" +
		"OOOOO\n"
	assert.Equal(t, want, buf.String())
}

// TestRender_Color keeps glyphs and paints loop and exterior backgrounds,
// even when the color package would otherwise disable colors.
func TestRender_Color(t *testing.T) {
	rep, err := solver.Solve(square)
	require.NoError(t, err)

	saved := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = saved })

	var buf bytes.Buffer
	require.NoError(t, render.Render(&buf, rep.Mutual, rep.Classes, render.WithColor(true)))

	red, green := color.New(color.BgRed), color.New(color.BgGreen)
	red.EnableColor()
	green.EnableColor()
	out, pipe := green.Sprint(" "), func(g string) string { return red.Sprint(g) }

	want := strings.Repeat(out, 5) + "\n" +
		out + pipe("┏") + pipe("━") + pipe("┓") + out + "\n" +
		out + pipe("┃") + " " + pipe("┃") + out + "\n" +
		out + pipe("┗") + pipe("━") + pipe("┛") + out + "\n" +
		strings.Repeat(out, 5) + "\n"
	assert.Equal(t, want, buf.String())
	assert.Contains(t, want, "\x1b[41m┏\x1b[0m")
}

// TestGlyph covers each pipe shape and a cell with no pipe.
func TestGlyph(t *testing.T) {
	g, err := pipegrid.Parse("S-7\n|.|\nL-J\n")
	require.NoError(t, err)
	m := g.Mutual()

	cases := map[pipegrid.Point]rune{
		{Row: 0, Col: 0}: '┏',
		{Row: 0, Col: 1}: '━',
		{Row: 0, Col: 2}: '┓',
		{Row: 1, Col: 0}: '┃',
		{Row: 1, Col: 1}: ' ',
		{Row: 2, Col: 0}: '┗',
		{Row: 2, Col: 2}: '┛',
	}
	for p, want := range cases {
		assert.Equalf(t, want, render.Glyph(m, p), "glyph at %v", p)
	}
}

// TestRender_NilClassification rejects a missing classification.
func TestRender_NilClassification(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, render.Render(&buf, pipegrid.AdjacencyMap{}, nil), render.ErrNilClassification)
}
