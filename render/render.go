// Package render draws a classified pipe grid as text, one rune per cell.
//
// Pipe cells are drawn with box-drawing glyphs derived from their mutual
// connections. In color mode every cell keeps its glyph and the class is
// shown as a background color (loop red, exterior green, enclosed plain);
// in plain mode loop cells keep their glyph, exterior cells print 'O' and
// enclosed cells 'I'.
package render

import (
	"bufio"
	"errors"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// ErrNilClassification is returned when Render has nothing to draw.
var ErrNilClassification = errors.New("render: classification is nil")

// Marks used in plain mode.
const (
	MarkExterior = 'O'
	MarkEnclosed = 'I'
)

// Option configures Render.
type Option func(*Options)

// Options holds rendering switches.
type Options struct {
	// Color enables background colors, ignoring color.NoColor.
	Color bool
}

// WithColor toggles background colors.
func WithColor(on bool) Option {
	return func(o *Options) { o.Color = on }
}

// Glyph returns the box-drawing rune for p's mutual connections in m,
// or ' ' when p is not a two-way pipe bend or straight.
func Glyph(m pipegrid.AdjacencyMap, p pipegrid.Point) rune {
	n, s := m.Connected(p, p.North()), m.Connected(p, p.South())
	e, w := m.Connected(p, p.East()), m.Connected(p, p.West())
	switch {
	case n && s:
		return '┃'
	case e && w:
		return '━'
	case n && e:
		return '┗'
	case n && w:
		return '┛'
	case s && w:
		return '┓'
	case s && e:
		return '┏'
	}
	return ' '
}

// Render writes the cells of m to w in row-major order, one line per row.
func Render(w io.Writer, m pipegrid.AdjacencyMap, c *area.Classification, opts ...Option) error {
	if c == nil {
		return ErrNilClassification
	}
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	paint := plain
	if o.Color {
		paint = colored()
	}

	bw := bufio.NewWriter(w)
	row := 0
	for i, p := range m.Points() {
		if i > 0 && p.Row != row {
			bw.WriteByte('\n')
		}
		row = p.Row
		paint(bw, c.Of(p), Glyph(m, p))
	}
	if len(m) > 0 {
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

type painter func(bw *bufio.Writer, class area.Class, g rune)

func colored() painter {
	loop := color.New(color.BgRed)
	outside := color.New(color.BgGreen)
	loop.EnableColor()
	outside.EnableColor()
	return func(bw *bufio.Writer, class area.Class, g rune) {
		switch class {
		case area.Loop:
			bw.WriteString(loop.Sprint(string(g)))
		case area.Exterior:
			bw.WriteString(outside.Sprint(string(g)))
		default:
			bw.WriteRune(g)
		}
	}
}

func plain(bw *bufio.Writer, class area.Class, g rune) {
	switch class {
	case area.Loop:
		bw.WriteRune(g)
	case area.Exterior:
		bw.WriteRune(MarkExterior)
	default:
		bw.WriteRune(MarkEnclosed)
	}
}
