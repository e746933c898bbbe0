// Package solver runs the whole pipe-loop analysis over a diagram:
// parse, mutual filter, loop discovery, exterior flood and the final
// classification. It is the boundary where input is read and phases are
// timed and logged; the packages it drives stay pure.
package solver

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/area"
	"github.com/katalvlaran/pipeloop/flood"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Timings records the wall-clock duration of each phase.
type Timings struct {
	Parse    time.Duration
	Loop     time.Duration
	Flood    time.Duration
	Classify time.Duration
}

// Report is the outcome of one analysis.
type Report struct {
	Grid    *pipegrid.Grid
	Mutual  pipegrid.AdjacencyMap
	Loop    *loop.Result
	Flood   *flood.Result
	Classes *area.Classification

	// Farthest is the step count to the loop point farthest from the start.
	Farthest int
	// Enclosed is the number of cells strictly inside the loop.
	Enclosed int

	Walls   Walls
	Timings Timings
}

// Solve analyzes the diagram in text.
func Solve(text string, opts ...Option) (*Report, error) {
	return SolveReader(strings.NewReader(text), opts...)
}

// SolveFile reads the diagram at path and analyzes it. Read failures are
// wrapped with ErrInput.
func SolveFile(path string, opts ...Option) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	defer f.Close()
	return SolveReader(f, opts...)
}

// SolveReader analyzes the diagram read from r.
// Errors from pipegrid (ErrNoStart, ...) and loop (ErrNoLoop) are
// returned wrapped and can be matched with errors.Is.
func SolveReader(r io.Reader, opts ...Option) (*Report, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	log := o.Logger
	rep := &Report{Walls: o.Walls}

	t0 := time.Now()
	g, err := pipegrid.ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	rep.Grid = g
	rep.Mutual = g.Mutual()
	rep.Timings.Parse = time.Since(t0)
	log.Debug("grid parsed",
		zap.Int("rows", g.Rows),
		zap.Int("cols", g.Cols),
		zap.Stringer("start", g.Start),
		zap.Duration("elapsed", rep.Timings.Parse),
	)

	t0 = time.Now()
	l, err := loop.Find(rep.Mutual, g.Start)
	if err != nil {
		log.Debug("no loop", zap.Stringer("start", g.Start), zap.Int("degree", len(rep.Mutual[g.Start])))
		return nil, fmt.Errorf("solver: %w", err)
	}
	rep.Loop = l
	rep.Farthest = l.Farthest
	rep.Timings.Loop = time.Since(t0)
	log.Debug("loop found",
		zap.Int("length", l.Len()),
		zap.Int("farthest", l.Farthest),
		zap.Duration("elapsed", rep.Timings.Loop),
	)

	t0 = time.Now()
	var fillOpts []flood.Option
	if o.Walls == WallsLoop {
		fillOpts = append(fillOpts, flood.WithWall(l.Linked))
	}
	fr, err := flood.Fill(rep.Mutual, fillOpts...)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	rep.Flood = fr
	rep.Timings.Flood = time.Since(t0)
	log.Debug("exterior flooded",
		zap.String("walls", string(o.Walls)),
		zap.Int("joints", len(fr.Order)),
		zap.Int("reached", fr.Exterior.Size()),
		zap.Duration("elapsed", rep.Timings.Flood),
	)

	t0 = time.Now()
	c, err := area.Classify(rep.Mutual, l, fr.Exterior)
	if err != nil {
		return nil, fmt.Errorf("solver: %w", err)
	}
	rep.Classes = c
	rep.Enclosed = c.Count()
	rep.Timings.Classify = time.Since(t0)
	log.Debug("cells classified",
		zap.Int("loop", c.Loop.Size()),
		zap.Int("exterior", c.Exterior.Size()),
		zap.Int("enclosed", rep.Enclosed),
		zap.Duration("elapsed", rep.Timings.Classify),
	)

	return rep, nil
}
