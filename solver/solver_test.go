package solver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipegrid"
	"github.com/katalvlaran/pipeloop/solver"
)

const (
	square = `.....
.S-7.
.|.|.
.L-J.
.....
`
	scattered = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...
`
)

// TestSolve_Square covers the basic scenario: farthest 4, one enclosed cell.
func TestSolve_Square(t *testing.T) {
	rep, err := solver.Solve(square)
	require.NoError(t, err)

	assert.Equal(t, 4, rep.Farthest)
	assert.Equal(t, 1, rep.Enclosed)
	assert.Equal(t, solver.WallsMutual, rep.Walls)
	assert.Equal(t, pipegrid.Point{Row: 1, Col: 1}, rep.Grid.Start)
	assert.Equal(t, 25, rep.Classes.Loop.Size()+rep.Classes.Exterior.Size()+rep.Classes.Enclosed.Size())
}

// TestSolve_Walls runs both wall rules on the scattered example and on a
// diagram where a clutter ring makes them differ.
func TestSolve_Walls(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		walls    solver.Walls
		farthest int
		enclosed int
	}{
		{"ScatteredMutual", scattered, solver.WallsMutual, 70, 8},
		{"ScatteredLoop", scattered, solver.WallsLoop, 70, 8},
		{"RingMutual", "S7F-7\nLJ|.|\n..L-J\n", solver.WallsMutual, 2, 1},
		{"RingLoop", "S7F-7\nLJ|.|\n..L-J\n", solver.WallsLoop, 2, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rep, err := solver.Solve(tc.input, solver.WithWalls(tc.walls))
			require.NoError(t, err)
			assert.Equal(t, tc.farthest, rep.Farthest)
			assert.Equal(t, tc.enclosed, rep.Enclosed)
		})
	}
}

// TestSolve_Errors checks that core outcomes surface as distinct errors.
func TestSolve_Errors(t *testing.T) {
	_, err := solver.Solve("...\n...\n")
	assert.ErrorIs(t, err, pipegrid.ErrNoStart)

	_, err = solver.Solve("S-.\n...\n")
	assert.ErrorIs(t, err, loop.ErrNoLoop)

	_, err = solver.Solve(square, solver.WithWalls("diagonal"))
	assert.ErrorIs(t, err, solver.ErrOptionViolation)

	_, err = solver.SolveFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, solver.ErrInput)
}

// TestSolveFile reads a diagram from disk.
func TestSolveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(square), 0o600))

	rep, err := solver.SolveFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, rep.Farthest)
	assert.Equal(t, 1, rep.Enclosed)
}

// TestSolve_LogsPhases checks one debug entry per phase.
func TestSolve_LogsPhases(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := solver.Solve(square, solver.WithLogger(zap.New(core)))
	require.NoError(t, err)

	for _, msg := range []string{"grid parsed", "loop found", "exterior flooded", "cells classified"} {
		assert.Equal(t, 1, logs.FilterMessage(msg).Len(), msg)
	}
	entry := logs.FilterMessage("loop found").All()[0]
	assert.Equal(t, int64(4), entry.ContextMap()["farthest"])
}

// TestParseWalls accepts only the known modes.
func TestParseWalls(t *testing.T) {
	w, err := solver.ParseWalls("loop")
	require.NoError(t, err)
	assert.Equal(t, solver.WallsLoop, w)

	_, err = solver.ParseWalls("")
	assert.ErrorIs(t, err, solver.ErrOptionViolation)
}
