package solver

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("solver: invalid option supplied")

	// ErrInput wraps failures to read the diagram from its source.
	ErrInput = errors.New("solver: cannot read input")
)

// Walls selects which pipe edges block the exterior flood.
type Walls string

const (
	// WallsMutual blocks on every mutual pipe edge, clutter included.
	WallsMutual Walls = "mutual"
	// WallsLoop blocks only on edges of the main loop.
	WallsLoop Walls = "loop"
)

// ParseWalls validates a wall mode name.
func ParseWalls(s string) (Walls, error) {
	switch w := Walls(s); w {
	case WallsMutual, WallsLoop:
		return w, nil
	}
	return "", fmt.Errorf("%w: unknown wall mode %q", ErrOptionViolation, s)
}

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the pipeline settings.
type Options struct {
	// Logger receives one Debug entry per phase with its duration.
	Logger *zap.Logger

	// Walls selects the flood wall rule. Default WallsMutual.
	Walls Walls

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a no-op logger and mutual walls.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
		Walls:  WallsMutual,
	}
}

// WithLogger sets the logger used for phase timings.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWalls sets the wall rule; unknown modes surface as ErrOptionViolation.
func WithWalls(w Walls) Option {
	return func(o *Options) {
		if _, err := ParseWalls(string(w)); err != nil {
			o.err = err
			return
		}
		o.Walls = w
	}
}
