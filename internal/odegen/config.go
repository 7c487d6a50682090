package odegen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kincproject/kinc/internal/solver"
)

// Config carries the integration parameters through the pipeline. It
// replaces per-call defaults so that compilation stays referentially
// transparent: the same spec and config always produce the same program.
type Config struct {
	// Solver names the integration method (see solver.Names).
	Solver string
	// Timestep is the fixed integration step interval.
	Timestep float64
	// EndTime is the simulation end; integration runs from 0 to EndTime.
	EndTime float64
	// Lower and Upper are the boundary policies applied to every state
	// slot after each step.
	Lower solver.Bound
	Upper solver.Bound
}

// Default returns the standard configuration: RK4, unit timestep, a six-hour
// horizon, non-negativity lower bound, and a millimolar upper bound.
func Default() Config {
	return Config{
		Solver:   "RK4",
		Timestep: 1,
		EndTime:  21600,
		Lower:    solver.Bound{Threshold: 0.0, Reset: 0.0},
		Upper:    solver.Bound{Threshold: 1e-3, Reset: 1e-3},
	}
}

// ParseBound parses a "threshold;reset" pair as given on the command line,
// e.g. "0;0" or "1e-3;1e-3". Malformed pairs are a hard failure.
func ParseBound(s string) (solver.Bound, error) {
	parts := strings.Split(strings.TrimSpace(s), ";")
	if len(parts) != 2 {
		return solver.Bound{}, fmt.Errorf("malformed bound %q: want threshold;reset", s)
	}
	threshold, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return solver.Bound{}, fmt.Errorf("malformed bound threshold %q: %w", parts[0], err)
	}
	reset, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return solver.Bound{}, fmt.Errorf("malformed bound reset %q: %w", parts[1], err)
	}
	return solver.Bound{Threshold: threshold, Reset: reset}, nil
}
