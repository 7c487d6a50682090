package solver

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decay is dy/dt = -y, whose exact solution is y0 * exp(-t).
func decay(_ float64, y []float64) float64 { return -y[0] }

func TestDriver_RunEmitsInitialRowAndEveryStep(t *testing.T) {
	d := NewDriver(MustLookup("Euler"), []Func{decay}, 0, []float64{1}, 0.25, 1, nil, nil, nil)

	var times []float64
	err := d.Run(context.Background(), func(tm float64, _ []float64) error {
		times = append(times, tm)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, times)
}

func TestDriver_HigherOrderMethodsTrackExponentialDecay(t *testing.T) {
	exact := math.Exp(-1)
	tolerances := map[string]float64{
		"Euler": 5e-2,
		"Heun":  5e-3,
		"RK3":   5e-4,
		"RK4":   5e-6,
		"RK38":  5e-6,
		"CK4":   5e-6,
		"CK5":   5e-6,
		"RKF4":  5e-6,
		"RKF5":  5e-6,
		"DP4":   5e-6,
		"DP5":   5e-6,
	}
	for name, tol := range tolerances {
		t.Run(name, func(t *testing.T) {
			d := NewDriver(MustLookup(name), []Func{decay}, 0, []float64{1}, 0.1, 1, nil, nil, nil)
			var last float64
			err := d.Run(context.Background(), func(_ float64, y []float64) error {
				last = y[0]
				return nil
			})
			require.NoError(t, err)
			assert.InDelta(t, exact, last, tol)
		})
	}
}

func TestDriver_LowerBoundResetsNegativeState(t *testing.T) {
	// A strong constant drain drives the value negative in one step; the
	// boundary policy snaps it back to the reset value.
	drain := func(_ float64, _ []float64) float64 { return -10 }
	lower := map[int]Bound{0: {Threshold: 0, Reset: 0}}
	d := NewDriver(MustLookup("Euler"), []Func{drain}, 0, []float64{0.5}, 1, 1, nil, lower, nil)

	next := d.Step(0, []float64{0.5})
	assert.Equal(t, 0.0, next[0])
}

func TestDriver_UpperBoundResetsOvershoot(t *testing.T) {
	grow := func(_ float64, _ []float64) float64 { return 1 }
	upper := map[int]Bound{0: {Threshold: 1e-3, Reset: 1e-3}}
	d := NewDriver(MustLookup("Euler"), []Func{grow}, 0, []float64{1e-3}, 1, 1, nil, nil, upper)

	next := d.Step(0, []float64{1e-3})
	assert.Equal(t, 1e-3, next[0])
}

func TestDriver_BoundaryScenario(t *testing.T) {
	lower := map[int]Bound{0: {Threshold: 0, Reset: 0}}
	upper := map[int]Bound{0: {Threshold: 1e-3, Reset: 1e-3}}
	d := NewDriver(MustLookup("Euler"), nil, 0, nil, 1, 1, nil, lower, upper)

	y := []float64{-0.5}
	d.clamp(y)
	assert.Equal(t, 0.0, y[0])

	y = []float64{2e-3}
	d.clamp(y)
	assert.Equal(t, 1e-3, y[0])
}

func TestDriver_StepDoesNotModifyInput(t *testing.T) {
	d := NewDriver(MustLookup("RK4"), []Func{decay}, 0, []float64{1}, 0.1, 1, nil, nil, nil)
	y := []float64{1}
	_ = d.Step(0, y)
	assert.Equal(t, 1.0, y[0])
}

func TestDriver_RunHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := NewDriver(MustLookup("Euler"), []Func{decay}, 0, []float64{1}, 1, 100, nil, nil, nil)
	rows := 0
	err := d.Run(ctx, func(_ float64, _ []float64) error {
		rows++
		return nil
	})
	require.Error(t, err)
	// Only the initial row goes out before the cancellation is noticed.
	assert.Equal(t, 1, rows)
}

func TestDriver_CallbackObservesEveryRow(t *testing.T) {
	var observed int
	cb := func(_ float64, _ []float64) { observed++ }
	d := NewDriver(MustLookup("Heun"), []Func{decay}, 0, []float64{1}, 0.5, 2, cb, nil, nil)

	require.NoError(t, d.Run(context.Background(), nil))
	assert.Equal(t, 5, observed)
}
