package solver

import (
	"context"
	"math"
)

// Func is one slot's derivative: dy[i]/dt = f(t, y). A Func must not modify y.
type Func func(t float64, y []float64) float64

// Bound is one slot's boundary policy: when the state value crosses
// Threshold, it is reset to Reset.
type Bound struct {
	Threshold float64
	Reset     float64
}

// Callback observes the state after every completed step (post-clamp).
// A nil callback is valid and observes nothing.
type Callback func(t float64, y []float64)

// Driver advances a state vector through time with a fixed-step explicit
// method, applying the boundary policy after every step.
type Driver struct {
	method   Method
	fns      []Func
	t0       float64
	y0       []float64
	timestep float64
	endtime  float64
	callback Callback
	lower    map[int]Bound
	upper    map[int]Bound
}

// NewDriver builds a driver over the derivative vector fns, starting state
// y0 at time t0, stepping by timestep until endtime. lower and upper map
// state slots to their boundary policies; either may be nil.
func NewDriver(method Method, fns []Func, t0 float64, y0 []float64,
	timestep, endtime float64, callback Callback,
	lower, upper map[int]Bound) *Driver {
	return &Driver{
		method:   method,
		fns:      fns,
		t0:       t0,
		y0:       y0,
		timestep: timestep,
		endtime:  endtime,
		callback: callback,
		lower:    lower,
		upper:    upper,
	}
}

// Step advances y by one timestep from time t using the driver's method and
// returns the new state with the boundary policy applied. The input slice
// is not modified.
func (d *Driver) Step(t float64, y []float64) []float64 {
	n := len(y)
	h := d.timestep
	stages := d.method.Stages()

	// k[j][i] holds the i-th slot's derivative at stage j.
	k := make([][]float64, stages)
	stageY := make([]float64, n)
	for j := 0; j < stages; j++ {
		copy(stageY, y)
		for l, a := range d.method.A[j] {
			if a == 0 {
				continue
			}
			for i := 0; i < n; i++ {
				stageY[i] += h * a * k[l][i]
			}
		}
		stageT := t + d.method.C[j]*h
		k[j] = make([]float64, n)
		for i, f := range d.fns {
			k[j][i] = f(stageT, stageY)
		}
	}

	next := make([]float64, n)
	copy(next, y)
	for j, b := range d.method.B {
		if b == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			next[i] += h * b * k[j][i]
		}
	}
	d.clamp(next)
	return next
}

// clamp applies the boundary policy: a value below its lower threshold or
// above its upper threshold is hard-reset to the configured substitute.
func (d *Driver) clamp(y []float64) {
	for i, b := range d.lower {
		if i < len(y) && y[i] < b.Threshold {
			y[i] = b.Reset
		}
	}
	for i, b := range d.upper {
		if i < len(y) && y[i] > b.Threshold {
			y[i] = b.Reset
		}
	}
}

// Run integrates from t0 to endtime, calling emit with every row of the
// trajectory: first the initial state, then the state after each step. The
// step count is fixed up front from endtime/timestep, so an excessive ratio
// simply runs to completion unless the context is cancelled.
func (d *Driver) Run(ctx context.Context, emit func(t float64, y []float64) error) error {
	y := make([]float64, len(d.y0))
	copy(y, d.y0)

	if emit != nil {
		if err := emit(d.t0, y); err != nil {
			return err
		}
	}
	if d.callback != nil {
		d.callback(d.t0, y)
	}

	steps := int(math.Ceil((d.endtime - d.t0) / d.timestep))
	for i := 1; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		t := d.t0 + float64(i-1)*d.timestep
		y = d.Step(t, y)
		now := d.t0 + float64(i)*d.timestep
		if emit != nil {
			if err := emit(now, y); err != nil {
				return err
			}
		}
		if d.callback != nil {
			d.callback(now, y)
		}
	}
	return nil
}
