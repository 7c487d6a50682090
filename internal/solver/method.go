package solver

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownMethod indicates a solver name outside the supported set. It is
// a configuration error and is raised before any program is emitted.
var ErrUnknownMethod = errors.New("solver: unknown method")

// Method is an explicit Runge-Kutta scheme given by its Butcher tableau:
// stage times C, strictly lower-triangular stage coefficients A, and output
// weights B.
type Method struct {
	Name  string
	Order int
	C     []float64
	A     [][]float64
	B     []float64
}

// Stages returns the number of derivative evaluations per step.
func (m Method) Stages() int { return len(m.C) }

var methods = map[string]Method{
	"Euler": {
		Name: "Euler", Order: 1,
		C: []float64{0},
		A: [][]float64{{}},
		B: []float64{1},
	},
	// Runge-Kutta second order, trapezoidal.
	"Heun": {
		Name: "Heun", Order: 2,
		C: []float64{0, 1},
		A: [][]float64{{}, {1}},
		B: []float64{1.0 / 2, 1.0 / 2},
	},
	// Kutta's third-order method.
	"RK3": {
		Name: "RK3", Order: 3,
		C: []float64{0, 1.0 / 2, 1},
		A: [][]float64{{}, {1.0 / 2}, {-1, 2}},
		B: []float64{1.0 / 6, 2.0 / 3, 1.0 / 6},
	},
	// Classic fourth-order Runge-Kutta.
	"RK4": {
		Name: "RK4", Order: 4,
		C: []float64{0, 1.0 / 2, 1.0 / 2, 1},
		A: [][]float64{{}, {1.0 / 2}, {0, 1.0 / 2}, {0, 0, 1}},
		B: []float64{1.0 / 6, 1.0 / 3, 1.0 / 3, 1.0 / 6},
	},
	// Fourth-order Runge-Kutta, 3/8 rule.
	"RK38": {
		Name: "RK38", Order: 4,
		C: []float64{0, 1.0 / 3, 2.0 / 3, 1},
		A: [][]float64{{}, {1.0 / 3}, {-1.0 / 3, 1}, {1, -1, 1}},
		B: []float64{1.0 / 8, 3.0 / 8, 3.0 / 8, 1.0 / 8},
	},
	"CK4": {
		Name: "CK4", Order: 4,
		C:    cashKarpC,
		A:    cashKarpA,
		B:    []float64{2825.0 / 27648, 0, 18575.0 / 48384, 13525.0 / 55296, 277.0 / 14336, 1.0 / 4},
	},
	"CK5": {
		Name: "CK5", Order: 5,
		C:    cashKarpC,
		A:    cashKarpA,
		B:    []float64{37.0 / 378, 0, 250.0 / 621, 125.0 / 594, 0, 512.0 / 1771},
	},
	"RKF4": {
		Name: "RKF4", Order: 4,
		C:    fehlbergC,
		A:    fehlbergA,
		B:    []float64{25.0 / 216, 0, 1408.0 / 2565, 2197.0 / 4104, -1.0 / 5, 0},
	},
	"RKF5": {
		Name: "RKF5", Order: 5,
		C:    fehlbergC,
		A:    fehlbergA,
		B:    []float64{16.0 / 135, 0, 6656.0 / 12825, 28561.0 / 56430, -9.0 / 50, 2.0 / 55},
	},
	"DP4": {
		Name: "DP4", Order: 4,
		C:    dormandPrinceC,
		A:    dormandPrinceA,
		B:    []float64{5179.0 / 57600, 0, 7571.0 / 16695, 393.0 / 640, -92097.0 / 339200, 187.0 / 2100, 1.0 / 40},
	},
	"DP5": {
		Name: "DP5", Order: 5,
		C:    dormandPrinceC,
		A:    dormandPrinceA,
		B:    []float64{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84, 0},
	},
}

// Shared tableaux of the embedded pairs. The fourth- and fifth-order
// variants differ only in their output weights.
var (
	cashKarpC = []float64{0, 1.0 / 5, 3.0 / 10, 3.0 / 5, 1, 7.0 / 8}
	cashKarpA = [][]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{3.0 / 10, -9.0 / 10, 6.0 / 5},
		{-11.0 / 54, 5.0 / 2, -70.0 / 27, 35.0 / 27},
		{1631.0 / 55296, 175.0 / 512, 575.0 / 13824, 44275.0 / 110592, 253.0 / 4096},
	}

	fehlbergC = []float64{0, 1.0 / 4, 3.0 / 8, 12.0 / 13, 1, 1.0 / 2}
	fehlbergA = [][]float64{
		{},
		{1.0 / 4},
		{3.0 / 32, 9.0 / 32},
		{1932.0 / 2197, -7200.0 / 2197, 7296.0 / 2197},
		{439.0 / 216, -8, 3680.0 / 513, -845.0 / 4104},
		{-8.0 / 27, 2, -3544.0 / 2565, 1859.0 / 4104, -11.0 / 40},
	}

	dormandPrinceC = []float64{0, 1.0 / 5, 3.0 / 10, 4.0 / 5, 8.0 / 9, 1, 1}
	dormandPrinceA = [][]float64{
		{},
		{1.0 / 5},
		{3.0 / 40, 9.0 / 40},
		{44.0 / 45, -56.0 / 15, 32.0 / 9},
		{19372.0 / 6561, -25360.0 / 2187, 64448.0 / 6561, -212.0 / 729},
		{9017.0 / 3168, -355.0 / 33, 46732.0 / 5247, 49.0 / 176, -5103.0 / 18656},
		{35.0 / 384, 0, 500.0 / 1113, 125.0 / 192, -2187.0 / 6784, 11.0 / 84},
	}
)

// Lookup returns the named integration method.
func Lookup(name string) (Method, error) {
	m, ok := methods[name]
	if !ok {
		return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
	}
	return m, nil
}

// MustLookup is Lookup for names known to be valid; it panics otherwise.
func MustLookup(name string) Method {
	m, err := Lookup(name)
	if err != nil {
		panic(err)
	}
	return m
}

// Names returns the supported method names in sorted order.
func Names() []string {
	out := make([]string, 0, len(methods))
	for name := range methods {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
