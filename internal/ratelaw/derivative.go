package ratelaw

import (
	"fmt"
	"strings"

	"github.com/kincproject/kinc/internal/network"
)

// Derivative is the compiled time-derivative of one entity:
// the sum of its influx terms minus the sum of its outflux terms.
type Derivative struct {
	Name    string
	influx  []*CompiledExpr
	outflux []*CompiledExpr
}

// CompileDerivative compiles every flux expression of the entity. The
// expressions must already be rewritten to state-vector form.
func CompileDerivative(e *network.Entity) (*Derivative, error) {
	d := &Derivative{Name: e.Name}
	for _, id := range e.Influx.IDs() {
		eq, _ := e.Influx.Get(id)
		c, err := CompileExpr(eq)
		if err != nil {
			return nil, fmt.Errorf("influx %s of %s: %w", id, e.Name, err)
		}
		d.influx = append(d.influx, c)
	}
	for _, id := range e.Outflux.IDs() {
		eq, _ := e.Outflux.Get(id)
		c, err := CompileExpr(eq)
		if err != nil {
			return nil, fmt.Errorf("outflux %s of %s: %w", id, e.Name, err)
		}
		d.outflux = append(d.outflux, c)
	}
	return d, nil
}

// Rate computes d(entity)/dt at time t for state y. An evaluation failure
// here means a compiled expression references state the index never
// assigned — an internal inconsistency, not a user error — so it panics.
func (d *Derivative) Rate(t float64, y []float64) float64 {
	var in, out float64
	for _, c := range d.influx {
		v, err := c.Eval(t, y)
		if err != nil {
			panic(fmt.Sprintf("ratelaw: derivative of %s: %v", d.Name, err))
		}
		in += v
	}
	for _, c := range d.outflux {
		v, err := c.Eval(t, y)
		if err != nil {
			panic(fmt.Sprintf("ratelaw: derivative of %s: %v", d.Name, err))
		}
		out += v
	}
	return in - out
}

// DerivativeExpr renders the entity's derivative as a single expression
// string, `(influx + ...) - (outflux + ...)`, with an empty side rendered
// as the literal 0. An entity with no fluxes therefore renders `(0) - (0)`.
func DerivativeExpr(e *network.Entity) string {
	return "(" + joinTerms(e.Influx) + ") - (" + joinTerms(e.Outflux) + ")"
}

func joinTerms(m *network.FluxMap) string {
	if m.Len() == 0 {
		return "0"
	}
	terms := make([]string, 0, m.Len())
	for _, id := range m.IDs() {
		eq, _ := m.Get(id)
		terms = append(terms, eq)
	}
	return strings.Join(terms, " + ")
}
