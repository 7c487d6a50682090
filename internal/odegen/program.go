package odegen

import (
	"context"
	"fmt"

	"github.com/kincproject/kinc/internal/ctxlog"
	"github.com/kincproject/kinc/internal/modelspec"
	"github.com/kincproject/kinc/internal/network"
	"github.com/kincproject/kinc/internal/ratelaw"
	"github.com/kincproject/kinc/internal/solver"
)

// Program is a compiled, ready-to-run integration program. It is immutable
// after Compile: regenerating a model means compiling a new Program, not
// patching one in place.
type Program struct {
	Spec   *modelspec.Specification
	Table  *network.EntityTable
	Index  map[string]int
	Method solver.Method
	Config Config

	derivs []*ratelaw.Derivative
}

// Compile builds a Program from a specification and its entity table. The
// solver name is validated before anything is emitted; rate laws are
// rewritten to state-vector form and compiled once. The input table is not
// modified.
func Compile(ctx context.Context, spec *modelspec.Specification, table *network.EntityTable, cfg Config) (*Program, error) {
	logger := ctxlog.FromContext(ctx)

	method, err := solver.Lookup(cfg.Solver)
	if err != nil {
		return nil, err
	}

	index := network.Index(table)
	rewritten, err := ratelaw.RewriteTable(ctx, table, index)
	if err != nil {
		return nil, err
	}

	derivs := make([]*ratelaw.Derivative, 0, rewritten.Len())
	for _, name := range rewritten.Names() {
		e, _ := rewritten.Get(name)
		d, err := ratelaw.CompileDerivative(e)
		if err != nil {
			return nil, err
		}
		derivs = append(derivs, d)
	}

	logger.Debug("odegen: program compiled",
		"solver", method.Name, "entities", rewritten.Len())
	return &Program{
		Spec:   spec,
		Table:  rewritten,
		Index:  index,
		Method: method,
		Config: cfg,
		derivs: derivs,
	}, nil
}

// Labels returns the output column names: "time" followed by every entity
// name in slot order.
func (p *Program) Labels() []string {
	labels := make([]string, 0, p.Table.Len()+1)
	labels = append(labels, "time")
	labels = append(labels, p.Table.Names()...)
	return labels
}

// InitialState returns the initial state vector ordered by slot.
func (p *Program) InitialState() []float64 {
	y := make([]float64, p.Table.Len())
	for i, name := range p.Table.Names() {
		e, _ := p.Table.Get(name)
		y[i] = e.Initial
	}
	return y
}

// Bounds materializes the per-slot boundary tables from the config's
// uniform bound pair.
func (p *Program) Bounds() (lower, upper map[int]solver.Bound) {
	n := p.Table.Len()
	lower = make(map[int]solver.Bound, n)
	upper = make(map[int]solver.Bound, n)
	for i := 0; i < n; i++ {
		lower[i] = p.Config.Lower
		upper[i] = p.Config.Upper
	}
	return lower, upper
}

// Funcs returns the derivative vector, one solver.Func per slot.
func (p *Program) Funcs() []solver.Func {
	fns := make([]solver.Func, len(p.derivs))
	for i, d := range p.derivs {
		fns[i] = d.Rate
	}
	return fns
}

// Driver builds the integration driver for this program.
func (p *Program) Driver(callback solver.Callback) *solver.Driver {
	lower, upper := p.Bounds()
	return solver.NewDriver(p.Method, p.Funcs(), 0.0, p.InitialState(),
		p.Config.Timestep, p.Config.EndTime, callback, lower, upper)
}

// Run executes the program in-memory, emitting every trajectory row.
func (p *Program) Run(ctx context.Context, emit func(t float64, y []float64) error) error {
	if err := p.Driver(nil).Run(ctx, emit); err != nil {
		return fmt.Errorf("odegen: simulation failed: %w", err)
	}
	return nil
}
