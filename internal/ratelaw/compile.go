package ratelaw

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// CompiledExpr is a rate-law expression parsed into an evaluable syntax
// tree. Compilation happens once per expression; evaluation binds the time
// variable `t` and the state vector `y`.
type CompiledExpr struct {
	src  string
	expr hclsyntax.Expression
}

// CompileExpr parses a (rewritten) rate-law expression. Expressions that do
// not parse into arithmetic the evaluator understands are a hard failure.
func CompileExpr(src string) (*CompiledExpr, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "rate-law", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w %q: %s", ErrExprSyntax, src, diags.Error())
	}
	return &CompiledExpr{src: src, expr: expr}, nil
}

// Source returns the expression text the compiled form was parsed from.
func (c *CompiledExpr) Source() string { return c.src }

// Eval evaluates the expression at time t over state vector y.
func (c *CompiledExpr) Eval(t float64, y []float64) (float64, error) {
	state := cty.EmptyTupleVal
	if len(y) > 0 {
		elems := make([]cty.Value, len(y))
		for i, v := range y {
			elems[i] = cty.NumberFloatVal(v)
		}
		state = cty.TupleVal(elems)
	}
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"t": cty.NumberFloatVal(t),
			"y": state,
		},
	}
	val, diags := c.expr.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("ratelaw: evaluate %q: %s", c.src, diags.Error())
	}
	if val.IsNull() || !val.Type().Equals(cty.Number) {
		return 0, fmt.Errorf("ratelaw: expression %q is not numeric", c.src)
	}
	f, _ := val.AsBigFloat().Float64()
	return f, nil
}
