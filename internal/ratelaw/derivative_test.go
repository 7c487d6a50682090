package ratelaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kincproject/kinc/internal/network"
)

func TestCompileExpr_EvaluatesArithmetic(t *testing.T) {
	c, err := CompileExpr("0.1 * y[0]")
	require.NoError(t, err)

	v, err := c.Eval(0, []float64{2})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, v, 1e-12)
}

func TestCompileExpr_BindsTime(t *testing.T) {
	c, err := CompileExpr("t * 2 + y[1]")
	require.NoError(t, err)

	v, err := c.Eval(3, []float64{0, 5})
	require.NoError(t, err)
	assert.InDelta(t, 11, v, 1e-12)
}

func TestCompileExpr_ConstantNeedsNoState(t *testing.T) {
	c, err := CompileExpr("2e-5")
	require.NoError(t, err)

	v, err := c.Eval(0, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2e-5, v, 1e-20)
}

func TestCompileExpr_RejectsMalformedSource(t *testing.T) {
	_, err := CompileExpr("0.1 * * y[0]")
	assert.ErrorIs(t, err, ErrExprSyntax)
}

func TestEval_UnboundIdentifierFails(t *testing.T) {
	c, err := CompileExpr("k1 * y[0]")
	require.NoError(t, err)

	_, err = c.Eval(0, []float64{1})
	assert.Error(t, err)
}

func TestDerivative_RateSumsInfluxMinusOutflux(t *testing.T) {
	e := network.NewEntity("A", "")
	e.Influx.Set("r1", "2e-5")
	e.Outflux.Set("r2", "0.1 * y[0]")

	d, err := CompileDerivative(e)
	require.NoError(t, err)

	assert.InDelta(t, 2e-5-0.1, d.Rate(0, []float64{1}), 1e-12)
}

func TestDerivative_NoFluxesMeansZeroRate(t *testing.T) {
	e := network.NewEntity("inert", "")

	d, err := CompileDerivative(e)
	require.NoError(t, err)
	assert.Zero(t, d.Rate(0, []float64{1, 2, 3}))
}

func TestDerivativeExpr_RendersZeroForEmptySides(t *testing.T) {
	e := network.NewEntity("inert", "")
	assert.Equal(t, "(0) - (0)", DerivativeExpr(e))

	e.Influx.Set("r1", "y[1]")
	e.Influx.Set("r2", "2 * y[2]")
	assert.Equal(t, "(y[1] + 2 * y[2]) - (0)", DerivativeExpr(e))
}
