package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaport/saport/expr"
)

func vars(names ...string) []*expr.Variable {
	vs := make([]*expr.Variable, len(names))
	for i, n := range names {
		vs[i] = expr.NewVariable(n, i)
	}
	return vs
}

func TestExpressionNegFactorsAreNegated(t *testing.T) {
	vs := vars("x1", "x2", "x3")
	e := vs[0].Scaled(2).Add(vs[1].Scaled(-3)).AddVar(vs[2])

	factors := e.Factors(vs)
	negFactors := e.Neg().Factors(vs)

	require.Len(t, negFactors, len(factors))
	for i := range factors {
		assert.Equal(t, -factors[i], negFactors[i])
	}
}

func TestExpressionAddFactorsAreAdditive(t *testing.T) {
	vs := vars("x1", "x2")
	e1 := vs[0].Scaled(2).AddVar(vs[1])
	e2 := vs[0].Scaled(-1).Add(expr.ConstantExpression(5))

	sumFactors := e1.Add(e2).Factors(vs)
	f1 := e1.Factors(vs)
	f2 := e2.Factors(vs)

	for i := range sumFactors {
		assert.Equal(t, f1[i]+f2[i], sumFactors[i])
	}
}

func TestExpressionFactorsPadsAbsentVariables(t *testing.T) {
	vs := vars("x1", "x2", "x3")
	e := vs[1].Term()

	factors := e.Factors(vs)
	assert.Equal(t, []float64{0, 1, 0}, factors)
}

func TestExpressionSimplifyCollapsesRepeatedVariables(t *testing.T) {
	x := expr.NewVariable("x", 0)
	e := x.Scaled(2).Add(x.Scaled(3)).Add(expr.ConstantExpression(1))

	simplified := e.Simplify()

	require.Len(t, simplified.Atoms, 1)
	assert.Equal(t, 5.0, simplified.Atoms[0].Coefficient)
	assert.Equal(t, 1.0, simplified.Constant)
}

func TestExpressionSimplifyDropsZeroCoefficients(t *testing.T) {
	x := expr.NewVariable("x", 0)
	y := expr.NewVariable("y", 1)
	e := x.Term().Add(x.Scaled(-1)).AddVar(y)

	simplified := e.Simplify()

	require.Len(t, simplified.Atoms, 1)
	assert.Equal(t, y.Index(), simplified.Atoms[0].Variable.Index())
}

func TestConstraintSimplifyFoldsConstantIntoBound(t *testing.T) {
	x := expr.NewVariable("x", 0)
	c := x.Term().Add(expr.ConstantExpression(3)).LE(10)

	assert.Equal(t, 7.0, c.Bound)
	assert.Equal(t, 0.0, c.Expression.Constant)
}

func TestConstraintInvertFlipsRelationAndNegatesBoth(t *testing.T) {
	x := expr.NewVariable("x", 0)
	c := x.LE(5)
	inverted := c.Invert()

	assert.Equal(t, expr.GE, inverted.Relation)
	assert.Equal(t, -5.0, inverted.Bound)
	assert.Equal(t, -1.0, inverted.Expression.Atoms[0].Coefficient)

	eq := x.EQ(5)
	assert.Equal(t, expr.EQ, eq.Invert().Relation)
}

func TestObjectiveInvertFlipsSense(t *testing.T) {
	x := expr.NewVariable("x", 0)
	obj := expr.Objective{Expression: x.Scaled(2), Sense: expr.Min}
	inverted := obj.Invert()

	assert.Equal(t, expr.Max, inverted.Sense)
	assert.Equal(t, -2.0, inverted.Expression.Atoms[0].Coefficient)
}

func TestExpressionEqualComparesAtomOrderAfterSimplify(t *testing.T) {
	x := expr.NewVariable("x", 0)
	y := expr.NewVariable("y", 1)

	// e2 simplifies to [y, x] while e1 is [x, y]: same coefficients, but
	// Equal compares atoms in order, so the two are not equal.
	e1 := x.Term().AddVar(y)
	e2 := y.Term().Add(x.Scaled(2)).Sub(x.Term())

	assert.False(t, e1.Equal(e2))
}
