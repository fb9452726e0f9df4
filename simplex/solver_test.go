/*
Copyright © 2024 The saport authors

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaport/saport/expr"
	"github.com/gosaport/saport/simplex"
)

func TestSolveVerySimpleMax(t *testing.T) {
	model, err := simplex.NewModel("very simple max")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)

	model.AddConstraint(x1.Scaled(3).Add(x2.Scaled(5)).LE(78))
	model.AddConstraint(x1.Scaled(4).Add(x2.Term()).LE(36))
	model.Maximize(x1.Scaled(5).Add(x2.Scaled(4)))

	solution, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 6, solution.Value(x1), 1e-6)
	assert.InDelta(t, 12, solution.Value(x2), 1e-6)
	assert.InDelta(t, 78, solution.ObjectiveValue(), 1e-6)
}

func TestSolveMinWithMixedConstraints(t *testing.T) {
	model, err := simplex.NewModel("solvable min with mixed constraints")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)
	x3, err := model.CreateVariable("x3")
	require.NoError(t, err)

	model.AddConstraint(x1.Term().Sub(x2.Term()).Sub(x3.Term()).GE(-50))
	model.AddConstraint(x1.Term().Add(x2.Scaled(2)).Add(x3.Term()).GE(-10))
	model.AddConstraint(x2.Scaled(4).Add(x3.Term()).EQ(100))
	model.Minimize(x1.Scaled(2).Sub(x2.Term()).Add(x3.Scaled(3)))

	solution, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 0, solution.Value(x1), 1e-6)
	assert.InDelta(t, 25, solution.Value(x2), 1e-6)
	assert.InDelta(t, 0, solution.Value(x3), 1e-6)
	assert.InDelta(t, -25, solution.ObjectiveValue(), 1e-6)
}

func TestSolveUnbounded(t *testing.T) {
	model, err := simplex.NewModel("unbounded variant")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)
	x3, err := model.CreateVariable("x3")
	require.NoError(t, err)

	model.AddConstraint(x1.Term().Sub(x2.Term()).Sub(x3.Term()).GE(-50))
	model.AddConstraint(x1.Term().Add(x2.Scaled(2)).Add(x3.Term()).GE(-10))
	model.AddConstraint(x2.Scaled(4).Add(x3.Term()).EQ(100))
	model.Maximize(x1.Scaled(2).Sub(x2.Term()).Add(x3.Scaled(3)))

	_, err = model.Solve()
	assert.ErrorIs(t, err, simplex.ErrUnbounded)
}

func TestSolveInfeasibleWithArtificials(t *testing.T) {
	model, err := simplex.NewModel("infeasible with artificials")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)
	x3, err := model.CreateVariable("x3")
	require.NoError(t, err)

	model.AddConstraint(x1.Term().Add(x2.Term()).Add(x3.Term()).EQ(10))
	model.AddConstraint(x1.Term().Sub(x2.Term()).Add(x3.Term()).GE(100))
	model.Maximize(x1.Term().Add(x2.Term()))

	_, err = model.Solve()
	assert.ErrorIs(t, err, simplex.ErrInfeasible)
}

func TestSolveArtificialVariableSolve(t *testing.T) {
	model, err := simplex.NewModel("artificial-variable solve")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)

	model.AddConstraint(x1.Scaled(2).Sub(x2.Term()).LE(-1))
	model.AddConstraint(x1.Term().Add(x2.Term()).EQ(3))
	model.Maximize(x1.Term().Add(x2.Scaled(3)))

	solution, err := model.Solve()
	require.NoError(t, err)

	assert.InDelta(t, 0, solution.Value(x1), 1e-6)
	assert.InDelta(t, 3, solution.Value(x2), 1e-6)
	assert.InDelta(t, 9, solution.ObjectiveValue(), 1e-6)
}

func TestSolveRejectsModelWithoutVariables(t *testing.T) {
	model, err := simplex.NewModel("empty")
	require.NoError(t, err)

	_, err = model.Solve()
	require.Error(t, err)
	var invalid *simplex.ErrInvalidModel
	assert.ErrorAs(t, err, &invalid)
}

func TestSolveRejectsModelWithoutObjective(t *testing.T) {
	model, err := simplex.NewModel("no objective")
	require.NoError(t, err)
	_, err = model.CreateVariable("x1")
	require.NoError(t, err)

	_, err = model.Solve()
	require.Error(t, err)
	var invalid *simplex.ErrInvalidModel
	assert.ErrorAs(t, err, &invalid)
}

func TestSolutionSatisfiesOriginalConstraints(t *testing.T) {
	model, err := simplex.NewModel("constraint satisfaction")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)

	c1 := x1.Scaled(3).Add(x2.Scaled(5)).LE(78)
	c2 := x1.Scaled(4).Add(x2.Term()).LE(36)
	model.AddConstraint(c1)
	model.AddConstraint(c2)
	objective := x1.Scaled(5).Add(x2.Scaled(4))
	model.Maximize(objective)

	solution, err := model.Solve()
	require.NoError(t, err)

	for _, c := range []expr.Constraint{c1, c2} {
		value := evalExpression(c.Expression, solution)
		assert.LessOrEqual(t, value, c.Bound+1e-6)
	}

	assert.InDelta(t, evalExpression(objective, solution), solution.ObjectiveValue(), 1e-6)
}

func evalExpression(e expr.Expression, solution *simplex.Solution) float64 {
	total := e.Constant
	for _, a := range e.Atoms {
		total += a.Coefficient * solution.Value(a.Variable)
	}
	return total
}
