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

package assignment

import (
	"fmt"
	"math"

	"github.com/gosaport/saport/expr"
	"github.com/gosaport/saport/simplex"
)

// SimplexSolver solves a Problem by reduction to an LP: one variable per
// (worker, task) cell bounded by 1, a row-sum-equals-1 constraint per
// worker, a column-sum-equals-1 constraint per task, minimizing total cost.
// It carries no state and is safe to reuse.
type SimplexSolver struct{}

// NewSimplexSolver returns a ready-to-use solver.
func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{}
}

// Solve returns the optimal assignment for p.
func (s *SimplexSolver) Solve(p *Problem) (*Assignment, error) {
	norm := normalize(p)
	n := norm.size

	model, err := simplex.NewModel("assignment")
	if err != nil {
		return nil, err
	}

	cells := make([][]*expr.Variable, n)
	objective := expr.NewExpression()
	for row := 0; row < n; row++ {
		cells[row] = make([]*expr.Variable, n)
		for col := 0; col < n; col++ {
			v, err := model.CreateVariable(fmt.Sprintf("x%d_%d", row, col))
			if err != nil {
				return nil, err
			}
			cells[row][col] = v
			objective = objective.Add(v.Scaled(norm.costs[row][col]))
			model.AddConstraint(v.LE(1))
		}
	}

	for row := 0; row < n; row++ {
		model.AddConstraint(expr.VarSum(cells[row]...).EQ(1))
	}
	for col := 0; col < n; col++ {
		column := make([]*expr.Variable, n)
		for row := 0; row < n; row++ {
			column[row] = cells[row][col]
		}
		model.AddConstraint(expr.VarSum(column...).EQ(1))
	}

	model.Minimize(objective)
	solution, err := model.Solve()
	if err != nil {
		return nil, err
	}

	tasks := make(map[int]int, n)
	for row := 0; row < n; row++ {
		best, bestValue := 0, math.Inf(-1)
		for col := 0; col < n; col++ {
			if v := solution.Value(cells[row][col]); v > bestValue {
				bestValue, best = v, col
			}
		}
		tasks[row] = best
	}

	return buildAssignment(p, tasks), nil
}
