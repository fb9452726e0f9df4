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

package simplex

import "github.com/gosaport/saport/expr"

// Solution is the result of a successful Model.Solve() call: an assignment
// of every original variable to its optimal value, the optimal objective
// value, and enough of the solver's internal state (the final tableau and
// the normalized model it was built from) to support sensitivity analysis.
type Solution struct {
	model       *Model
	normalModel *Model
	tableau     *Tableau
	assignment  []float64
}

// Value returns v's value in this solution. v must come from the same
// Model that was solved (or a variable with the same index).
func (s *Solution) Value(v *expr.Variable) float64 {
	return s.assignment[v.Index()]
}

// ObjectiveValue returns the optimal value of the original model's
// objective. It evaluates the original (un-normalized) objective
// expression directly at the solution's assignment, rather than reading
// the tableau's cost row: the cost row's sign and scale depend on how many
// times the objective was inverted during normalization (MIN->MAX, and
// back for reporting), which is bookkeeping this method has no business
// repeating.
func (s *Solution) ObjectiveValue() float64 {
	return s.model.Objective().Expression.Evaluate(s.assignment)
}

// Model returns the model that was solved.
func (s *Solution) Model() *Model {
	return s.model
}

// NormalModel returns the normalized (standard-form, presolved) model the
// final tableau was built from. Sensitivity analysis reads coefficients off
// this model rather than the caller's original one.
func (s *Solution) NormalModel() *Model {
	return s.normalModel
}

// Tableau returns the final, optimal tableau.
func (s *Solution) Tableau() *Tableau {
	return s.tableau
}
