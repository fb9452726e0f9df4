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

import (
	"fmt"

	"github.com/gosaport/saport/expr"
)

// Dual builds the dual of m: given primal "max c.x s.t. Ax <= b, x >= 0",
// the dual is "min b.y s.t. A^T y >= c, y >= 0". m must have no equality
// constraints - the method returns ErrInvalidModel otherwise, since an
// equality constraint's corresponding dual variable would need to be free
// (unrestricted in sign), which this library's variables can't express.
func (m *Model) Dual() (*Model, error) {
	for _, c := range m.Constraints() {
		if c.Relation == expr.EQ {
			return nil, invalidModel("model doesn't support duals for problems with equality constraints")
		}
	}

	primal := m.TranslateToStandardForm()

	dual, err := NewModel(fmt.Sprintf("%s (dual)", primal.name))
	if err != nil {
		return nil, err
	}

	dualVars := make([]*expr.Variable, len(primal.constraints))
	for i := range primal.constraints {
		v, err := dual.CreateVariable(fmt.Sprintf("y%d", i+1))
		if err != nil {
			return nil, err
		}
		dualVars[i] = v
	}

	objective := expr.NewExpression()
	for i, c := range primal.constraints {
		objective = objective.Add(dualVars[i].Scaled(c.Bound))
	}
	dual.Minimize(objective)

	primalFactors := make([][]float64, len(primal.constraints))
	for i, c := range primal.constraints {
		primalFactors[i] = c.Expression.Factors(primal.variables)
	}

	primalObjFactors := primal.objective.Expression.Factors(primal.variables)

	for col := range primal.variables {
		rowExpr := expr.NewExpression()
		for row := range primal.constraints {
			rowExpr = rowExpr.Add(dualVars[row].Scaled(primalFactors[row][col]))
		}
		dual.AddConstraint(rowExpr.GE(primalObjFactors[col]))
	}

	return dual, nil
}
