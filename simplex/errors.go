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

import "errors"

// ErrUnbounded is returned by Solve when the entering column chosen by the
// simplex loop has no positive entry to pivot on: the objective can be
// improved without limit.
var ErrUnbounded = errors.New("simplex: model is unbounded")

// ErrInfeasible is returned by Solve when phase-1 presolve ends with an
// artificial variable still basic at a positive value: no feasible point
// satisfies every constraint.
var ErrInfeasible = errors.New("simplex: model is infeasible")

// ErrInvalidModel wraps the specific reason a model could not be solved or
// transformed: no variables, no objective, a duplicate variable name, or a
// dual requested for a model with equality constraints.
type ErrInvalidModel struct {
	Reason string
}

func (e *ErrInvalidModel) Error() string {
	return "simplex: invalid model: " + e.Reason
}

func invalidModel(reason string) error {
	return &ErrInvalidModel{Reason: reason}
}
