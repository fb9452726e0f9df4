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

package expr

import "fmt"

// Sense is the optimization direction of an Objective.
type Sense int

const (
	Min Sense = iota
	Max
)

func (s Sense) String() string {
	if s == Max {
		return "maximize"
	}
	return "minimize"
}

// Objective pairs a linear expression with an optimization direction.
type Objective struct {
	Expression Expression
	Sense      Sense
}

// Invert negates the expression and flips the sense. Semantically,
// "minimize c.x" and "maximize -c.x" share the same optimal x.
func (o Objective) Invert() Objective {
	sense := Min
	if o.Sense == Min {
		sense = Max
	}
	return Objective{Expression: o.Expression.Neg(), Sense: sense}
}

// Simplify collapses the objective's expression.
func (o Objective) Simplify() Objective {
	return Objective{Expression: o.Expression.Simplify(), Sense: o.Sense}
}

func (o Objective) String() string {
	return fmt.Sprintf("%s %s", o.Sense, o.Expression)
}
