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

// Relation is the comparison operator of a Constraint.
type Relation int

const (
	LE Relation = iota
	GE
	EQ
)

func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	default:
		return "?"
	}
}

// Constraint is a linear expression compared against a bound.
type Constraint struct {
	Expression Expression
	Relation   Relation
	Bound      float64
}

// Invert negates both the expression and the bound and flips LE<->GE
// (an EQ constraint stays EQ, since "e == b" and "-e == -b" are the same
// relation).
func (c Constraint) Invert() Constraint {
	relation := c.Relation
	switch relation {
	case LE:
		relation = GE
	case GE:
		relation = LE
	}
	return Constraint{
		Expression: c.Expression.Neg(),
		Relation:   relation,
		Bound:      -c.Bound,
	}
}

// Simplify returns an equivalent constraint whose expression has at most
// one atom per variable and no constant term - the expression's constant is
// folded into the bound.
func (c Constraint) Simplify() Constraint {
	e := c.Expression.Simplify()
	bound := c.Bound - e.Constant
	e.Constant = 0
	return Constraint{Expression: e, Relation: c.Relation, Bound: bound}
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s %s %g", c.Expression, c.Relation, c.Bound)
}
