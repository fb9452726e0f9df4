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

import (
	"fmt"
	"strings"
)

// Atom is a (variable, coefficient) pair, one term of a linear expression.
type Atom struct {
	Variable    *Variable
	Coefficient float64
}

// Expression is a linear combination of variables plus an optional constant
// term: an ordered multiset of atoms.
type Expression struct {
	Atoms    []Atom
	Constant float64
}

// NewExpression returns the zero expression (no atoms, constant 0).
func NewExpression() Expression {
	return Expression{}
}

// ConstantExpression returns the expression consisting only of a constant
// term.
func ConstantExpression(c float64) Expression {
	return Expression{Constant: c}
}

// Sum adds any number of expressions together.
func Sum(es ...Expression) Expression {
	result := NewExpression()
	for _, e := range es {
		result = result.Add(e)
	}
	return result
}

// VarSum returns the expression that is the sum of the given variables,
// each with coefficient 1.
func VarSum(vars ...*Variable) Expression {
	e := NewExpression()
	for _, v := range vars {
		e = e.AddVar(v)
	}
	return e
}

// Add returns a new expression equal to e + other.
func (e Expression) Add(other Expression) Expression {
	atoms := make([]Atom, 0, len(e.Atoms)+len(other.Atoms))
	atoms = append(atoms, e.Atoms...)
	atoms = append(atoms, other.Atoms...)
	return Expression{Atoms: atoms, Constant: e.Constant + other.Constant}
}

// AddVar is equivalent to e.Add(v.Term()), added as a convenience since
// accumulating sums one variable at a time is the common case when building
// constraints programmatically (e.g. summing a row of a cost matrix).
func (e Expression) AddVar(v *Variable) Expression {
	return e.Add(v.Term())
}

// Sub returns a new expression equal to e - other.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.Neg())
}

// SubVar is equivalent to e.Sub(v.Term()).
func (e Expression) SubVar(v *Variable) Expression {
	return e.Sub(v.Term())
}

// Neg returns -e.
func (e Expression) Neg() Expression {
	return e.Scale(-1)
}

// Scale returns k*e.
func (e Expression) Scale(k float64) Expression {
	atoms := make([]Atom, len(e.Atoms))
	for i, a := range e.Atoms {
		atoms[i] = Atom{Variable: a.Variable, Coefficient: a.Coefficient * k}
	}
	return Expression{Atoms: atoms, Constant: e.Constant * k}
}

// LE builds the constraint "e <= bound".
func (e Expression) LE(bound float64) Constraint {
	return Constraint{Expression: e, Relation: LE, Bound: bound}.Simplify()
}

// GE builds the constraint "e >= bound".
func (e Expression) GE(bound float64) Constraint {
	return Constraint{Expression: e, Relation: GE, Bound: bound}.Simplify()
}

// EQ builds the constraint "e == bound".
func (e Expression) EQ(bound float64) Constraint {
	return Constraint{Expression: e, Relation: EQ, Bound: bound}.Simplify()
}

// Simplify returns an equivalent expression with at most one atom per
// variable index and no zero-coefficient atoms. The constant term is left
// untouched here - folding it into a constraint's bound is the job of
// Constraint.Simplify.
func (e Expression) Simplify() Expression {
	byIndex := make(map[int]*Variable)
	sums := make(map[int]float64)
	order := make([]int, 0, len(e.Atoms))

	for _, a := range e.Atoms {
		idx := a.Variable.Index()
		if _, seen := byIndex[idx]; !seen {
			byIndex[idx] = a.Variable
			order = append(order, idx)
		}
		sums[idx] += a.Coefficient
	}

	atoms := make([]Atom, 0, len(order))
	for _, idx := range order {
		coef := sums[idx]
		if coef == 0 {
			continue
		}
		atoms = append(atoms, Atom{Variable: byIndex[idx], Coefficient: coef})
	}

	return Expression{Atoms: atoms, Constant: e.Constant}
}

// Factors projects the expression onto a dense coefficient vector indexed
// by the position of each variable in vars, padding with zero for any
// variable in vars that the expression doesn't mention.
func (e Expression) Factors(vars []*Variable) []float64 {
	factors := make([]float64, len(vars))
	for _, a := range e.Simplify().Atoms {
		idx := a.Variable.Index()
		if idx >= 0 && idx < len(factors) {
			factors[idx] += a.Coefficient
		}
	}
	return factors
}

// Evaluate returns the expression's value when each variable takes the
// value at its own index in values.
func (e Expression) Evaluate(values []float64) float64 {
	total := e.Constant
	for _, a := range e.Atoms {
		total += a.Coefficient * values[a.Variable.Index()]
	}
	return total
}

// Equal reports whether e and other are structurally equal after
// simplification: same nonzero atoms (variable index + coefficient, in
// order) and same constant.
func (e Expression) Equal(other Expression) bool {
	a, b := e.Simplify(), other.Simplify()
	if a.Constant != b.Constant || len(a.Atoms) != len(b.Atoms) {
		return false
	}
	for i := range a.Atoms {
		if a.Atoms[i].Variable.Index() != b.Atoms[i].Variable.Index() {
			return false
		}
		if a.Atoms[i].Coefficient != b.Atoms[i].Coefficient {
			return false
		}
	}
	return true
}

func (e Expression) String() string {
	if len(e.Atoms) == 0 && e.Constant == 0 {
		return "0"
	}
	parts := make([]string, 0, len(e.Atoms)+1)
	for _, a := range e.Atoms {
		parts = append(parts, fmt.Sprintf("%g %s", a.Coefficient, a.Variable.Name()))
	}
	if e.Constant != 0 {
		parts = append(parts, fmt.Sprintf("%g", e.Constant))
	}
	return strings.Join(parts, " + ")
}
