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

// Package expr implements the algebraic modeling layer: variables, linear
// expressions, comparison-induced constraints and objectives.
//
// Expressions never hold a reference back to the model that created their
// variables - only the variable's stable index - so a Model can be deep
// copied freely without untangling ownership cycles. Factors is the
// exception that needs the caller's variable list, and it takes it as a
// plain slice rather than a model, for the same reason.
package expr

// Variable is a named decision variable, implicitly constrained to be >= 0.
// Its identity is its index, assigned in creation order by whichever Model
// it belongs to.
type Variable struct {
	name  string
	index int
}

// NewVariable constructs a variable with the given name and index. Callers
// building a Model should use Model.CreateVariable instead of this directly,
// so that index assignment stays consistent with the model's variable list.
func NewVariable(name string, index int) *Variable {
	return &Variable{name: name, index: index}
}

// Name returns the variable's name.
func (v *Variable) Name() string {
	return v.name
}

// Index returns the variable's stable position in its owning model's
// variable list.
func (v *Variable) Index() int {
	return v.index
}

func (v *Variable) String() string {
	return v.name
}

// Term builds the single-atom expression "1 * v".
func (v *Variable) Term() Expression {
	return Expression{Atoms: []Atom{{Variable: v, Coefficient: 1}}}
}

// Scaled builds the single-atom expression "k * v".
func (v *Variable) Scaled(k float64) Expression {
	return Expression{Atoms: []Atom{{Variable: v, Coefficient: k}}}
}

// LE builds the constraint "v <= bound".
func (v *Variable) LE(bound float64) Constraint {
	return v.Term().LE(bound)
}

// GE builds the constraint "v >= bound".
func (v *Variable) GE(bound float64) Constraint {
	return v.Term().GE(bound)
}

// EQ builds the constraint "v == bound".
func (v *Variable) EQ(bound float64) Constraint {
	return v.Term().EQ(bound)
}
