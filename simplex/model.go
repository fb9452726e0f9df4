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

// Package simplex implements the LP model, the tableau and the two-phase
// simplex solver.
//
// As an example of the API:
//
//	model, _ := simplex.NewModel("diet problem")
//	x1, _ := model.CreateVariable("x1")
//	x2, _ := model.CreateVariable("x2")
//	model.AddConstraint(x1.Term().Add(x2.Term()).GE(10))
//	model.Minimize(x1.Scaled(2).Add(x2.Term()))
//	solution, err := model.Solve()
package simplex

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gosaport/saport/expr"
)

// Model is an ordered list of variables, an ordered list of constraints and
// one objective. It is the root owner of every Variable, Expression,
// Constraint and Objective it holds: those store only variable indices and
// never a reference back to the Model, so a Model is safe to deep copy.
type Model struct {
	mu sync.RWMutex

	name        string
	variables   []*expr.Variable
	constraints []expr.Constraint
	objective   *expr.Objective

	logger    Logger
	tolerance float64
}

// NewModel constructs an empty model with the given name. It has no
// variables, no constraints and no objective yet.
func NewModel(name string, opts ...Option) (*Model, error) {
	m := &Model{
		name:      name,
		logger:    noopLogger{},
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("applying model option: %w", err)
		}
	}
	return m, nil
}

// Name returns the model's name.
func (m *Model) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

// Variables returns a snapshot of the model's current variable list.
// Mutating the returned slice does not affect the model.
func (m *Model) Variables() []*expr.Variable {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*expr.Variable, len(m.variables))
	copy(out, m.variables)
	return out
}

// Constraints returns a snapshot of the model's current constraint list.
func (m *Model) Constraints() []expr.Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]expr.Constraint, len(m.constraints))
	copy(out, m.constraints)
	return out
}

// Objective returns the model's objective, or nil if none has been set yet.
func (m *Model) Objective() *expr.Objective {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.objective
}

// CreateVariable adds a new, uniquely named variable to the model and
// returns it. Variable names must be unique within a model.
func (m *Model) CreateVariable(name string) (*expr.Variable, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, v := range m.variables {
		if v.Name() == name {
			return nil, invalidModel(fmt.Sprintf("there is already a variable named %q", name))
		}
	}

	v := expr.NewVariable(name, len(m.variables))
	m.variables = append(m.variables, v)
	return v, nil
}

// AddConstraint appends a constraint to the model. It does not change the
// objective or any previously added constraint.
func (m *Model) AddConstraint(c expr.Constraint) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.constraints = append(m.constraints, c)
}

// Minimize sets the model's objective to minimize the given expression.
func (m *Model) Minimize(e expr.Expression) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objective = &expr.Objective{Expression: e, Sense: expr.Min}
}

// Maximize sets the model's objective to maximize the given expression.
func (m *Model) Maximize(e expr.Expression) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objective = &expr.Objective{Expression: e, Sense: expr.Max}
}

// Clone returns a deep copy of the model: new Variable, Constraint and
// Objective values that share no mutable state with the original.
func (m *Model) Clone() *Model {
	m.mu.RLock()
	defer m.mu.RUnlock()

	clone := &Model{
		name:      m.name,
		logger:    m.logger,
		tolerance: m.tolerance,
	}

	clone.variables = cloneVariables(m.variables)
	clone.constraints = make([]expr.Constraint, len(m.constraints))
	for i, c := range m.constraints {
		clone.constraints[i] = expr.Constraint{
			Expression: remapExpression(c.Expression, clone.variables),
			Relation:   c.Relation,
			Bound:      c.Bound,
		}
	}
	if m.objective != nil {
		obj := expr.Objective{
			Expression: remapExpression(m.objective.Expression, clone.variables),
			Sense:      m.objective.Sense,
		}
		clone.objective = &obj
	}

	return clone
}

// cloneVariables returns a slice of fresh *expr.Variable values carrying the
// same name and index as the originals, so that expressions can be remapped
// onto them purely by index lookup.
func cloneVariables(vars []*expr.Variable) []*expr.Variable {
	out := make([]*expr.Variable, len(vars))
	for i, v := range vars {
		out[i] = expr.NewVariable(v.Name(), v.Index())
	}
	return out
}

// remapExpression rebuilds e so that every atom points at the variable with
// the same index in newVars, instead of whatever variable pointer it held
// before.
func remapExpression(e expr.Expression, newVars []*expr.Variable) expr.Expression {
	atoms := make([]expr.Atom, len(e.Atoms))
	for i, a := range e.Atoms {
		atoms[i] = expr.Atom{Variable: newVars[a.Variable.Index()], Coefficient: a.Coefficient}
	}
	return expr.Expression{Atoms: atoms, Constant: e.Constant}
}

// simplify simplifies every constraint and the objective in place.
func (m *Model) simplify() {
	for i, c := range m.constraints {
		m.constraints[i] = c.Simplify()
	}
	if m.objective != nil {
		obj := m.objective.Simplify()
		m.objective = &obj
	}
}

// TranslateToStandardForm returns a new model equivalent to m, with a
// maximize objective and only LE/EQ constraints: GE constraints are
// inverted to LE, and a MIN objective is inverted to MAX. The conversion is
// idempotent - translating an already-standard model returns an equivalent
// model.
func (m *Model) TranslateToStandardForm() *Model {
	standard := m.Clone()
	standard.simplify()

	for i, c := range standard.constraints {
		if c.Relation == expr.GE {
			standard.constraints[i] = c.Invert()
		}
	}

	if standard.objective != nil && standard.objective.Sense == expr.Min {
		inverted := standard.objective.Invert()
		standard.objective = &inverted
	}

	return standard
}

// IsEquivalent reports whether m and other have the same standard form:
// same variable count, same constraint count, same objective sense and
// coefficient vector, and, in list order, identical per-constraint bound,
// relation and coefficient vector.
func (m *Model) IsEquivalent(other *Model) bool {
	m1 := m.TranslateToStandardForm()
	m2 := other.TranslateToStandardForm()

	if len(m1.variables) != len(m2.variables) {
		return false
	}
	if len(m1.constraints) != len(m2.constraints) {
		return false
	}
	if m1.objective == nil || m2.objective == nil {
		return m1.objective == m2.objective
	}
	if m1.objective.Sense != m2.objective.Sense {
		return false
	}
	if !equalFactors(m1.objective.Expression.Factors(m1.variables), m2.objective.Expression.Factors(m2.variables)) {
		return false
	}

	for i, c1 := range m1.constraints {
		c2 := m2.constraints[i]
		if c1.Bound != c2.Bound || c1.Relation != c2.Relation {
			return false
		}
		if !equalFactors(c1.Expression.Factors(m1.variables), c2.Expression.Factors(m2.variables)) {
			return false
		}
	}

	return true
}

func equalFactors(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *Model) String() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "- name: %s\n", m.name)
	b.WriteString("- variables:\n")
	for _, v := range m.variables {
		fmt.Fprintf(&b, "\t%s >= 0\n", v.Name())
	}
	b.WriteString("- constraints:\n")
	for _, c := range m.constraints {
		fmt.Fprintf(&b, "\t%s\n", c)
	}
	if m.objective != nil {
		fmt.Fprintf(&b, "- objective:\n\t%s\n", m.objective)
	}
	return b.String()
}
