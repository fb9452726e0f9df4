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
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/gosaport/saport/expr"
)

// solverState holds the bookkeeping a single Solve() call needs to thread
// through normalization, presolve and optimization. It is created fresh per
// call - per §5, a solve owns its working matrices exclusively, so nothing
// here is shared across concurrent Solve() calls on the same Model.
type solverState struct {
	logger         Logger
	slackVars      map[int]int // slack variable index -> constraint row
	surplusVars    map[int]int // surplus variable index -> constraint row
	artificialVars map[int]int // artificial variable index -> constraint row
}

// Solve solves the model with the two-phase tableau simplex method and
// returns the optimal assignment together with the optimal objective value.
// It returns ErrInvalidModel if the model has no variables or no objective,
// ErrUnbounded if the objective can grow (or shrink) without limit, and
// ErrInfeasible if no assignment satisfies every constraint.
func (m *Model) Solve() (*Solution, error) {
	m.mu.RLock()
	numVars := len(m.variables)
	hasObjective := m.objective != nil
	m.mu.RUnlock()

	if numVars == 0 {
		return nil, invalidModel("can't solve a model without any variables")
	}
	if !hasObjective {
		return nil, invalidModel("can't solve a model without an objective")
	}

	s := &solverState{logger: m.logger}

	normalModel := s.normalize(m)

	var tableau *Tableau
	if len(s.slackVars) == len(normalModel.constraints) {
		tableau = s.basicInitialTableau(normalModel)
	} else {
		var err error
		tableau, err = s.presolve(normalModel)
		if err != nil {
			return nil, err
		}
	}

	if err := s.optimize(tableau); err != nil {
		return nil, err
	}

	assignment := tableau.ExtractSolution()
	original := make([]float64, numVars)
	copy(original, assignment[:numVars])

	return &Solution{
		model:       m,
		normalModel: normalModel,
		tableau:     tableau,
		assignment:  original,
	}, nil
}

// normalize returns a deep copy of model with: a MAX objective, every
// constraint bound made non-negative, a slack variable added to every LE
// constraint and a surplus variable subtracted from every GE constraint.
func (s *solverState) normalize(model *Model) *Model {
	normal := model.Clone()

	if normal.objective.Sense == expr.Min {
		inverted := normal.objective.Invert()
		normal.objective = &inverted
	}

	for i, c := range normal.constraints {
		if c.Bound < 0 {
			normal.constraints[i] = c.Invert()
		}
	}

	s.slackVars = make(map[int]int)
	s.surplusVars = make(map[int]int)
	for i, c := range normal.constraints {
		switch c.Relation {
		case expr.LE:
			v, _ := normal.CreateVariable(fmt.Sprintf("s%d", i))
			s.slackVars[v.Index()] = i
			normal.constraints[i].Expression = c.Expression.AddVar(v)
		case expr.GE:
			v, _ := normal.CreateVariable(fmt.Sprintf("s%d", i))
			s.surplusVars[v.Index()] = i
			normal.constraints[i].Expression = c.Expression.SubVar(v)
		}
	}

	return normal
}

// presolve runs phase 1 of the two-phase method: it adds an artificial
// variable to every GE/EQ constraint, minimizes their sum, checks that a
// feasible point was found, then hands back a tableau with the original
// (phase 2) objective, ready for the main optimization loop.
func (s *solverState) presolve(normalModel *Model) (*Tableau, error) {
	presolveModel := normalModel.Clone()
	s.artificialVars = make(map[int]int)
	for i, c := range presolveModel.constraints {
		if c.Relation == expr.GE || c.Relation == expr.EQ {
			v, _ := presolveModel.CreateVariable(fmt.Sprintf("R%d", i))
			s.artificialVars[v.Index()] = i
			presolveModel.constraints[i].Expression = c.Expression.AddVar(v)
		}
	}

	phase1Model := presolveModel.Clone()
	phase1Objective := expr.NewExpression()
	for idx := range s.artificialVars {
		phase1Objective = phase1Objective.SubVar(phase1Model.variables[idx])
	}
	phase1Model.Maximize(phase1Objective)

	s.logger.Print("presolve: phase 1 (minimizing sum of artificial variables)")
	tableau := s.basicInitialTableau(phase1Model)
	fixCostRowToBasis(tableau)

	if err := s.optimize(tableau); err != nil {
		return nil, err
	}

	if s.artificialVariablesArePositive(tableau) {
		return nil, ErrInfeasible
	}

	tableau = s.removeArtificialVariables(tableau, presolveModel)
	s.restoreOriginalCostRow(tableau, normalModel)
	fixCostRowToBasis(tableau)

	s.logger.Print("presolve: phase 2 ready")
	return tableau, nil
}

// basicInitialTableau builds the tableau for a model whose constraints are
// already all LE or already carry an obvious basic variable (slack or
// artificial): cost row = -objective factors with RHS 0, each constraint
// row = its factors with RHS = its bound.
func (s *solverState) basicInitialTableau(model *Model) *Tableau {
	n := len(model.variables)
	m := len(model.constraints)
	table := mat.NewDense(m+1, n+1, nil)

	costFactors := model.objective.Expression.Neg().Factors(model.variables)
	for j, v := range costFactors {
		table.Set(0, j, v)
	}

	for i, c := range model.constraints {
		factors := c.Expression.Factors(model.variables)
		for j, v := range factors {
			table.Set(i+1, j, v)
		}
		table.Set(i+1, n, c.Bound)
	}

	return NewTableau(model, table)
}

// optimize runs the main simplex loop: while the tableau isn't optimal,
// pick an entering column, detect unboundedness, pick a leaving row and
// pivot. There is no iteration cap - a degenerate model may cycle forever,
// an accepted limitation.
func (s *solverState) optimize(t *Tableau) error {
	for !t.IsOptimal() {
		col := t.ChooseEnteringVariable()
		if t.IsUnbounded(col) {
			return ErrUnbounded
		}
		row := t.ChooseLeavingVariable(col)
		s.logger.Print(fmt.Sprintf("pivot: entering column %d, leaving row %d", col, row))
		t.Pivot(row, col)
	}
	return nil
}

// artificialVariablesArePositive reports whether any artificial variable is
// still basic at a (tolerance-adjusted) positive value, meaning phase 1
// couldn't drive every artificial variable to zero: the original model has
// no feasible point.
func (s *solverState) artificialVariablesArePositive(t *Tableau) bool {
	basis := t.ExtractBasis()
	_, cols := t.table.Dims()
	for row, col := range basis {
		if col < 0 {
			continue
		}
		if _, ok := s.artificialVars[col]; !ok {
			continue
		}
		if t.table.At(row+1, cols-1) > t.tolerance {
			return true
		}
	}
	return false
}

// removeArtificialVariables drops the artificial variable columns from the
// tableau and from a trimmed copy of presolveModel's variable list.
func (s *solverState) removeArtificialVariables(t *Tableau, presolveModel *Model) *Tableau {
	removed := make(map[int]bool, len(s.artificialVars))
	for idx := range s.artificialVars {
		removed[idx] = true
	}

	rows, cols := t.table.Dims()
	keep := make([]int, 0, cols-len(removed))
	for j := 0; j < cols; j++ {
		if !removed[j] {
			keep = append(keep, j)
		}
	}
	sort.Ints(keep)

	newTable := mat.NewDense(rows, len(keep), nil)
	for i := 0; i < rows; i++ {
		for newJ, oldJ := range keep {
			newTable.Set(i, newJ, t.table.At(i, oldJ))
		}
	}

	trimmedVars := make([]*expr.Variable, 0, len(presolveModel.variables)-len(removed))
	for _, v := range presolveModel.variables {
		if !removed[v.Index()] {
			trimmedVars = append(trimmedVars, v)
		}
	}
	trimmedModel := &Model{
		name:      presolveModel.name,
		variables: trimmedVars,
		logger:    presolveModel.logger,
		tolerance: presolveModel.tolerance,
	}

	return NewTableau(trimmedModel, newTable)
}

// restoreOriginalCostRow replaces t's cost row with the phase-2 objective's
// (negated) coefficients, read off a fresh basic-initial tableau for
// normalModel so the RHS/column layout matches t exactly.
func (s *solverState) restoreOriginalCostRow(t *Tableau, normalModel *Model) {
	phase2 := s.basicInitialTableau(normalModel)
	_, cols := t.table.Dims()
	for j := 0; j < cols; j++ {
		t.table.Set(0, j, phase2.table.At(0, j))
	}
}

// fixCostRowToBasis zeroes the cost row's entry at every row's current
// basic column, by subtracting (that entry * the row) from the cost row.
// This single helper covers both the phase-1 initial "every artificial
// variable starts basic at cost -1" fix-up and the phase-2 "cost row was
// just replaced, basic columns need to read 0 again" fix-up: it only acts
// on rows whose basic column actually has a nonzero cost-row entry, so rows
// whose basic variable is a slack (cost already 0) are correctly left
// alone instead of being blindly subtracted.
//
// It reads the basis with extractBasisFromConstraints, not ExtractBasis:
// in both cases this runs right after the cost row was (re)built and
// doesn't yet agree with the basis, so a basic column can still carry a
// stray nonzero cost-row entry that would make the full, all-rows
// ExtractBasis miss it entirely.
func fixCostRowToBasis(t *Tableau) {
	basis := t.extractBasisFromConstraints()
	_, cols := t.table.Dims()
	for row, basisVar := range basis {
		if basisVar < 0 {
			continue
		}
		coeff := t.table.At(0, basisVar)
		if coeff == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.table.Set(0, j, t.table.At(0, j)-coeff*t.table.At(row+1, j))
		}
	}
}
