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
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tableau is a dense (m+1) x (n+1) simplex tableau, where m is the number
// of constraints and n the number of variables at construction time. Row 0
// is the cost row; rows 1..m correspond one-to-one with the model's
// constraints, in order. Column n (the last one) is the right-hand-side
// column b.
type Tableau struct {
	model     *Model
	table     *mat.Dense
	tolerance float64
}

// NewTableau wraps table with a reference to model's variable list. table
// must have model's constraint count + 1 rows and model's variable count +
// 1 columns.
func NewTableau(model *Model, table *mat.Dense) *Tableau {
	return &Tableau{model: model, table: table, tolerance: model.tolerance}
}

func (t *Tableau) rows() int {
	r, _ := t.table.Dims()
	return r
}

func (t *Tableau) cols() int {
	_, c := t.table.Dims()
	return c
}

// Dims returns the tableau's row and column counts, (m+1, n+1).
func (t *Tableau) Dims() (rows, cols int) {
	return t.table.Dims()
}

// At returns the tableau entry at (row, col).
func (t *Tableau) At(row, col int) float64 {
	return t.table.At(row, col)
}

// Model returns the model this tableau was built from.
func (t *Tableau) Model() *Model {
	return t.model
}

// Cost returns the current value of the objective function (the cost row's
// RHS entry).
func (t *Tableau) Cost() float64 {
	_, c := t.table.Dims()
	return t.table.At(0, c-1)
}

// IsOptimal reports whether every cost-row entry except the RHS is
// non-negative (within tolerance).
func (t *Tableau) IsOptimal() bool {
	_, cols := t.table.Dims()
	for j := 0; j < cols-1; j++ {
		if t.table.At(0, j) < -t.tolerance {
			return false
		}
	}
	return true
}

// ChooseEnteringVariable returns the index of the column in the cost row
// (excluding the RHS) with the most negative value. Ties resolve to the
// first occurrence.
func (t *Tableau) ChooseEnteringVariable() int {
	_, cols := t.table.Dims()
	best, bestVal := 0, t.table.At(0, 0)
	for j := 1; j < cols-1; j++ {
		v := t.table.At(0, j)
		if v < bestVal {
			bestVal = v
			best = j
		}
	}
	return best
}

// IsUnbounded reports whether every entry of column col (including the
// cost row) is non-positive, meaning the entering variable for that column
// can grow without bound.
func (t *Tableau) IsUnbounded(col int) bool {
	rows, _ := t.table.Dims()
	for i := 0; i < rows; i++ {
		if t.table.At(i, col) > t.tolerance {
			return false
		}
	}
	return true
}

// ChooseLeavingVariable runs the min-ratio test over the constraint rows
// (1..m) for the given entering column, considering only rows with a
// strictly positive entry in that column, and returns the row with the
// smallest ratio b_i / a_i,col. Ties resolve to the first occurrence.
// Precondition: IsUnbounded(col) is false, so at least one such row exists.
func (t *Tableau) ChooseLeavingVariable(col int) int {
	rows, cols := t.table.Dims()
	bestRow := -1
	bestRatio := 0.0
	for i := 1; i < rows; i++ {
		a := t.table.At(i, col)
		if a <= t.tolerance {
			continue
		}
		ratio := t.table.At(i, cols-1) / a
		if ratio < 0 {
			continue
		}
		if bestRow == -1 || ratio < bestRatio {
			bestRatio = ratio
			bestRow = i
		}
	}
	return bestRow
}

// Pivot performs a Gauss-Jordan pivot on (row, col): it scales row so that
// the pivot entry becomes 1, then eliminates column col from every other
// row, leaving it a unit vector with the 1 at row.
func (t *Tableau) Pivot(row, col int) {
	rows, cols := t.table.Dims()

	pivotVal := t.table.At(row, col)
	for j := 0; j < cols; j++ {
		t.table.Set(row, j, t.table.At(row, j)/pivotVal)
	}

	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		factor := t.table.At(i, col)
		if factor == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			t.table.Set(i, j, t.table.At(i, j)-factor*t.table.At(row, j))
		}
	}
}

// ExtractBasis returns, for each constraint row, the index of the variable
// currently basic in that row, or -1 if no column is recognized as basic
// for it. A column is basic when its entries (over all m+1 rows, including
// the cost row) form a unit vector within tolerance. This is the right
// check once the cost row has been pivoted into agreement with the basis;
// see extractBasisFromConstraints for the case where it hasn't yet.
func (t *Tableau) ExtractBasis() []int {
	return t.extractBasis(0)
}

// extractBasisFromConstraints is like ExtractBasis but inspects only the
// constraint rows (1..m), ignoring row 0 entirely. Use this to read off the
// basis a tableau was built with, before its cost row has been reconciled
// to match: right after basicInitialTableau constructs a fresh tableau, or
// right after restoreOriginalCostRow overwrites the cost row, that row can
// hold an arbitrary nonzero entry in a column that is nevertheless basic
// over the constraint rows (every slack/artificial variable is basic in
// its own row by construction), which would make ExtractBasis wrongly
// report it as non-basic.
func (t *Tableau) extractBasisFromConstraints() []int {
	return t.extractBasis(1)
}

func (t *Tableau) extractBasis(fromRow int) []int {
	rows, cols := t.table.Dims()
	basis := make([]int, rows-1)
	for i := range basis {
		basis[i] = -1
	}

	for j := 0; j < cols-1; j++ {
		oneRow := -1
		isUnit := true
		for i := fromRow; i < rows; i++ {
			v := t.table.At(i, j)
			switch {
			case floats.EqualWithinAbs(v, 1, t.tolerance):
				if oneRow != -1 {
					isUnit = false
				}
				oneRow = i
			case !floats.EqualWithinAbs(v, 0, t.tolerance):
				isUnit = false
			}
		}
		if isUnit && oneRow > 0 {
			basis[oneRow-1] = j
		}
	}
	return basis
}

// ExtractSolution returns a vector of length equal to the model's variable
// count, with each basic variable's value read off the RHS column and
// every non-basic variable left at 0.
func (t *Tableau) ExtractSolution() []float64 {
	_, cols := t.table.Dims()
	x := make([]float64, cols-1)
	basis := t.ExtractBasis()
	for row, j := range basis {
		if j >= 0 {
			x[j] = t.table.At(row+1, cols-1)
		}
	}
	return x
}
