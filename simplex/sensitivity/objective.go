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

// Package sensitivity analyses how far a solved model's objective
// coefficients could move before the current optimal basis stopped being
// optimal.
package sensitivity

import (
	"fmt"
	"math"

	"github.com/gosaport/saport/simplex"
)

// Range is an acceptable interval for an objective coefficient: the current
// basis stays optimal as long as the coefficient stays within [Lower,
// Upper]. Either bound may be infinite.
type Range struct {
	Lower float64
	Upper float64
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Lower, r.Upper)
}

// ObjectiveAnalyser computes per-variable objective coefficient ranges for
// an already-solved model. It carries no state and is safe to reuse.
type ObjectiveAnalyser struct{}

// NewObjectiveAnalyser returns a ready-to-use analyser.
func NewObjectiveAnalyser() *ObjectiveAnalyser {
	return &ObjectiveAnalyser{}
}

// Analyse returns one Range per variable of the solved model, in the same
// order as solution.Model().Variables(). A basic variable's range is
// derived from how far its coefficient can move before some other column's
// reduced cost goes negative; a non-basic variable's range is bounded above
// by its own (non-negative) reduced cost and unbounded below.
func (a *ObjectiveAnalyser) Analyse(solution *simplex.Solution) []Range {
	normal := solution.NormalModel()
	original := solution.Model()
	tableau := solution.Tableau()

	objCoeffs := normal.Objective().Expression.Factors(original.Variables())
	basis := tableau.ExtractBasis()
	_, cols := tableau.Dims()

	ranges := make([]Range, len(objCoeffs))
	for i, coeff := range objCoeffs {
		if row := rowOf(basis, i); row != -1 {
			ranges[i] = basicRange(tableau, row, i, coeff, cols)
		} else {
			ranges[i] = Range{Lower: math.Inf(-1), Upper: coeff + tableau.At(0, i)}
		}
	}
	return ranges
}

// rowOf returns the constraint row (0-indexed) whose basic variable is
// column col, or -1 if col isn't currently basic.
func rowOf(basis []int, col int) int {
	for row, basisVar := range basis {
		if basisVar == col {
			return row
		}
	}
	return -1
}

// basicRange computes the coefficient range for the variable basic in
// tableau row "row" (0-indexed among constraint rows), at column col with
// current coefficient coeff: every other column contributes a delta bound
// (a lower bound if its tableau-row entry is positive, an upper bound if
// negative), and the tightest of each kind wins.
func basicRange(tableau *simplex.Tableau, row, col int, coeff float64, cols int) Range {
	haveLower, haveUpper := false, false
	lowerDelta, upperDelta := math.Inf(-1), math.Inf(1)

	for index := 0; index < cols-1; index++ {
		if index == col {
			continue
		}
		given := tableau.At(row+1, index)
		if given == 0 {
			continue
		}
		delta := (-1 / given) * tableau.At(0, index)
		if given < 0 {
			if delta < upperDelta {
				upperDelta = delta
			}
			haveUpper = true
		} else {
			if delta > lowerDelta {
				lowerDelta = delta
			}
			haveLower = true
		}
	}

	r := Range{Lower: math.Inf(-1), Upper: math.Inf(1)}
	if haveLower {
		r.Lower = coeff + lowerDelta
	}
	if haveUpper {
		r.Upper = coeff + upperDelta
	}
	return r
}
