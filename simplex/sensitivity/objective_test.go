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

package sensitivity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaport/saport/simplex"
	"github.com/gosaport/saport/simplex/sensitivity"
)

func TestObjectiveAnalyserReturnsOneRangePerVariable(t *testing.T) {
	model, err := simplex.NewModel("very simple max")
	require.NoError(t, err)

	x1, err := model.CreateVariable("x1")
	require.NoError(t, err)
	x2, err := model.CreateVariable("x2")
	require.NoError(t, err)

	model.AddConstraint(x1.Scaled(3).Add(x2.Scaled(5)).LE(78))
	model.AddConstraint(x1.Scaled(4).Add(x2.Term()).LE(36))
	model.Maximize(x1.Scaled(5).Add(x2.Scaled(4)))

	solution, err := model.Solve()
	require.NoError(t, err)

	ranges := sensitivity.NewObjectiveAnalyser().Analyse(solution)
	require.Len(t, ranges, 2)

	for _, r := range ranges {
		assert.LessOrEqual(t, r.Lower, r.Upper)
		assert.False(t, math.IsNaN(r.Lower))
		assert.False(t, math.IsNaN(r.Upper))
	}
}
