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

package maxflow

import (
	"fmt"
	"math"

	"github.com/gosaport/saport/expr"
	"github.com/gosaport/saport/simplex"
)

// SimplexSolver computes max flow by reduction to an LP: one variable per
// edge bounded by its capacity, flow conservation at every node except the
// source and sink, maximizing the net flow out of the source (flow out of
// it minus flow back into it). It carries no state and is safe to reuse.
type SimplexSolver struct{}

// NewSimplexSolver returns a ready-to-use solver.
func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{}
}

// Solve returns the maximum flow from n's source to its sink.
func (s *SimplexSolver) Solve(n *Network) (int, error) {
	if err := n.validate(); err != nil {
		return 0, err
	}

	model, err := simplex.NewModel(n.name)
	if err != nil {
		return 0, err
	}

	edgeVars := make([]*expr.Variable, len(n.edges))
	outgoing := make([][]int, n.numNodes)
	incoming := make([][]int, n.numNodes)

	for i, e := range n.edges {
		v, err := model.CreateVariable(fmt.Sprintf("x%d", i))
		if err != nil {
			return 0, err
		}
		edgeVars[i] = v
		model.AddConstraint(v.LE(float64(e.capacity)))
		outgoing[e.from] = append(outgoing[e.from], i)
		incoming[e.to] = append(incoming[e.to], i)
	}

	sumOf := func(edgeIndices []int) expr.Expression {
		vars := make([]*expr.Variable, len(edgeIndices))
		for i, idx := range edgeIndices {
			vars[i] = edgeVars[idx]
		}
		return expr.VarSum(vars...)
	}

	fromSource := sumOf(outgoing[n.source])
	toSink := sumOf(incoming[n.sink])
	model.AddConstraint(fromSource.Sub(toSink).EQ(0))

	for node := 0; node < n.numNodes; node++ {
		if node == n.source || node == n.sink {
			continue
		}
		in := sumOf(incoming[node])
		out := sumOf(outgoing[node])
		model.AddConstraint(in.Sub(out).EQ(0))
	}

	model.Maximize(fromSource.Sub(sumOf(incoming[n.source])))

	solution, err := model.Solve()
	if err != nil {
		return 0, err
	}

	return int(math.Round(solution.ObjectiveValue())), nil
}
