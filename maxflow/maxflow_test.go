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

package maxflow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosaport/saport/maxflow"
)

func exampleNetwork(t *testing.T) *maxflow.Network {
	t.Helper()
	n := maxflow.NewNetwork("example", 0, 3)
	require.NoError(t, n.AddEdge(0, 1, 10))
	require.NoError(t, n.AddEdge(0, 2, 5))
	require.NoError(t, n.AddEdge(1, 2, 15))
	require.NoError(t, n.AddEdge(1, 3, 10))
	require.NoError(t, n.AddEdge(2, 3, 10))
	return n
}

func TestEdmondsKarpSolvesExampleNetwork(t *testing.T) {
	flow, err := maxflow.NewEdmondsKarpSolver().Solve(exampleNetwork(t))
	require.NoError(t, err)
	assert.Equal(t, 15, flow)
}

func TestSimplexSolverSolvesExampleNetwork(t *testing.T) {
	flow, err := maxflow.NewSimplexSolver().Solve(exampleNetwork(t))
	require.NoError(t, err)
	assert.Equal(t, 15, flow)
}

func TestAddEdgeRejectsNegativeCapacity(t *testing.T) {
	n := maxflow.NewNetwork("bad", 0, 1)
	err := n.AddEdge(0, 1, -1)
	require.Error(t, err)
	var invalid *maxflow.ErrInvalidNetwork
	assert.ErrorAs(t, err, &invalid)
}

func TestSolveRejectsCoincidentSourceAndSink(t *testing.T) {
	n := maxflow.NewNetwork("degenerate", 0, 0)
	_, err := maxflow.NewEdmondsKarpSolver().Solve(n)
	require.Error(t, err)
	var invalid *maxflow.ErrInvalidNetwork
	assert.ErrorAs(t, err, &invalid)
}

func TestEdmondsKarpAndSimplexAgreeOnRandomNetworks(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 8; trial++ {
		numNodes := 4 + rng.Intn(3)
		source, sink := 0, numNodes-1
		n := maxflow.NewNetwork("random", source, sink)

		for u := 0; u < numNodes; u++ {
			for v := 0; v < numNodes; v++ {
				if u == v {
					continue
				}
				if rng.Float64() < 0.4 {
					require.NoError(t, n.AddEdge(u, v, 1+rng.Intn(10)))
				}
			}
		}

		ek, err := maxflow.NewEdmondsKarpSolver().Solve(n)
		require.NoError(t, err)
		sx, err := maxflow.NewSimplexSolver().Solve(n)
		require.NoError(t, err)

		assert.Equal(t, ek, sx, "trial %d", trial)
	}
}
