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

// EdmondsKarpSolver computes max flow by repeatedly finding a shortest
// augmenting path (by edge count, via BFS) in the residual graph and
// pushing flow along it until none remains. It carries no state and is
// safe to reuse.
type EdmondsKarpSolver struct{}

// NewEdmondsKarpSolver returns a ready-to-use solver.
func NewEdmondsKarpSolver() *EdmondsKarpSolver {
	return &EdmondsKarpSolver{}
}

// Solve returns the maximum flow from n's source to its sink.
func (s *EdmondsKarpSolver) Solve(n *Network) (int, error) {
	if err := n.validate(); err != nil {
		return 0, err
	}

	g := buildResidualGraph(n)
	maxFlow := 0
	for {
		path, ok := g.findAugmentingPath(n.source, n.sink)
		if !ok {
			break
		}
		maxFlow += g.augment(path)
	}
	return maxFlow, nil
}
