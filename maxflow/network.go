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

// Package maxflow computes the maximum flow of a capacitated directed
// network between a source and a sink node, by Edmonds-Karp augmentation or
// by reduction to an LP. Nodes are plain integers; edges are stored as a
// flat, indexed arena rather than a generic graph object, so the residual
// graph built from a Network owns no cyclic references.
package maxflow

import "fmt"

// edge is a directed, capacitated connection between two nodes.
type edge struct {
	from, to int
	capacity int
}

// Network is a directed graph with a designated source and sink node and
// non-negative integer edge capacities. Nodes are identified by plain
// integers and are registered implicitly as edges reference them.
type Network struct {
	name         string
	source, sink int
	numNodes     int
	edges        []edge
}

// NewNetwork creates an empty network with the given source and sink node.
func NewNetwork(name string, source, sink int) *Network {
	n := &Network{name: name, source: source, sink: sink}
	n.registerNode(source)
	n.registerNode(sink)
	return n
}

func (n *Network) registerNode(id int) {
	if id+1 > n.numNodes {
		n.numNodes = id + 1
	}
}

// AddEdge adds a directed edge of the given capacity from "from" to "to",
// registering both endpoints as nodes if they weren't already.
func (n *Network) AddEdge(from, to, capacity int) error {
	if capacity < 0 {
		return invalidNetwork(fmt.Sprintf("edge (%d -> %d) has negative capacity %d", from, to, capacity))
	}
	n.registerNode(from)
	n.registerNode(to)
	n.edges = append(n.edges, edge{from: from, to: to, capacity: capacity})
	return nil
}

// Source returns the network's source node.
func (n *Network) Source() int {
	return n.source
}

// Sink returns the network's sink node.
func (n *Network) Sink() int {
	return n.sink
}

func (n *Network) validate() error {
	if n.source == n.sink {
		return invalidNetwork("source and sink must be different nodes")
	}
	return nil
}
