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

// Package assignment solves the linear assignment problem: given a
// rectangular cost matrix of workers and tasks, find the assignment of (at
// most) one task per worker that minimizes total cost. Two independent
// solvers are provided - Hungarian and reduction-to-LP - that are expected
// to agree on the optimal total cost.
package assignment

import "fmt"

// Problem is a rectangular non-negative cost matrix: Costs[worker][task].
type Problem struct {
	Costs [][]float64
}

// NewProblem validates that costs is rectangular and returns a Problem.
func NewProblem(costs [][]float64) (*Problem, error) {
	for i, row := range costs {
		if len(row) != len(costs[0]) {
			return nil, invalidInput(fmt.Sprintf("row %d has %d columns, row 0 has %d", i, len(row), len(costs[0])))
		}
	}
	return &Problem{Costs: costs}, nil
}

func (p *Problem) dims() (workers, tasks int) {
	workers = len(p.Costs)
	if workers > 0 {
		tasks = len(p.Costs[0])
	}
	return
}

// Assignment is the result of solving a Problem: the task assigned to each
// worker (-1 if none, which happens when there are more workers than
// tasks) and the total cost of the kept pairs.
type Assignment struct {
	TaskPerWorker []int
	TotalCost     float64
}

// normalizedProblem is Problem padded to a square matrix of side
// max(workers, tasks), with the added rows/columns filled with cost 0.
type normalizedProblem struct {
	original *Problem
	costs    [][]float64
	size     int
}

func normalize(p *Problem) *normalizedProblem {
	workers, tasks := p.dims()
	size := workers
	if tasks > size {
		size = tasks
	}

	costs := make([][]float64, size)
	for i := range costs {
		costs[i] = make([]float64, size)
		if i < workers {
			copy(costs[i], p.Costs[i])
		}
	}

	return &normalizedProblem{original: p, costs: costs, size: size}
}

func buildAssignment(p *Problem, tasks map[int]int) *Assignment {
	workers, taskCount := p.dims()
	assigned := make([]int, workers)
	for i := range assigned {
		assigned[i] = -1
	}
	for worker, task := range tasks {
		if worker < workers && task < taskCount {
			assigned[worker] = task
		}
	}

	total := 0.0
	for worker, task := range assigned {
		if task < 0 {
			continue
		}
		if c := p.Costs[worker][task]; c > 0 {
			total += c
		}
	}

	return &Assignment{TaskPerWorker: assigned, TotalCost: total}
}
