// SPDX-License-Identifier: MIT

// Package hungarian - the Kuhn–Munkres kernel.
//
// State per solve (all owned by the Solver, reset at the start of a call):
//
//	cost  n·n   row-major snapshot of the input, immutable during the call
//	u     n     row potentials
//	v     n+1   column potentials; index n is the virtual root column
//	p     n+1   p[j] = row matched to column j, or free; p[n] = row being added
//	way   n+1   way[j] = previous column on the alternating path to j
//	minv  n+1   slack of column j w.r.t. the current tree
//	used  n+1   column j is in the tree
//
// Invariant after every potential update: u[i]+v[j] ≤ cost[i][j] for all
// real cells, with equality on every matched pair.
package hungarian

import (
	"context"
	"math"
	"sync"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/matrix"
)

// free marks a column without a matched row in p.
const free = -1

// unreached is the initial slack of a column not yet relaxed from the tree.
// It only ever takes part in comparisons: every unvisited column is relaxed
// before delta is chosen, so delta itself is always a real reduced cost.
const unreached = math.MaxFloat64

// Solver is a reusable Kuhn–Munkres instance. It keeps its working buffers
// between calls to avoid reallocation across repeated dispatch rounds.
// Calls on one Solver are serialized; use one Solver per goroutine (or the
// package-level Solve) to run solves in parallel.
type Solver struct {
	mu   sync.Mutex
	opts Options

	n    int
	cost []float64
	u    []float64
	v    []float64
	p    []int
	way  []int
	minv []float64
	used []bool
}

// NewSolver returns a Solver configured with opts. WithContext is ignored
// here; pass a context to Solve instead.
func NewSolver(opts ...Option) *Solver {
	return &Solver{opts: gatherOptions(opts...)}
}

// Solve validates m and returns a minimum-cost assignment of its rows to its
// columns. m must be square; see SolveRectangular for r×c inputs.
//
// On cancellation of ctx the returned Solution is Partial: rows matched so far
// keep their columns (and the dual certificate for them), the rest are
// Unassigned, and the error is ctx.Err().
//
// Complexity: O(n³) time; buffers are reused, so repeated calls on the same n
// allocate only the returned slices.
func (s *Solver) Solve(ctx context.Context, m matrix.Matrix) (*Solution, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := validateSquare(m, s.opts); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(m); err != nil {
		return nil, err
	}
	rows, err := s.run(ctx)

	return s.extract(rows), err
}

// load resets all buffers for an n×n problem and snapshots the costs.
// Complexity: O(n²).
func (s *Solver) load(m matrix.Matrix) error {
	var n = m.Rows()
	s.n = n
	s.cost = growFloat(s.cost, n*n)
	s.u = growFloat(s.u, n)
	s.v = growFloat(s.v, n+1)
	s.minv = growFloat(s.minv, n+1)
	s.p = growInt(s.p, n+1)
	s.way = growInt(s.way, n+1)
	if cap(s.used) < n+1 {
		s.used = make([]bool, n+1)
	}
	s.used = s.used[:n+1]

	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if s.cost[i*n+j], err = m.At(i, j); err != nil {
				return err
			}
		}
		s.u[i] = 0
	}
	for j = 0; j <= n; j++ {
		s.v[j] = 0
		s.p[j] = free
		s.way[j] = free
	}

	return nil
}

// run adds rows 0..n-1 to the matching one at a time. It returns how many
// rows were fully processed, which is n unless ctx was cancelled.
func (s *Solver) run(ctx context.Context) (int, error) {
	var i int
	for i = 0; i < s.n; i++ {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		s.augment(i)
	}

	return s.n, nil
}

// augment grows an alternating tree rooted at the virtual column n holding
// row i, until it reaches a free column, then flips the path.
//
// Steps:
//  1. Mark the current column visited; its row i0 becomes the tree source.
//  2. Relax every unvisited column j from i0 (slack = c[i0][j]-u[i0]-v[j]),
//     remembering the parent column, and pick the minimum-slack column j1
//     (lowest index on ties).
//  3. Shift potentials by delta = minv[j1]: tree rows +delta, tree columns
//     −delta, unvisited slacks −delta. Feasibility is preserved and j1 now
//     has zero reduced cost.
//  4. If j1 is free stop, otherwise continue from it.
//  5. Walk way[] back to the root, shifting each column's row one step.
//
// Complexity: O(n²); at most n columns join the tree, each costing O(n).
func (s *Solver) augment(i int) {
	var (
		n      = s.n
		root   = n
		j0     = root
		j1     int
		i0     int
		j      int
		delta  float64
		cur    float64
		rowOff int
	)
	for j = 0; j <= n; j++ {
		s.minv[j] = unreached
		s.used[j] = false
	}
	s.p[root] = i

	for {
		s.used[j0] = true
		i0 = s.p[j0]
		rowOff = i0 * n
		delta = unreached
		j1 = free

		for j = 0; j < n; j++ {
			if s.used[j] {
				continue
			}
			cur = s.cost[rowOff+j] - s.u[i0] - s.v[j]
			if cur < s.minv[j] {
				s.minv[j] = cur
				s.way[j] = j0
			}
			if s.minv[j] < delta {
				delta = s.minv[j]
				j1 = j
			}
		}

		for j = 0; j <= n; j++ {
			if s.used[j] {
				s.u[s.p[j]] += delta
				s.v[j] -= delta
			} else {
				s.minv[j] -= delta
			}
		}

		j0 = j1
		if s.p[j0] == free {
			break
		}
	}

	for j0 != root {
		j1 = s.way[j0]
		s.p[j0] = s.p[j1]
		j0 = j1
	}
}

// extract turns the column→row pointers into the public Solution. Only the
// first `rows` rows can be matched; the remainder are reported Unassigned.
// Returned slices are fresh copies, never aliases of Solver buffers.
//
// Complexity: O(n).
func (s *Solver) extract(rows int) *Solution {
	var (
		n   = s.n
		sol = &Solution{
			Result: assign.Result{
				Pairs:      make([]assign.Pair, 0, rows),
				Assignment: make([]int, n),
				Partial:    rows < n,
			},
			RowPotentials: make([]float64, n),
			ColPotentials: make([]float64, n),
		}
		i, j int
		c    float64
	)
	for i = 0; i < n; i++ {
		sol.Assignment[i] = assign.Unassigned
	}
	for j = 0; j < n; j++ {
		if s.p[j] != free {
			sol.Assignment[s.p[j]] = j
		}
	}
	for i = 0; i < n; i++ {
		j = sol.Assignment[i]
		if j == assign.Unassigned {
			sol.UnmatchedRows = append(sol.UnmatchedRows, i)
			continue
		}
		c = s.cost[i*n+j]
		sol.Pairs = append(sol.Pairs, assign.Pair{Row: i, Col: j, Cost: c, Forced: c >= s.opts.sentinel})
		sol.Total += c
	}
	for j = 0; j < n; j++ {
		if s.p[j] == free {
			sol.UnmatchedCols = append(sol.UnmatchedCols, j)
		}
	}
	copy(sol.RowPotentials, s.u[:n])
	copy(sol.ColPotentials, s.v[:n])

	return sol
}

// growFloat returns buf resliced to n, allocating only when capacity is short.
func growFloat(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}

// growInt returns buf resliced to n, allocating only when capacity is short.
func growInt(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}

	return buf[:n]
}
