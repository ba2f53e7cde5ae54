// SPDX-License-Identifier: MIT

// Package hungarian - public entry points.
//
// Every entry point validates before any solver state exists, allocates its
// own Solver, and releases it on return, so concurrent calls never share
// mutable state.
package hungarian

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/matrix"
)

// Solve returns a minimum-cost perfect matching of a square cost matrix.
//
// Contracts:
//   - m must be non-nil and n×n, n ≥ 0; n == 0 yields an empty Solution.
//   - Every cell must be finite, ≥ 0 and ≤ the ceiling (WithMaxCost).
//   - m is read once into an owned snapshot and not retained.
//
// Errors: ErrInvalidInput, ErrInvalidCost, or ctx.Err() with a Partial
// Solution when WithContext is cancelled mid-solve.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(m matrix.Matrix, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	s := &Solver{opts: o}

	return s.Solve(o.ctx, m)
}

// SolveFunc solves the n×n problem whose costs are given by cost(i, j).
// The generator is evaluated exactly once per cell, before solving.
//
// Errors: ErrInvalidInput for a nil generator or negative n, otherwise as Solve.
func SolveFunc(n int, cost func(i, j int) float64, opts ...Option) (*Solution, error) {
	m, err := matrix.FromFunc(n, n, cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return Solve(m, opts...)
}

// SolveRectangular solves an r×c problem by padding the short side with the
// sentinel (WithSentinel) and solving the resulting square problem.
//
// Rows paired with a padded column are reported Unassigned and listed in
// UnmatchedRows; columns paired with a padded row are listed in
// UnmatchedCols. Nothing is dropped silently. Total, Pairs and the
// potentials cover the real r×c cells only.
//
// A square m is solved as by Solve.
//
// Complexity: O(max(r,c)³).
func SolveRectangular(m matrix.Matrix, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)
	if err := validateCosts(m, o); err != nil {
		return nil, err
	}
	shape := matrix.Shape{Rows: m.Rows(), Cols: m.Cols()}
	if shape.Square() {
		return (&Solver{opts: o}).Solve(o.ctx, m)
	}

	padded, _, err := matrix.Pad(m, o.sentinel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	// Real cells were checked against the ceiling above; the padded
	// problem must also admit the sentinel itself.
	po := o
	po.maxCost = max(po.maxCost, po.sentinel)
	sq, err := (&Solver{opts: po}).Solve(o.ctx, padded)
	if sq == nil {
		return nil, err
	}

	return trimPadding(sq, shape), err
}

// trimPadding maps a padded square Solution back onto the original shape.
// Complexity: O(n).
func trimPadding(sq *Solution, shape matrix.Shape) *Solution {
	var (
		out = &Solution{
			Result: assign.Result{
				Pairs:      make([]assign.Pair, 0, min(shape.Rows, shape.Cols)),
				Assignment: make([]int, shape.Rows),
				Partial:    sq.Partial,
			},
			RowPotentials: append([]float64(nil), sq.RowPotentials[:shape.Rows]...),
			ColPotentials: append([]float64(nil), sq.ColPotentials[:shape.Cols]...),
		}
		taken = make([]bool, shape.Cols)
		i, j  int
	)
	for i = 0; i < shape.Rows; i++ {
		out.Assignment[i] = assign.Unassigned
	}
	for _, pr := range sq.Pairs {
		if pr.Row >= shape.Rows || pr.Col >= shape.Cols {
			continue
		}
		out.Assignment[pr.Row] = pr.Col
		out.Pairs = append(out.Pairs, pr)
		out.Total += pr.Cost
		taken[pr.Col] = true
	}
	for i = 0; i < shape.Rows; i++ {
		if out.Assignment[i] == assign.Unassigned {
			out.UnmatchedRows = append(out.UnmatchedRows, i)
		}
	}
	for j = 0; j < shape.Cols; j++ {
		if !taken[j] {
			out.UnmatchedCols = append(out.UnmatchedCols, j)
		}
	}

	return out
}

// Matcher adapts the Hungarian solver to assign.Matcher. Rectangular inputs
// are padded (see SolveRectangular). A Matcher holds only options and is safe
// for concurrent use.
type Matcher struct {
	opts []Option
}

var _ assign.Matcher = (*Matcher)(nil)

// NewMatcher returns a Matcher that applies opts to every solve.
func NewMatcher(opts ...Option) *Matcher {
	return &Matcher{opts: append([]Option(nil), opts...)}
}

// Match solves m under ctx and returns the public part of the Solution.
func (hm *Matcher) Match(ctx context.Context, m matrix.Matrix) (assign.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opts := append(append([]Option(nil), hm.opts...), WithContext(ctx))
	sol, err := SolveRectangular(m, opts...)
	if sol == nil {
		return assign.Result{}, err
	}

	return sol.Result, err
}
