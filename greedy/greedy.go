// Package greedy provides the nearest-neighbour matcher: each column, in
// order, takes the cheapest row still free.
//
// It runs in O(r·c), needs no dual variables and gives no optimality
// guarantee; it is the baseline the Hungarian solver is measured against and
// a drop-in assign.Matcher when speed matters more than the optimum.
package greedy

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/matrix"
)

// Options configures a Matcher.
//   - Sentinel: pairs with cost ≥ Sentinel are flagged Forced.
//   - MaxCost: largest accepted cell value.
type Options struct {
	Sentinel float64
	MaxCost  float64
}

// DefaultOptions mirrors the hungarian package defaults so results from
// both matchers flag the same pairs.
func DefaultOptions() Options {
	return Options{Sentinel: 1e9, MaxCost: 1e15}
}

// Matcher is the greedy nearest-neighbour assign.Matcher. It holds no
// per-call state and is safe for concurrent use.
type Matcher struct {
	opts Options
}

var _ assign.Matcher = (*Matcher)(nil)

// New returns a Matcher using opts.
func New(opts Options) *Matcher {
	return &Matcher{opts: opts}
}

// Match runs the greedy pass over an r×c matrix. Columns are visited in
// index order; each takes the free row with the smallest cost, lowest row
// index on ties. When rows run out the remaining columns are reported in
// UnmatchedCols; rows never chosen are reported in UnmatchedRows.
//
// The context is checked before each column; on cancellation the columns
// handled so far are returned as a Partial result with ctx.Err().
//
// Errors: assign.ErrInvalidInput (nil matrix), assign.ErrInvalidCost.
//
// Complexity: O(r·c) time, O(r) extra space.
func (g *Matcher) Match(ctx context.Context, m matrix.Matrix) (assign.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := matrix.ValidateNotNil(m); err != nil {
		return assign.Result{}, fmt.Errorf("%w: %w", assign.ErrInvalidInput, err)
	}
	if err := matrix.ValidateCosts(m, g.opts.MaxCost); err != nil {
		if errors.Is(err, matrix.ErrOutOfRange) {
			return assign.Result{}, fmt.Errorf("%w: %w", assign.ErrInvalidInput, err)
		}
		return assign.Result{}, fmt.Errorf("%w: %w", assign.ErrInvalidCost, err)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		assignment = make([]int, rows)
		rowTaken   = make([]bool, rows)
		left       = rows
		i, j, best int
		c, bestC   float64
		err        error
		ctxErr     error
	)
	for i = 0; i < rows; i++ {
		assignment[i] = assign.Unassigned
	}
	for j = 0; j < cols && left > 0; j++ {
		if ctxErr = ctx.Err(); ctxErr != nil {
			break
		}
		best = assign.Unassigned
		for i = 0; i < rows; i++ {
			if rowTaken[i] {
				continue
			}
			if c, err = m.At(i, j); err != nil {
				return assign.Result{}, fmt.Errorf("%w: %w", assign.ErrInvalidInput, err)
			}
			if best == assign.Unassigned || c < bestC {
				best, bestC = i, c
			}
		}
		assignment[best] = j
		rowTaken[best] = true
		left--
	}

	res, err := assign.FromAssignment(m, assignment, g.opts.Sentinel)
	if err != nil {
		return assign.Result{}, fmt.Errorf("%w: %w", assign.ErrInvalidInput, err)
	}
	res.Partial = ctxErr != nil

	return res, ctxErr
}

// Match runs a default-configured greedy Matcher on m.
func Match(ctx context.Context, m matrix.Matrix) (assign.Result, error) {
	return New(DefaultOptions()).Match(ctx, m)
}
