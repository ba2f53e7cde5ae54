// SPDX-License-Identifier: MIT
package assign

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvmatch/matrix"
)

var (
	// ErrInvalidInput is the structural failure class shared by all matchers:
	// nil matrix, nil generator, or a shape the matcher does not accept.
	ErrInvalidInput = errors.New("assign: invalid input")

	// ErrInvalidCost is the value-level failure class shared by all matchers:
	// a NaN, ±Inf, negative or above-ceiling cost.
	ErrInvalidCost = errors.New("assign: invalid cost")

	// ErrTooLarge is returned by Exhaustive when n exceeds MaxExhaustive.
	ErrTooLarge = errors.New("assign: instance too large for exhaustive search")
)

// Unassigned marks a row with no column in Result.Assignment.
const Unassigned = -1

// Pair is one matched (row, column) edge.
type Pair struct {
	Row  int     // row index (worker, driver)
	Col  int     // column index (task, passenger)
	Cost float64 // cost[Row][Col] taken from the input matrix

	// Forced is true when Cost reached the sentinel: the pairing was only
	// made because every cheaper alternative was taken.
	Forced bool
}

// Result holds the outcome of a matcher.
type Result struct {
	// Pairs lists matched edges ordered by Row ascending.
	Pairs []Pair

	// Assignment[row] = column, or Unassigned. len(Assignment) == number of rows.
	Assignment []int

	// Total is the sum of Pairs[k].Cost.
	Total float64

	// UnmatchedRows and UnmatchedCols list indices left without a partner,
	// ascending. Both are empty for a complete square solve.
	UnmatchedRows []int
	UnmatchedCols []int

	// Partial is true when the matcher stopped before completion (e.g. the
	// context was cancelled). Total is then not optimal.
	Partial bool
}

// Len returns the number of matched pairs.
func (r Result) Len() int { return len(r.Pairs) }

// Complete reports whether every row and every column is matched.
func (r Result) Complete() bool {
	return !r.Partial && len(r.UnmatchedRows) == 0 && len(r.UnmatchedCols) == 0
}

// Matcher pairs rows with columns of a cost matrix.
// Implementations must not retain m after Match returns.
type Matcher interface {
	Match(ctx context.Context, m matrix.Matrix) (Result, error)
}

// MatcherFunc adapts a plain function to Matcher.
type MatcherFunc func(ctx context.Context, m matrix.Matrix) (Result, error)

// Match calls f(ctx, m).
func (f MatcherFunc) Match(ctx context.Context, m matrix.Matrix) (Result, error) {
	return f(ctx, m)
}
