// SPDX-License-Identifier: MIT
package hungarian

import (
	"errors"

	"github.com/katalvlaran/lvmatch/assign"
)

var (
	// ErrInvalidInput is returned for structurally invalid input: a nil
	// matrix, a nil generator or a non-square matrix passed to Solve.
	// It is the shared assign.ErrInvalidInput, so errors.Is matches either.
	ErrInvalidInput = assign.ErrInvalidInput

	// ErrInvalidCost is returned when a cost is NaN, ±Inf, negative or above
	// the configured ceiling. Alias of assign.ErrInvalidCost.
	ErrInvalidCost = assign.ErrInvalidCost

	// ErrNotBijection is returned by Verify when the assignment is not a
	// permutation of 0..n-1.
	ErrNotBijection = errors.New("hungarian: assignment is not a bijection")

	// ErrTotalMismatch is returned by Verify when Total differs from the sum
	// of the matched costs.
	ErrTotalMismatch = errors.New("hungarian: total does not match assignment")

	// ErrInfeasible is returned by Verify when u[i]+v[j] > c[i][j] for some cell.
	ErrInfeasible = errors.New("hungarian: potentials are infeasible")

	// ErrSlackness is returned by Verify when a matched pair has non-zero
	// reduced cost.
	ErrSlackness = errors.New("hungarian: complementary slackness violated")
)

// Solution is the outcome of a solve: the public assignment plus the dual
// certificate proving its optimality.
type Solution struct {
	assign.Result

	// RowPotentials (u) and ColPotentials (v) satisfy u[i]+v[j] ≤ c[i][j]
	// for every cell, with equality on matched pairs.
	RowPotentials []float64
	ColPotentials []float64
}
