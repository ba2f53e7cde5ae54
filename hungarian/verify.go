// SPDX-License-Identifier: MIT
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatch/assign"
	"github.com/katalvlaran/lvmatch/matrix"
)

// Verify checks that sol is an optimal, complete assignment of the square
// matrix m by checking its dual certificate:
//   - Assignment is a permutation of 0..n-1 (ErrNotBijection);
//   - Total equals Σ m[i][Assignment[i]] (ErrTotalMismatch);
//   - u[i]+v[j] ≤ m[i][j] for every cell (ErrInfeasible);
//   - u[i]+v[j] = m[i][j] for every matched pair (ErrSlackness).
//
// Comparisons use the WithEpsilon tolerance (DefaultEpsilon otherwise)
// scaled by the magnitude of the operands, max(1, |c|, |u|, |v|).
// A feasible dual with zero slack on a perfect matching proves optimality,
// so Verify needs no brute force.
//
// Complexity: O(n²).
func Verify(m matrix.Matrix, sol *Solution, opts ...Option) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if sol == nil {
		return fmt.Errorf("Verify: nil solution: %w", ErrNotBijection)
	}
	var (
		eps = gatherOptions(opts...).eps
		n   = m.Rows()
	)
	if sol.Partial || len(sol.Assignment) != n || !assign.IsPermutation(sol.Assignment) {
		return fmt.Errorf("Verify: %v: %w", sol.Assignment, ErrNotBijection)
	}
	if len(sol.RowPotentials) != n || len(sol.ColPotentials) != n {
		return fmt.Errorf("Verify: potentials have %d/%d entries, want %d: %w",
			len(sol.RowPotentials), len(sol.ColPotentials), n, ErrInfeasible)
	}

	var (
		i, j   int
		c      float64
		sum    float64
		u, v   float64
		reduce float64
		err    error
	)
	for i = 0; i < n; i++ {
		u = sol.RowPotentials[i]
		for j = 0; j < n; j++ {
			if c, err = m.At(i, j); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidInput, err)
			}
			v = sol.ColPotentials[j]
			reduce = c - u - v
			if reduce < -tolerance(eps, c, u, v) {
				return fmt.Errorf("Verify(%d,%d): u+v-c=%g: %w", i, j, -reduce, ErrInfeasible)
			}
			if j == sol.Assignment[i] {
				sum += c
				if math.Abs(reduce) > tolerance(eps, c, u, v) {
					return fmt.Errorf("Verify(%d,%d): reduced cost %g: %w", i, j, reduce, ErrSlackness)
				}
			}
		}
	}
	if math.Abs(sum-sol.Total) > tolerance(eps, sum, sol.Total, 0) {
		return fmt.Errorf("Verify: total %g, recomputed %g: %w", sol.Total, sum, ErrTotalMismatch)
	}

	return nil
}

// tolerance scales eps by the largest magnitude among the operands.
func tolerance(eps float64, a, b, c float64) float64 {
	return eps * math.Max(1, math.Max(math.Abs(a), math.Max(math.Abs(b), math.Abs(c))))
}
