// SPDX-License-Identifier: MIT
package assign

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

// MaxExhaustive is the largest n Exhaustive accepts (9! = 362880 bijections).
const MaxExhaustive = 9

// Exhaustive finds a minimum-cost bijection of a square matrix by enumerating
// every permutation in lexicographic order. Among equal-cost permutations the
// lexicographically smallest wins.
//
// It is the reference oracle for optimality tests; it performs no numeric
// policy checks beyond shape.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare (wrapped).
//   - ErrTooLarge if n > MaxExhaustive.
//
// Time complexity:  O(n · n!)
// Memory complexity: O(n²)
func Exhaustive(m matrix.Matrix) (Result, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return Result{}, fmt.Errorf("assign: Exhaustive: %w", err)
	}
	n := m.Rows()
	if n > MaxExhaustive {
		return Result{}, fmt.Errorf("assign: Exhaustive: n=%d: %w", n, ErrTooLarge)
	}

	// Snapshot costs once; the hot loop below touches only this table.
	var (
		cost = make([]float64, n*n)
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if cost[i*n+j], err = m.At(i, j); err != nil {
				return Result{}, err
			}
		}
	}

	var (
		perm    = make([]int, n)
		best    = make([]int, n)
		sum     float64
		bestSum float64
		seen    bool
	)
	for i = 0; i < n; i++ {
		perm[i] = i
	}
	for {
		sum = 0
		for i = 0; i < n; i++ {
			sum += cost[i*n+perm[i]]
		}
		if !seen || sum < bestSum {
			bestSum, seen = sum, true
			copy(best, perm)
		}
		if !nextPermutation(perm) {
			break
		}
	}

	return FromAssignment(m, best, inf)
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	var i = len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	var j = len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}
