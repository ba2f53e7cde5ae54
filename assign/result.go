// SPDX-License-Identifier: MIT
package assign

import (
	"math"

	"github.com/katalvlaran/lvmatch/matrix"
)

// inf disables the Forced flag in FromAssignment.
var inf = math.Inf(1)

// FromAssignment builds a Result from a row→column slice over m.
// Rows mapped to Unassigned become UnmatchedRows; columns nobody took become
// UnmatchedCols. Pairs with cost ≥ forcedAt are flagged Forced (pass +Inf to
// disable the flag).
//
// The caller guarantees that every non-negative entry of assignment is a
// valid column and that no column repeats.
//
// Complexity: O(r + c).
func FromAssignment(m matrix.Matrix, assignment []int, forcedAt float64) (Result, error) {
	var (
		rows, cols = m.Rows(), m.Cols()
		taken      = make([]bool, cols)
		res        = Result{
			Pairs:      make([]Pair, 0, len(assignment)),
			Assignment: append([]int(nil), assignment...),
		}
		i, j int
		c    float64
		err  error
	)
	for i = 0; i < rows && i < len(assignment); i++ {
		j = assignment[i]
		if j == Unassigned {
			res.UnmatchedRows = append(res.UnmatchedRows, i)
			continue
		}
		if c, err = m.At(i, j); err != nil {
			return Result{}, err
		}
		taken[j] = true
		res.Pairs = append(res.Pairs, Pair{Row: i, Col: j, Cost: c, Forced: c >= forcedAt})
		res.Total += c
	}
	for j = 0; j < cols; j++ {
		if !taken[j] {
			res.UnmatchedCols = append(res.UnmatchedCols, j)
		}
	}

	return res, nil
}

// IsPermutation reports whether a is a permutation of 0..len(a)-1.
// Complexity: O(n) time and space.
func IsPermutation(a []int) bool {
	seen := make([]bool, len(a))
	for _, v := range a {
		if v < 0 || v >= len(a) || seen[v] {
			return false
		}
		seen[v] = true
	}

	return true
}
