// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Single source of truth for the checks solvers run before touching state.
//   - Return sentinels wrapped with a validator tag so call sites can match
//     them with errors.Is and still read where the violation was detected.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing on the success path.
//   - ValidateCosts scans cells in row-major order; the first offender wins.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
//
// Errors: ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("ValidateSquare: %dx%d: %w", m.Rows(), m.Cols(), ErrNonSquare)
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateCosts enforces the cost numeric policy on every cell of m:
//   - NaN, +Inf and -Inf are rejected with ErrNaNInf;
//   - negative values are rejected with ErrNegative;
//   - values above ceiling are rejected with ErrCostTooLarge.
//
// Pass math.Inf(1) as ceiling to accept any finite non-negative cost.
// A NaN ceiling is itself a numeric policy violation (ErrNaNInf).
// The wrapped message names the first offending cell in row-major order.
//
// Complexity: O(r*c) time, O(1) space.
func ValidateCosts(m Matrix, ceiling float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if math.IsNaN(ceiling) {
		return validatorErrorf("ValidateCosts: ceiling", ErrNaNInf)
	}

	var (
		rows, cols = m.Rows(), m.Cols()
		i, j       int
		v          float64
		err        error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateCosts", err)
			}
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				return fmt.Errorf("ValidateCosts(%d,%d): %w", i, j, ErrNaNInf)
			case v < 0:
				return fmt.Errorf("ValidateCosts(%d,%d)=%g: %w", i, j, v, ErrNegative)
			case v > ceiling:
				return fmt.Errorf("ValidateCosts(%d,%d)=%g: %w", i, j, v, ErrCostTooLarge)
			}
		}
	}

	return nil
}
