// SPDX-License-Identifier: MIT
package hungarian

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

// validateSquare runs the boundary checks Solve relies on, in priority order:
// nil → shape → per-cell numeric policy. Nothing is allocated or mutated
// before it returns nil.
//
// Complexity: O(n²).
func validateSquare(m matrix.Matrix, o Options) error {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return validateCosts(m, o)
}

// validateCosts checks every cell of a (possibly rectangular) matrix against
// the numeric policy. A cell the matrix itself cannot return is a structural
// problem, everything else is a cost problem.
func validateCosts(m matrix.Matrix, o Options) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	err := matrix.ValidateCosts(m, o.maxCost)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, matrix.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidCost, err)
	}
}
