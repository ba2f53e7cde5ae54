// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All constructors, accessors and validators return these sentinels (possibly
// wrapped with call-site context via %w). Tests match them with errors.Is.
// No function in this package panics on user-triggered error conditions.

package matrix

import "errors"

// ERROR PRIORITY (enforced by validators and tests):
// nil -> shape -> per-cell numeric policy (NaN/Inf -> negative -> too large),
// cells scanned in row-major order, first offender wins.

var (
	// ErrInvalidDimensions is returned by NewDense when rows<=0 or cols<=0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged indicates that row slices passed to NewFromRows differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// At/Set MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (or generator) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf cost where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative cost.
	ErrNegative = errors.New("matrix: negative cost")

	// ErrCostTooLarge signals a finite cost above the configured ceiling.
	ErrCostTooLarge = errors.New("matrix: cost exceeds ceiling")
)
