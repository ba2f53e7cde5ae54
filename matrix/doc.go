// Package matrix holds the cost matrix consumed by the assignment solvers.
//
// What:
//
//   - Matrix: a minimal read/write interface over a 2D float64 table.
//   - Dense: a row-major implementation with bounds-checked At/Set.
//   - Builders: NewDense (zeros), NewFromRows ([][]float64, 0×0 allowed),
//     FromFunc (generator cost(i,j)).
//   - Pad: squares a rectangular matrix with a high-but-finite sentinel.
//   - Validators: nil, square and per-cell numeric policy checks.
//
// Why:
//
//	Assignment solvers need a square table of finite, non-negative costs.
//	Keeping construction and validation here lets solvers assume a clean
//	input and keeps every boundary check in one place.
//
// Complexity:
//
//   - At/Set: O(1). Clone, Pad, FromFunc, ValidateCosts: O(r*c).
//
// Errors:
//
//   - ErrInvalidDimensions, ErrRagged, ErrOutOfRange, ErrNilMatrix,
//     ErrNonSquare, ErrNaNInf, ErrNegative, ErrCostTooLarge.
package matrix
