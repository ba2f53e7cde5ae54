// SPDX-License-Identifier: MIT

// Package matrix - builders for cost matrices.
//
// NewFromRows and FromFunc are the two entry points callers use to hand costs
// to a solver: a literal table, or a generator cost(i, j) plus the extents.
// Both produce an owned *Dense, so later mutation of caller data never leaks
// into a running solve.
package matrix

import "fmt"

// NewFromRows copies a [][]float64 table into a new Dense.
//
// Behavior highlights:
//   - len(rows)==0 yields a 0×0 matrix (the empty assignment problem).
//   - Every row must have the same length, otherwise ErrRagged.
//   - A table of empty rows yields an r×0 matrix.
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	var r = len(rows)
	if r == 0 {
		return newDenseZeroOK(0, 0), nil
	}
	var c = len(rows[0])

	var i int
	for i = 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d cells, want %d: %w", i, len(rows[i]), c, ErrRagged)
		}
	}

	out := newDenseZeroOK(r, c)
	for i = 0; i < r; i++ {
		copy(out.data[i*c:(i+1)*c], rows[i])
	}

	return out, nil
}

// FromFunc evaluates fn for every (i, j) in [0,rows)×[0,cols) and stores the
// results row by row. rows==0 or cols==0 yields an empty matrix.
//
// Errors:
//   - ErrNilMatrix if fn is nil.
//   - ErrInvalidDimensions if rows<0 or cols<0.
//
// Complexity: O(r*c) calls to fn.
func FromFunc(rows, cols int, fn func(i, j int) float64) (*Dense, error) {
	if fn == nil {
		return nil, fmt.Errorf("FromFunc: %w", ErrNilMatrix)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("FromFunc: %w", ErrInvalidDimensions)
	}

	out := newDenseZeroOK(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out.data[i*cols+j] = fn(i, j)
		}
	}

	return out, nil
}

// Pad returns a square max(r,c)×max(r,c) copy of m whose added cells hold
// sentinel, together with m's original shape. A square m is copied as is.
//
// The sentinel should be a large but finite cost: padded pairs then look like
// "forced but expensive" pairings to a solver and never beat a real pair.
//
// Errors:
//   - ErrNilMatrix if m is nil.
//
// Complexity: O(n²) with n = max(r,c).
func Pad(m Matrix, sentinel float64) (*Dense, Shape, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, Shape{}, err
	}
	var (
		shape = Shape{Rows: m.Rows(), Cols: m.Cols()}
		n     = shape.Rows
	)
	if shape.Cols > n {
		n = shape.Cols
	}

	out := newDenseZeroOK(n, n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i >= shape.Rows || j >= shape.Cols {
				out.data[i*n+j] = sentinel
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, Shape{}, fmt.Errorf("Pad: %w", err)
			}
			out.data[i*n+j] = v
		}
	}

	return out, shape, nil
}
