// SPDX-License-Identifier: MIT

// Package matrix: public Matrix interface.
// Solvers in this module read costs only through this interface, so callers
// may plug in their own storage (e.g. a lazily evaluated distance table).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Shape is a (rows, cols) pair, used to remember the original extent of a
// matrix after padding.
type Shape struct {
	Rows int // number of rows
	Cols int // number of columns
}

// Square reports whether the shape is n×n.
func (s Shape) Square() bool { return s.Rows == s.Cols }
