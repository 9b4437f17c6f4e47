// SPDX-License-Identifier: MIT

// Package matrix: public interfaces.
// Matrix is the element-addressable view of a dense array; Operator is the
// capability the spectral routines actually consume (apply A and Aᵀ).
// Keeping them separate lets structured or matrix-free operators plug into
// svd without exposing At/Set.
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
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// Operator is a linear map A: ℝⁿ → ℝᵐ together with its adjoint Aᵀ: ℝᵐ → ℝⁿ.
//
// Contract:
//   - Rows() = m and Cols() = n are fixed for the lifetime of the operator.
//   - Apply writes dst = A·x with len(x) == Cols() and len(dst) == Rows().
//   - ApplyTranspose writes dst = Aᵀ·x with len(x) == Rows() and len(dst) == Cols().
//   - Both calls fully overwrite dst, never retain x or dst, and never mutate A.
//     An Operator may therefore be shared read-only across goroutines as long as
//     every goroutine supplies its own dst buffers.
//   - Length violations are reported as ErrDimensionMismatch (ErrNilMatrix for nil slices).
//
// Complexity: O(m·n) per call for dense storage.
type Operator interface {
	Rows() int
	Cols() int
	Apply(dst, x []float64) error
	ApplyTranspose(dst, x []float64) error
}
