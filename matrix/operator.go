// SPDX-License-Identifier: MIT
// Package matrix: the linear-operator surface.
//
// Purpose:
//   - *Dense implements Operator with buffer-reusing Apply/ApplyTranspose,
//     the hot path of every power-iteration round.
//   - MatVec/MatTVec are allocating facades over any Matrix, with a *Dense
//     fast-path and a bounds-safe At fallback.
//
// Determinism:
//   - Fixed loop orders everywhere (i-outer for A·x, i-outer/j-inner
//     accumulation for Aᵀ·x), so results are bit-reproducible.

package matrix

import "fmt"

// ZeroSum is the initial value for dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opApply          = "Apply"
	opApplyTranspose = "ApplyTranspose"
	opMatVec         = "MatVec"
	opMatTVec        = "MatTVec"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Apply computes dst = A·x.
// MAIN DESCRIPTION:
//   - Row-major dot products; dst is fully overwritten, A is never mutated.
//
// Implementation:
//   - Stage 1: validate len(x) == Cols and len(dst) == Rows.
//   - Stage 2: for each row i accumulate Σ_j a(i,j)·x(j) over the flat buffer.
//
// Errors:
//   - ErrNilMatrix (nil receiver or nil slice), ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond dst.
//
// Notes:
//   - dst and x must not alias: x is read while dst is written.
func (m *Dense) Apply(dst, x []float64) error {
	if m == nil {
		return matrixErrorf(opApply, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.c); err != nil {
		return matrixErrorf(opApply, err)
	}
	if err := ValidateVecLen(dst, m.r); err != nil {
		return matrixErrorf(opApply, err)
	}

	var i, j, base int
	var acc float64
	for i = 0; i < m.r; i++ {
		acc = ZeroSum
		base = i * m.c
		row := m.data[base : base+m.c]
		for j = 0; j < m.c; j++ {
			acc += row[j] * x[j]
		}
		dst[i] = acc
	}

	return nil
}

// ApplyTranspose computes dst = Aᵀ·x without materializing Aᵀ.
// MAIN DESCRIPTION:
//   - Streams A row by row (cache-friendly for row-major storage) and scatters
//     x(i)·a(i,·) into dst.
//
// Implementation:
//   - Stage 1: validate len(x) == Rows and len(dst) == Cols.
//   - Stage 2: zero dst, then for i=0..r-1 add x(i)·row_i to dst.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) beyond dst.
//
// Notes:
//   - dst and x must not alias.
func (m *Dense) ApplyTranspose(dst, x []float64) error {
	if m == nil {
		return matrixErrorf(opApplyTranspose, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return matrixErrorf(opApplyTranspose, err)
	}
	if err := ValidateVecLen(dst, m.c); err != nil {
		return matrixErrorf(opApplyTranspose, err)
	}

	var i, j, base int
	for j = 0; j < m.c; j++ {
		dst[j] = ZeroSum
	}
	var xi float64
	for i = 0; i < m.r; i++ {
		xi = x[i]
		if xi == 0 { // a zero coefficient contributes nothing
			continue
		}
		base = i * m.c
		row := m.data[base : base+m.c]
		for j = 0; j < m.c; j++ {
			dst[j] += row[j] * xi
		}
	}

	return nil
}

// MatVec computes y = m * x for a column vector x and returns a fresh slice.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Fast-path: *Dense delegates to Apply.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	if d, ok := m.(*Dense); ok {
		if err := d.Apply(y, x); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MatTVec computes y = mᵀ * x (len(x) == m.Rows()) and returns a fresh slice.
//
// Fast-path: *Dense delegates to ApplyTranspose.
// Fallback: same i-outer accumulation order as the fast-path, so both paths
// agree bitwise.
// Complexity: Time O(r*c), Space O(c) for y.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, cols)

	if d, ok := m.(*Dense); ok {
		if err := d.ApplyTranspose(y, x); err != nil {
			return nil, matrixErrorf(opMatTVec, err)
		}
		return y, nil
	}

	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		if x[i] == 0 {
			continue
		}
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatTVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[j] += mv * x[i]
		}
	}

	return y, nil
}
