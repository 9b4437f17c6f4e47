// SPDX-License-Identifier: MIT
// Package matrix: whole-matrix helpers around the spectral routines.
//
// Purpose:
//   - CenterRows: per-row demeaning (e.g. one return series per row) before a
//     dominant-factor extraction.
//   - FrobeniusNorm: ‖A‖_F, an upper bound for every singular value.
//   - Transpose: materialized Aᵀ, for comparing σ(A) against σ(Aᵀ).
//
// All helpers accept any Matrix, take a *Dense fast-path, and never mutate
// their input.

package matrix

import "fmt"

const (
	opCenterRows = "CenterRows"
	opFrobenius  = "FrobeniusNorm"
	opTranspose  = "Transpose"
)

// CenterRows subtracts each row's mean from that row.
// Implementation:
//   - Stage 1: Validate X (non-nil).
//   - Stage 2: Compute per-row means with a fixed j-order.
//   - Stage 3: Write x_ij − mean_i into a fresh Dense.
//
// Returns:
//   - *Dense: centered copy (r×c); inherits the numeric policy when X is *Dense.
//   - []float64: row means (len=r).
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for output (+ O(r) means).
//
// AI-Hints:
//   - Demean return series before Dominant so σ₁ measures co-movement
//     rather than drift.
func CenterRows(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}
	if err = copyInto(out, X); err != nil {
		return nil, nil, matrixErrorf(opCenterRows, err)
	}

	means := make([]float64, r)
	var i, j, base int
	var s float64
	for i = 0; i < r; i++ {
		base = i * c
		s = ZeroSum
		for j = 0; j < c; j++ {
			s += out.data[base+j]
		}
		means[i] = s / float64(c)
		for j = 0; j < c; j++ {
			out.data[base+j] -= means[i]
		}
	}

	return out, means, nil
}

// FrobeniusNorm returns sqrt(Σ a_ij²), accumulated with the scaling of Norm
// on both paths.
// Complexity: O(r*c), Space O(r+c) on the fallback path.
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobenius, err)
	}
	if d, ok := m.(*Dense); ok {
		return Norm(d.data), nil
	}

	// Fallback: scaled norm per row, then the scaled norm of the row norms,
	// so huge or tiny entries behave as on the fast path.
	rows, cols := m.Rows(), m.Cols()
	row := make([]float64, cols)
	rowNorms := make([]float64, rows)
	var i, j int
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if row[j], err = m.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobenius, err)
			}
		}
		rowNorms[i] = Norm(row)
	}

	return Norm(rowNorms), nil
}

// Transpose returns a new Dense with rows and columns swapped (mᵀ).
// Fast-path copies *Dense data via flat indexing; fallback uses At.
// Complexity: Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - If you only need Aᵀ·x, use ApplyTranspose/MatTVec instead of forming Aᵀ.
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		res.validateNaNInf = dm.validateNaNInf
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// copyInto copies src into dst (same shape assumed) without the Set policy,
// so a non-validating source is reproduced verbatim.
func copyInto(dst *Dense, src Matrix) error {
	if d, ok := src.(*Dense); ok {
		copy(dst.data, d.data)
		dst.validateNaNInf = d.validateNaNInf
		return nil
	}

	var i, j int
	var v float64
	var err error
	for i = 0; i < dst.r; i++ {
		for j = 0; j < dst.c; j++ {
			if v, err = src.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			dst.data[i*dst.c+j] = v
		}
	}

	return nil
}
