// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/length/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Shape → Finite.

package matrix

import (
	"fmt"
	"reflect"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil pointer stored in the interface is treated as nil as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if isNilPointer(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// isNilPointer reports a typed nil pointer stored in a non-nil interface.
// *Dense is checked without reflection.
func isNilPointer(v any) bool {
	if d, ok := v.(*Dense); ok {
		return d == nil
	}
	rv := reflect.ValueOf(v)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// ValidateOperator – Composite: NotNil → positive shape.
//
// Errors: ErrNilMatrix, ErrInvalidDimensions.
// Complexity: O(1).
// AI-Hints: Use as the first guard of any routine that iterates an Operator.
func ValidateOperator(op Operator) error {
	if op == nil {
		return validatorErrorf("ValidateOperator", ErrNilMatrix)
	}
	if isNilPointer(op) {
		return validatorErrorf("ValidateOperator", ErrNilMatrix)
	}
	if op.Rows() <= 0 || op.Cols() <= 0 {
		return validatorErrorf("ValidateOperator", ErrInvalidDimensions)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Nil vectors are rejected with ErrNilMatrix (the sentinel for "nil argument").
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and fails on the first NaN or ±Inf in row-major order.
//
// Implementation:
//   - Stage 1: ValidateNotNil.
//   - Stage 2: *Dense fast-path over the flat buffer; otherwise i→j At loop.
//
// Errors: ErrNilMatrix, ErrNaNInf (with coordinates), or a wrapped At error.
// Complexity: O(r*c), Space O(1).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateFinite", err)
	}

	if d, ok := m.(*Dense); ok {
		if err := d.firstNonFinite("ValidateFinite"); err != nil {
			return err
		}
		return nil
	}

	rows, cols := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}
