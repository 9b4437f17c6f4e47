// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(r*c) copy + scan; At/Set: O(1); Clone: O(r*c).
package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"           // method tag used in error wrappers
	ctxSet       = "Set"          // method tag used in error wrappers
	ctxNewFrom   = "NewDenseFrom" // ctor tag
	ctxNewFromRw = "NewDenseFromRows"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Shape: "Dense.<method>(row,col): <sentinel>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set and constructors.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Operator     = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols), // make() zero-fills deterministically
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom builds an r×c Dense from a flat row-major buffer.
// MAIN DESCRIPTION:
//   - Copies data (the caller keeps ownership of its slice) and enforces the
//     numeric policy on every element.
//
// Implementation:
//   - Stage 1: validate shape, then len(data) == rows*cols.
//   - Stage 2: copy into a fresh buffer.
//   - Stage 3: when validation is on, scan for NaN/±Inf in row-major order.
//
// Errors:
//   - ErrInvalidDimensions, ErrNilMatrix (nil data), ErrDimensionMismatch,
//     ErrNaNInf (wrapped with the first offending coordinates).
//
// Determinism:
//   - Fixed scan order; the reported coordinates are the first offender in row-major order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	d, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	if err = ValidateVecLen(data, rows*cols); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFrom, err)
	}
	copy(d.data, data)

	if d.validateNaNInf {
		if err = d.firstNonFinite(ctxNewFrom); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// NewDenseFromRows builds a Dense from a rectangular [][]float64 literal.
// Every row must have the same, non-zero length.
//
// Errors: ErrInvalidDimensions (no rows / empty rows), ErrRaggedRows, ErrNaNInf.
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxNewFromRw, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	d, err := NewDense(r, c, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxNewFromRw, err)
	}

	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w",
				ctxNewFromRw, i, len(rows[i]), c, ErrRaggedRows)
		}
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	if d.validateNaNInf {
		if err = d.firstNonFinite(ctxNewFromRw); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// firstNonFinite returns a wrapped ErrNaNInf for the first non-finite cell, or nil.
func (m *Dense) firstNonFinite(method string) error {
	var off int
	for off = 0; off < len(m.data); off++ {
		if isNonFinite(m.data[off]) {
			return denseErrorf(method, off/m.c, off%m.c, ErrNaNInf)
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v under the validating policy.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// RawRowView returns row i as a slice aliasing the backing buffer.
// Mutating the slice mutates the matrix and bypasses the numeric policy.
// Returns ErrOutOfRange for an invalid row.
func (m *Dense) RawRowView(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("RawRowView", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Values use strconv 'g' formatting with the shortest exact representation.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatFloat(m.data[base+j], 'g', -1, 64))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
