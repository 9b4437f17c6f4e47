// SPDX-License-Identifier: MIT
// Package matrix: dense vector primitives used by the spectral routines.
//
// Norm follows the scaled sum-of-squares scheme of reference BLAS dnrm2, so
// vectors with entries near the float64 limits neither overflow nor flush to
// zero. Norm(x) == 0 holds exactly when every entry is zero, which is what
// Normalize relies on to report degeneracy.

package matrix

import "math"

// Norm returns the Euclidean (L2) norm of x. Empty or nil x yields 0.
// Complexity: O(len(x)), no allocations.
func Norm(x []float64) float64 {
	var (
		scale = 0.0 // running max |x_i|
		ssq   = 1.0 // sum of (x_i/scale)^2
		ax    float64
		r     float64
	)
	for _, xi := range x {
		if xi == 0 {
			continue
		}
		ax = math.Abs(xi)
		if scale < ax {
			r = scale / ax
			ssq = 1 + ssq*r*r
			scale = ax
		} else {
			r = ax / scale
			ssq += r * r
		}
	}
	if scale == 0 {
		return 0
	}

	return scale * math.Sqrt(ssq)
}

// Normalize divides every entry of x by Norm(x) in place and returns that norm.
//
// Behavior highlights:
//   - When the norm is exactly 0 the vector is left untouched and 0 is
//     returned. Callers treat this as the degeneracy signal; it is not an error.
//
// Complexity: O(len(x)).
func Normalize(x []float64) float64 {
	n := Norm(x)
	if n == 0 {
		return 0
	}
	for i := range x {
		x[i] /= n
	}

	return n
}

// Dot returns Σ a_i·b_i over the common prefix of a and b.
func Dot(a, b []float64) float64 {
	k := min(len(a), len(b))
	s := ZeroSum
	for i := 0; i < k; i++ {
		s += a[i] * b[i]
	}

	return s
}

// Distance returns ‖a − b‖₂ over the common prefix of a and b.
func Distance(a, b []float64) float64 {
	k := min(len(a), len(b))
	diff := make([]float64, k)
	for i := 0; i < k; i++ {
		diff[i] = a[i] - b[i]
	}

	return Norm(diff)
}
