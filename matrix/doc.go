// Package matrix provides dense row-major storage and the linear-operator
// surface consumed by the power-iteration engine in package svd.
//
// The matrix package provides:
//
//   - Dense: an r×c row-major float64 buffer with safe At/Set, Clone and a
//     per-instance NaN/Inf policy (see options.go).
//   - Operator: the capability interface (Rows, Cols, Apply, ApplyTranspose)
//     that lets structured or matrix-free maps replace Dense without touching
//     the iteration engine. *Dense is the default implementation.
//   - Vector primitives: Norm, Normalize (a no-op on the zero vector, which
//     callers use as a degeneracy signal), Dot, Distance.
//   - Validators returning tagged sentinels (ValidateOperator, ValidateFinite,
//     ValidateVecLen) and helpers such as CenterRows, FrobeniusNorm, Transpose.
//
// Errors are package-prefixed sentinels (errors.go); match them with errors.Is.
// Nothing in this package panics on user input.
package matrix
