// Package svd: sentinel error set.
// Contract violations are reported before the first round; numerical
// outcomes (Degenerate, Stalled, MaxIterationsReached) are Result.Status
// values and never errors.
package svd

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMaxIters is returned when the round budget is not positive.
	ErrInvalidMaxIters = errors.New("svd: max iterations must be > 0")

	// ErrInvalidTolerance is returned when tol is not a finite positive number.
	ErrInvalidTolerance = errors.New("svd: tolerance must be finite and > 0")

	// ErrInvalidDeadline is returned for a negative wall-clock deadline.
	ErrInvalidDeadline = errors.New("svd: deadline must be >= 0")

	// ErrInterrupted reports that ctx was cancelled or its deadline expired
	// between rounds. The accompanying Result holds the best estimate so far,
	// and the error also wraps ctx.Err().
	ErrInterrupted = errors.New("svd: iteration interrupted")
)

// Operation tags for error wrapping.
const (
	opDominant = "Dominant"
	opBatch    = "DominantBatch"
	opResidual = "Residual"
)

// svdErrorf wraps err with an operation tag, preserving it for errors.Is.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
