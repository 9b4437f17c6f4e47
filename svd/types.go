package svd

import (
	"math"

	"github.com/katalvlaran/powersvd/matrix"
)

// Status is the terminal state of one power-iteration run.
//
//   - Converged: consecutive σ estimates agreed within tol.
//   - MaxIterationsReached: the round budget (or the ctx deadline) ran out;
//     the triplet is the best available estimate.
//   - Degenerate: A·v was exactly zero (zero matrix, or v in the null
//     space); the result is the zero triplet.
//   - Stalled: Aᵀ·u was exactly zero; the last σ and v are kept.
type Status int

const (
	// Converged: |σ_check − σ_prev| < tol·max(1, σ_check).
	Converged Status = iota + 1

	// MaxIterationsReached: budget exhausted without meeting the tolerance.
	MaxIterationsReached

	// Degenerate: zero triplet (σ=0, u=0, v=0).
	Degenerate

	// Stalled: the adjoint step broke down; last valid σ and v are returned.
	Stalled
)

// String returns the snake_case label used in logs and metrics.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case MaxIterationsReached:
		return "max_iterations_reached"
	case Degenerate:
		return "degenerate"
	case Stalled:
		return "stalled"
	default:
		return "unknown"
	}
}

// Result is the dominant singular triplet together with its terminal status.
//
// Invariants:
//   - Sigma ≥ 0.
//   - len(U) == op.Rows(), len(V) == op.Cols(); both are owned by the caller.
//   - Converged / MaxIterationsReached: ‖V‖₂ = 1 and U = A·V/Sigma when Sigma > 0
//     (U is the zero vector when Sigma == 0).
//   - Degenerate: Sigma == 0 and U, V are zero vectors.
//
// The signs of U and V are not canonical: (−U, −V) is an equally valid pair.
type Result struct {
	Status Status
	Sigma  float64
	U      []float64
	V      []float64

	// Rounds is the number of rounds executed (0 when iteration never started).
	Rounds int

	// Delta is the last |σ_check − σ_prev| observed; 0 when no round completed.
	Delta float64
}

// Residual returns ‖Aᵀ·U − Sigma·V‖₂, an a-posteriori quality measure of the
// triplet that does not depend on the convergence criterion. For an exact
// singular triplet it is 0.
//
// Errors: matrix.ErrDimensionMismatch when the result does not match op's
// shape, or whatever op.ApplyTranspose returns.
// Complexity: O(m·n).
func (r Result) Residual(op matrix.Operator) (float64, error) {
	if err := matrix.ValidateOperator(op); err != nil {
		return 0, svdErrorf(opResidual, err)
	}
	if err := matrix.ValidateVecLen(r.U, op.Rows()); err != nil {
		return 0, svdErrorf(opResidual, err)
	}
	if err := matrix.ValidateVecLen(r.V, op.Cols()); err != nil {
		return 0, svdErrorf(opResidual, err)
	}

	atu := make([]float64, op.Cols())
	if err := op.ApplyTranspose(atu, r.U); err != nil {
		return 0, svdErrorf(opResidual, err)
	}
	for j := range atu {
		atu[j] -= r.Sigma * r.V[j]
	}

	return matrix.Norm(atu), nil
}

// zeroTriplet builds the Degenerate result for an m×n operator.
func zeroTriplet(m, n, rounds int) Result {
	return Result{
		Status: Degenerate,
		Sigma:  0,
		U:      make([]float64, m),
		V:      make([]float64, n),
		Rounds: rounds,
	}
}

// converged applies the σ-difference criterion |σ_check − σ_prev| < tol·max(1, σ_check).
// It compares eigenvalue estimates of AᵀA, not directions; with σ₁/σ₂ ≈ 1 it
// can report convergence while v is still rotating.
func converged(sigmaCheck, sigmaPrev, tol float64) (bool, float64) {
	delta := math.Abs(sigmaCheck - sigmaPrev)

	return delta < tol*math.Max(1, sigmaCheck), delta
}
