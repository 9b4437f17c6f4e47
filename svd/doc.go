// Package svd estimates the dominant singular triplet (σ₁, u₁, v₁) of a real
// m×n operator A by power iteration, alternating A and Aᵀ so that AᵀA is
// never formed.
//
// Entry points:
//
//   - Dominant(ctx, op, opts...) runs one computation and returns a Result
//     carrying Sigma, U, V, the number of rounds and a terminal Status.
//   - DominantBatch(ctx, ops, workers, opts...) runs many computations on a
//     bounded errgroup, seeding item i with DeriveSeed(seed, i).
//
// Statuses:
//
//	Converged            |σ_check − σ_prev| < tol·max(1, σ_check)
//	MaxIterationsReached round budget spent (or ctx ended, see ErrInterrupted)
//	Degenerate           A·v == 0; zero triplet
//	Stalled              Aᵀ·u == 0; last σ and v kept
//
// Numerical outcomes are statuses, not errors. Errors are reserved for
// contract violations (ErrInvalidMaxIters, ErrInvalidTolerance,
// ErrInvalidDeadline, matrix.ErrNilMatrix, matrix.ErrInvalidDimensions,
// matrix.ErrNaNInf), operator failures and cancellation.
//
// Every run is deterministic for a given seed (seed 0 selects a fixed default
// stream). Logging goes through an injected zerolog.Logger and counters through
// an optional *Metrics bound to a Prometheus registry.
//
// Example:
//
//	A, _ := matrix.NewDenseFromRows([][]float64{{3, 1, 1}, {1, 3, 1}})
//	res, err := svd.Dominant(ctx, A, svd.WithTolerance(1e-10))
//	// res.Status == svd.Converged, res.Sigma ≈ 4.2426
package svd
