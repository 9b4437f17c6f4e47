// SPDX-License-Identifier: MIT

package svd

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/powersvd/matrix"
)

// Dominant computes the dominant singular triplet (σ₁, u₁, v₁) of op by
// alternating power iteration on A and Aᵀ.
//
// Algorithm Outline:
//  1. Init: v ← U[-1,1]ⁿ from the seeded stream, normalized (re-drawn if all zero).
//  2. Each round: Av = A·v, σ_new = ‖Av‖ (0 ⇒ Degenerate); u = Av/σ_new;
//     v' = Aᵀ·u (‖v'‖ = 0 ⇒ Stalled); normalize v'; σ_check = ‖A·v'‖;
//     stop as Converged when |σ_check − σ_prev| < tol·max(1, σ_check);
//     otherwise v = v', σ_prev = σ_check.
//  3. Finalize (every state except Degenerate): u = A·v/σ, or u = 0 when σ = 0,
//     so the returned pair is consistent with the returned v.
//
// Errors (all before the first round, never for numerical outcomes):
//   - ErrInvalidMaxIters, ErrInvalidTolerance, ErrInvalidDeadline;
//   - matrix.ErrNilMatrix, matrix.ErrInvalidDimensions (ValidateOperator);
//   - matrix.ErrNaNInf when op is also a matrix.Matrix holding NaN/±Inf.
//
// During iteration an error is returned only when op itself fails, or when
// ctx ends: then the finalized best estimate (Status MaxIterationsReached) is
// returned together with an error wrapping ErrInterrupted and ctx.Err().
//
// Determinism:
//   - Fixed loop orders and a per-call seeded generator: identical inputs
//     give bit-identical Results.
//
// Complexity:
//   - Time O(rounds·m·n) (three operator applications per round),
//     Space O(m + n) working buffers allocated once per call.
//
// Concurrency:
//   - op is only read; concurrent calls on the same op are safe when op honors
//     the Operator contract.
func Dominant(ctx context.Context, op matrix.Operator, opts ...Option) (Result, error) {
	o := gatherOptions(opts...)

	if err := o.validate(); err != nil {
		o.metrics.observe(labelRejected, 0)
		return Result{}, svdErrorf(opDominant, err)
	}
	if err := validateInput(op); err != nil {
		o.metrics.observe(labelRejected, 0)
		return Result{}, svdErrorf(opDominant, err)
	}

	if ctx == nil {
		ctx = context.Background()
	}
	if o.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.deadline)
		defer cancel()
	}

	e := newEngine(op, o)
	res, err := e.run(ctx)
	e.report(res, err)
	if err != nil {
		return res, svdErrorf(opDominant, err)
	}

	return res, nil
}

// validateInput: operator shape, then finiteness for matrix-backed operators.
func validateInput(op matrix.Operator) error {
	if err := matrix.ValidateOperator(op); err != nil {
		return err
	}
	if m, ok := op.(matrix.Matrix); ok {
		if err := matrix.ValidateFinite(m); err != nil {
			return err
		}
	}

	return nil
}

// engine owns the working buffers of one Dominant call.
type engine struct {
	op       matrix.Operator
	m, n     int
	maxIters int
	tol      float64
	seed     int64
	log      zerolog.Logger
	metrics  *Metrics

	v     []float64 // current right vector (unit length after init)
	vNext []float64 // candidate right vector
	av    []float64 // scratch for A·v
	u     []float64 // left vector of the current round
}

func newEngine(op matrix.Operator, o Options) *engine {
	m, n := op.Rows(), op.Cols()

	return &engine{
		op:       op,
		m:        m,
		n:        n,
		maxIters: o.maxIters,
		tol:      o.tol,
		seed:     o.seed,
		log:      o.logger,
		metrics:  o.metrics,
		v:        make([]float64, n),
		vNext:    make([]float64, n),
		av:       make([]float64, m),
		u:        make([]float64, m),
	}
}

// seedVector draws the initial unit vector; false means every draw was zero.
func (e *engine) seedVector() bool {
	rng := rngFromSeed(e.seed)
	for draw := 0; draw < maxSeedDraws; draw++ {
		fillUniform(e.v, rng)
		if matrix.Normalize(e.v) != 0 {
			return true
		}
	}

	return false
}

// run executes Init → Iterate and hands the surviving state to finalize.
func (e *engine) run(ctx context.Context) (Result, error) {
	if !e.seedVector() {
		return zeroTriplet(e.m, e.n, 0), nil
	}

	var (
		sigma      float64 // σ of the previous round (σ_prev), 0 before the first
		sigmaNew   float64
		sigmaCheck float64
		delta      float64
		done       bool
		i          int
		err        error
	)
	res := Result{Status: MaxIterationsReached}

	for round := 1; round <= e.maxIters; round++ {
		if err = ctx.Err(); err != nil {
			out, ferr := e.finalize(res, sigma)
			if ferr != nil {
				return Result{}, ferr
			}
			return out, fmt.Errorf("%w after %d rounds: %w", ErrInterrupted, res.Rounds, err)
		}

		// A·v and the forward norm.
		if err = e.op.Apply(e.av, e.v); err != nil {
			return Result{Rounds: round}, fmt.Errorf("round %d: %w", round, err)
		}
		sigmaNew = matrix.Norm(e.av)
		if sigmaNew == 0 {
			return zeroTriplet(e.m, e.n, round), nil
		}

		// u = A·v / σ_new.
		for i = 0; i < e.m; i++ {
			e.u[i] = e.av[i] / sigmaNew
		}

		// v' = Aᵀ·u, normalized; a zero v' is a stall, not a degeneracy.
		if err = e.op.ApplyTranspose(e.vNext, e.u); err != nil {
			return Result{Rounds: round}, fmt.Errorf("round %d: %w", round, err)
		}
		if matrix.Normalize(e.vNext) == 0 {
			res.Status = Stalled
			res.Rounds = round
			break
		}

		// Convergence probe σ_check = ‖A·v'‖.
		if err = e.op.Apply(e.av, e.vNext); err != nil {
			return Result{Rounds: round}, fmt.Errorf("round %d: %w", round, err)
		}
		sigmaCheck = matrix.Norm(e.av)
		done, delta = converged(sigmaCheck, sigma, e.tol)

		e.v, e.vNext = e.vNext, e.v
		sigma = sigmaCheck
		res.Rounds = round
		res.Delta = delta

		e.log.Trace().
			Int("round", round).
			Float64("sigma", sigma).
			Float64("delta", delta).
			Msg("power iteration round")

		if done {
			res.Status = Converged
			break
		}
	}

	return e.finalize(res, sigma)
}

// finalize recomputes u = A·v/σ from the final v so the pair is consistent,
// and hands the buffers over to the caller.
func (e *engine) finalize(res Result, sigma float64) (Result, error) {
	res.Sigma = sigma
	res.V = e.v
	res.U = make([]float64, e.m)
	if sigma > 0 {
		if err := e.op.Apply(e.av, e.v); err != nil {
			return Result{Rounds: res.Rounds}, fmt.Errorf("finalize: %w", err)
		}
		for i := 0; i < e.m; i++ {
			res.U[i] = e.av[i] / sigma
		}
	}
	// The engine must not touch the returned slices again.
	e.v, e.vNext, e.u = nil, nil, nil

	return res, nil
}

// report emits the terminal log event and metrics for one run.
func (e *engine) report(res Result, err error) {
	label := res.Status.String()
	switch {
	case err == nil:
	case errors.Is(err, ErrInterrupted):
		label = labelInterrupted
	default:
		label = labelFailed
	}
	e.metrics.observe(label, res.Rounds)

	ev := e.log.Debug()
	if err != nil {
		ev = e.log.Warn().Err(err)
	}
	ev.Str("status", label).
		Int("rounds", res.Rounds).
		Float64("sigma", res.Sigma).
		Float64("delta", res.Delta).
		Int("rows", e.m).
		Int("cols", e.n).
		Msg("dominant singular triplet")
}
