// Package svd: functional configuration for Dominant and DominantBatch.
//
// Design goals:
//   - Deterministic behavior: the only randomness is the seeded initial draw.
//   - No global state: logger and metrics are injected per call.
//   - Validation happens in Dominant, before the first round, so invalid
//     values surface as sentinel errors rather than panics.
package svd

import (
	"math"
	"time"

	"github.com/rs/zerolog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxIters caps the number of rounds.
	DefaultMaxIters = 1000

	// DefaultTolerance is the relative σ-difference threshold.
	DefaultTolerance = 1e-9

	// DefaultSeed selects the fixed default stream (seed==0 ⇒ defaultRNGSeed).
	DefaultSeed int64 = 0

	// DefaultDeadline of 0 means no wall-clock bound beyond ctx.
	DefaultDeadline time.Duration = 0
)

// maxSeedDraws bounds the re-draws of an all-zero initial vector.
const maxSeedDraws = 8

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; callers use the WithX constructors.
type Options struct {
	maxIters int
	tol      float64
	seed     int64
	deadline time.Duration
	logger   zerolog.Logger
	metrics  *Metrics
}

// WithMaxIters sets the round budget. n must be > 0 (checked by Dominant).
func WithMaxIters(n int) Option {
	return func(o *Options) { o.maxIters = n }
}

// WithTolerance sets the convergence tolerance. tol must be finite and > 0.
//
// Notes:
//   - The test is relative for σ ≥ 1 and absolute below: |Δσ| < tol·max(1, σ).
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.tol = tol }
}

// WithSeed selects the random stream of the initial vector.
// Same seed, same operator, same options ⇒ bit-identical Result.
// seed==0 maps to a fixed default stream, so omitting the option is still reproducible.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithDeadline bounds the wall-clock time of one run (0 disables).
// It is applied as context.WithTimeout on top of the caller's ctx and is
// checked once per round, so one round may overrun it.
func WithDeadline(d time.Duration) Option {
	return func(o *Options) { o.deadline = d }
}

// WithLogger routes per-round Trace events and the terminal Debug event to l.
// The logger must be safe for concurrent use when shared by DominantBatch.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// WithMetrics records terminal statuses and round counts into m (nil disables).
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.metrics = m }
}

// MaxIters reports the effective round budget.
func (o Options) MaxIters() int { return o.maxIters }

// Tolerance reports the effective tolerance.
func (o Options) Tolerance() float64 { return o.tol }

// Seed reports the configured seed (before the seed==0 policy is applied).
func (o Options) Seed() int64 { return o.seed }

// NewOptions resolves option setters against documented defaults.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		maxIters: DefaultMaxIters,
		tol:      DefaultTolerance,
		seed:     DefaultSeed,
		deadline: DefaultDeadline,
		logger:   zerolog.Nop(),
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// validate enforces the caller contract on numeric parameters.
// Order: max iterations → tolerance → deadline.
func (o Options) validate() error {
	if o.maxIters <= 0 {
		return ErrInvalidMaxIters
	}
	if math.IsNaN(o.tol) || math.IsInf(o.tol, 0) || o.tol <= 0 {
		return ErrInvalidTolerance
	}
	if o.deadline < 0 {
		return ErrInvalidDeadline
	}

	return nil
}
