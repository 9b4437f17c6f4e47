package svd

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/powersvd/matrix"
)

// DominantBatch runs Dominant on every operator in ops with at most workers
// concurrent runs (workers <= 0 ⇒ runtime.GOMAXPROCS(0)).
//
// Item i is seeded with DeriveSeed(seed, uint64(i)), where seed is the value
// set by WithSeed in opts; its Result is therefore identical to
//
//	Dominant(ctx, ops[i], append(opts, WithSeed(DeriveSeed(seed, uint64(i))))...)
//
// regardless of scheduling. results[i] always corresponds to ops[i].
//
// Errors:
//   - option contract violations are reported before any item starts;
//   - the first item error cancels the remaining items and is returned as
//     "item i: ..." (errors.Is still matches the underlying sentinel);
//     items cut short keep whatever Dominant returned for them, items that
//     never started hold the zero Result.
func DominantBatch(ctx context.Context, ops []matrix.Operator, workers int, opts ...Option) ([]Result, error) {
	base := gatherOptions(opts...)
	if err := base.validate(); err != nil {
		base.metrics.observe(labelRejected, 0)
		return nil, svdErrorf(opBatch, err)
	}

	results := make([]Result, len(ops))
	if len(ops) == 0 {
		return results, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, op := range ops {
		i, op := i, op
		itemOpts := make([]Option, len(opts), len(opts)+1)
		copy(itemOpts, opts)
		itemOpts = append(itemOpts, WithSeed(DeriveSeed(base.seed, uint64(i))))

		g.Go(func() error {
			res, err := Dominant(gctx, op, itemOpts...)
			results[i] = res
			if err != nil {
				return fmt.Errorf("item %d: %w", i, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, svdErrorf(opBatch, err)
	}

	return results, nil
}
