package ga

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/katalvlaran/romandom/graph"
)

// TrialSeed returns the seed RunTrials uses for trial i.
func TrialSeed(seed int64, i int) int64 {
	return deriveSeed(seed, uint64(i))
}

// RunTrials runs trials independent searches on g with at most workers
// concurrent goroutines. Trial i runs with Seed = TrialSeed(opts.Seed, i), so
// the results, returned in trial order, do not depend on workers.
//
// The first error of any trial is returned (joined with the others) and the
// results slice is then nil.
func RunTrials(ctx context.Context, g *graph.Graph, opts Options, trials, workers int) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if trials < 1 {
		return nil, fmt.Errorf("trials %d < 1: %w", trials, ErrInvalidOptions)
	}
	if workers < 1 {
		return nil, fmt.Errorf("workers %d < 1: %w", workers, ErrInvalidOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	results := make([]Result, trials)
	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for i := 0; i < trials; i++ {
		i := i
		o := opts
		o.Seed = TrialSeed(opts.Seed, i)
		p.Go(func() error {
			r, err := run(ctx, g, o, i)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = r

			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
