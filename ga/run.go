package ga

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

// Run executes one evolutionary search on g.
//
// The graph is only read. Termination is checked before every generation, in
// this order: context cancellation, MaxGenerations, MaxStagnation, TimeLimit.
// Result.Best is the best individual seen during the run. A cancelled run is
// not an error: the incumbent is returned with ReasonCancelled.
//
// Errors:
//   - ErrNilGraph, ErrInvalidOptions (wrapped with the field).
//   - roman.ErrLengthMismatch when a warm-start seed has the wrong length.
//
// Complexity: O(G · P · (n + m)) for G generations and population P.
func Run(ctx context.Context, g *graph.Graph, opts Options) (Result, error) {
	return run(ctx, g, opts, -1)
}

// run is Run with a trial index for logging and statistics (-1 outside RunTrials).
func run(ctx context.Context, g *graph.Graph, opts Options, trial int) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}

	var (
		start = time.Now()
		n     = g.Order()
		p     = opts.populationSize(n)
		elite = opts.eliteSize(p)
		rng   = rngFromSeed(opts.Seed)
		e     = &evaluator{g: g, opts: opts}
		log   = opts.logger().WithFields(logrus.Fields{"module": "ga", "order": n, "population": p})
	)
	if trial >= 0 {
		log = log.WithField("trial", trial)
	}
	res := Result{Seed: effectiveSeed(opts.Seed), PopulationSize: p}

	if n == 0 {
		res.Best = &Solution{Labels: roman.Labeling{}, Feasible: true}
		if opts.Encoding == EncodingKeys {
			res.Best.Keys = []float64{}
		}
		res.Reason = ReasonEmptyGraph
		res.Elapsed = time.Since(start)
		log.WithField("reason", res.Reason).Info("nothing to search")

		return res, nil
	}

	pop, err := e.initPopulation(rng, p)
	if err != nil {
		return Result{}, err
	}
	incumbent := pop[0].Clone()
	best := incumbent.Cost
	log.WithField("best", best).Debug("population initialized")

	var gen, stagnation int
	for {
		if res.Reason = opts.stop(ctx, gen, stagnation, time.Since(start)); res.Reason != ReasonNone {
			break
		}

		pairs := selectPairs(rng, pop, opts.TournamentSize)
		offspring, err := e.crossover(rng, pairs, p)
		if err != nil {
			return Result{}, err
		}
		if err = e.mutate(rng, offspring); err != nil {
			return Result{}, err
		}
		pop = replace(pop, offspring, elite)
		gen++

		if pop[0].Cost < best {
			incumbent = pop[0].Clone()
			best = incumbent.Cost
			stagnation = 0
			log.WithFields(logrus.Fields{"generation": gen, "best": best}).Info("improved")
		} else {
			stagnation++
		}
		stats := GenerationStats{
			Trial:       trial,
			Generation:  gen,
			Best:        best,
			Mean:        meanCost(pop),
			Stagnation:  stagnation,
			Evaluations: e.evals,
			Elapsed:     time.Since(start),
		}
		log.WithFields(logrus.Fields{
			"generation": gen,
			"best":       best,
			"mean":       stats.Mean,
			"stagnation": stagnation,
		}).Debug("generation")
		if opts.OnGeneration != nil {
			opts.OnGeneration(stats)
		}
	}

	res.Best = incumbent
	res.Generations = gen
	res.Evaluations = e.evals
	res.Elapsed = time.Since(start)
	log.WithFields(logrus.Fields{
		"best":        res.Best.Cost,
		"generations": gen,
		"reason":      res.Reason,
		"elapsed":     res.Elapsed,
	}).Info("run finished")

	return res, nil
}

// stop evaluates the termination conditions at a generation boundary.
func (o Options) stop(ctx context.Context, gen, stagnation int, elapsed time.Duration) Reason {
	switch {
	case ctx.Err() != nil:
		return ReasonCancelled
	case gen >= o.MaxGenerations:
		return ReasonMaxGenerations
	case stagnation >= o.MaxStagnation:
		return ReasonStagnation
	case o.TimeLimit > 0 && elapsed >= o.TimeLimit:
		return ReasonTimeLimit
	}

	return ReasonNone
}
