package ga

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

// evaluator turns genes into scored Solutions and counts evaluations.
type evaluator struct {
	g     *graph.Graph
	opts  Options
	evals int
}

// decodeKeys builds a Solution from a chromosome. keys is not retained.
func (e *evaluator) decodeKeys(keys []float64) (*Solution, error) {
	d, err := e.opts.Decoder.Decode(e.g, keys)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	e.evals++

	return &Solution{Keys: d.Keys, Labels: d.Labels, Cost: d.Cost, Feasible: true}, nil
}

// scoreLabels builds a Solution from label genes according to Options.Fitness.
// f is owned by the returned Solution under FitnessPenalty.
func (e *evaluator) scoreLabels(f roman.Labeling) (*Solution, error) {
	e.evals++
	if e.opts.Fitness == FitnessPenalty {
		cost, ok, err := roman.PenaltyCost(e.g, f, e.opts.Decoder.Variant)
		if err != nil {
			return nil, fmt.Errorf("penalty: %w", err)
		}

		return &Solution{Labels: f, Cost: cost, Feasible: ok}, nil
	}
	out, err := roman.Repair(e.g, f, e.opts.Decoder.Variant, e.opts.Decoder.Sweep)
	if err != nil {
		return nil, fmt.Errorf("repair: %w", err)
	}

	return &Solution{Labels: out, Cost: out.Cost(), Feasible: true}, nil
}

// fromLabeling repairs an arbitrary labeling and encodes it in the run's
// genotype. Under EncodingKeys the canonical threshold keys of the repaired
// labeling are decoded.
func (e *evaluator) fromLabeling(f roman.Labeling) (*Solution, error) {
	fixed, err := roman.Repair(e.g, f, e.opts.Decoder.Variant, e.opts.Decoder.Sweep)
	if err != nil {
		return nil, fmt.Errorf("repair: %w", err)
	}
	if e.opts.Encoding == EncodingKeys {
		return e.decodeKeys(roman.CanonicalKeys(fixed))
	}

	return e.scoreLabels(fixed)
}

// sortPopulation orders pop by ascending cost; equal costs keep their order.
func sortPopulation(pop []*Solution) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Cost < pop[j].Cost })
}

// meanCost is the average cost of pop.
func meanCost(pop []*Solution) float64 {
	if len(pop) == 0 {
		return 0
	}
	var sum int
	for _, s := range pop {
		sum += s.Cost
	}

	return float64(sum) / float64(len(pop))
}
