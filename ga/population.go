package ga

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/romandom/roman"
)

// initPopulation builds the first generation of size p:
//
//  1. warm-start labelings (repaired), in order;
//  2. the greedy labeling;
//  3. ⌊p/2⌋ single-dominator labelings on distinct random vertices (repaired);
//  4. random individuals until p is reached.
//
// The returned population is sorted.
func (e *evaluator) initPopulation(rng *rand.Rand, p int) ([]*Solution, error) {
	n := e.g.Order()
	pop := make([]*Solution, 0, p)

	for i, seed := range e.opts.Seeds {
		if len(pop) == p {
			break
		}
		if len(seed) != n {
			return nil, fmt.Errorf("warm-start seed %d has %d labels, graph has %d vertices: %w",
				i, len(seed), n, roman.ErrLengthMismatch)
		}
		s, err := e.fromLabeling(seed)
		if err != nil {
			return nil, fmt.Errorf("warm-start seed %d: %w", i, err)
		}
		pop = append(pop, s)
	}

	if len(pop) < p {
		f, err := roman.Greedy(e.g)
		if err != nil {
			return nil, err
		}
		s, err := e.fromLabeling(f)
		if err != nil {
			return nil, fmt.Errorf("greedy: %w", err)
		}
		pop = append(pop, s)
	}

	perm := rng.Perm(n)
	for i := 0; i < p/2 && i < n && len(pop) < p; i++ {
		f, err := roman.Dominator(e.g, perm[i])
		if err != nil {
			return nil, err
		}
		s, err := e.fromLabeling(f)
		if err != nil {
			return nil, fmt.Errorf("dominator %d: %w", perm[i], err)
		}
		pop = append(pop, s)
	}

	for len(pop) < p {
		s, err := e.random(rng, n)
		if err != nil {
			return nil, err
		}
		pop = append(pop, s)
	}
	sortPopulation(pop)

	return pop, nil
}

// random draws one individual: uniform keys under EncodingKeys, uniform
// labels otherwise.
func (e *evaluator) random(rng *rand.Rand, n int) (*Solution, error) {
	if e.opts.Encoding == EncodingKeys {
		keys := make([]float64, n)
		for i := range keys {
			keys[i] = rng.Float64()
		}

		return e.decodeKeys(keys)
	}
	f := make(roman.Labeling, n)
	for i := range f {
		f[i] = roman.Label(rng.Intn(3))
	}

	return e.scoreLabels(f)
}
