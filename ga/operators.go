package ga

import (
	"math/rand"

	"github.com/katalvlaran/romandom/roman"
)

// selectPairs draws ⌈len(pop)/2⌉ parent pairs by tournament.
//
// Per pair: shuffle a working copy of pop, remove the best of its first k
// entries, then take the best of the first k of the remainder. k is clamped
// to the entries left.
//
// Complexity: O(P) per pair.
func selectPairs(rng *rand.Rand, pop []*Solution, k int) [][2]*Solution {
	pairs := make([][2]*Solution, (len(pop)+1)/2)
	work := make([]*Solution, len(pop))
	for i := range pairs {
		copy(work, pop)
		rng.Shuffle(len(work), func(a, b int) { work[a], work[b] = work[b], work[a] })
		first, rest := takeBest(work, k)
		second, _ := takeBest(rest, k)
		pairs[i] = [2]*Solution{first, second}
	}

	return pairs
}

// takeBest removes and returns the lowest-cost entry among the first k of work
// (first wins ties).
func takeBest(work []*Solution, k int) (*Solution, []*Solution) {
	if k > len(work) {
		k = len(work)
	}
	best := 0
	for i := 1; i < k; i++ {
		if work[i].Cost < work[best].Cost {
			best = i
		}
	}
	s := work[best]

	return s, append(work[:best], work[best+1:]...)
}

// cutPoint returns the crossover cut for genomes of length n, or 0 when the
// genome is too short to have an interior cut (children are then copies).
func (o Options) cutPoint(rng *rand.Rand, n int) int {
	if n < 3 {
		return 0
	}
	if o.CutPolicy == MiddleCut {
		return n / 2
	}

	return 1 + rng.Intn(n-2)
}

// onePoint returns a[:cut]+b[cut:] and b[:cut]+a[cut:] as fresh slices.
// With cut 0 the children are copies of b and a.
func onePoint[T any](a, b []T, cut int) ([]T, []T) {
	c1 := make([]T, 0, len(a))
	c2 := make([]T, 0, len(b))
	c1 = append(append(c1, a[:cut]...), b[cut:]...)
	c2 = append(append(c2, b[:cut]...), a[cut:]...)

	return c1, c2
}

// crossover recombines every pair into the next offspring population of size
// p. With odd p the last pair contributes only its better child.
func (e *evaluator) crossover(rng *rand.Rand, pairs [][2]*Solution, p int) ([]*Solution, error) {
	n := e.g.Order()
	out := make([]*Solution, 0, p)
	for i, pair := range pairs {
		a, b := pair[0], pair[1]

		var c1, c2 *Solution
		if e.opts.CrossoverRate < 1 && rng.Float64() >= e.opts.CrossoverRate {
			c1, c2 = a.Clone(), b.Clone()
		} else {
			cut := e.opts.cutPoint(rng, n)
			var err error
			if c1, c2, err = e.recombine(a, b, cut); err != nil {
				return nil, err
			}
		}

		if p%2 == 1 && i == len(pairs)-1 {
			if c1.Cost < c2.Cost {
				out = append(out, c1)
			} else {
				out = append(out, c2)
			}
			continue
		}
		out = append(out, c1, c2)
	}

	return out, nil
}

// recombine builds and evaluates both children of (a, b) at cut.
func (e *evaluator) recombine(a, b *Solution, cut int) (*Solution, *Solution, error) {
	if e.opts.Encoding == EncodingKeys {
		k1, k2 := onePoint(a.Keys, b.Keys, cut)
		c1, err := e.decodeKeys(k1)
		if err != nil {
			return nil, nil, err
		}
		c2, err := e.decodeKeys(k2)
		if err != nil {
			return nil, nil, err
		}

		return c1, c2, nil
	}
	l1, l2 := onePoint(a.Labels, b.Labels, cut)
	c1, err := e.scoreLabels(l1)
	if err != nil {
		return nil, nil, err
	}
	c2, err := e.scoreLabels(l2)
	if err != nil {
		return nil, nil, err
	}

	return c1, c2, nil
}

// mutate replaces each gene with a fresh random value with probability
// MutationRate. An individual with at least one hit is rebuilt in place in
// the slice; untouched individuals are kept as they are.
func (e *evaluator) mutate(rng *rand.Rand, pop []*Solution) error {
	rate := e.opts.MutationRate
	for i, s := range pop {
		var err error
		if e.opts.Encoding == EncodingKeys {
			var keys []float64
			for j := range s.Keys {
				if rng.Float64() < rate {
					if keys == nil {
						keys = append([]float64(nil), s.Keys...)
					}
					keys[j] = rng.Float64()
				}
			}
			if keys != nil {
				pop[i], err = e.decodeKeys(keys)
			}
		} else {
			var f roman.Labeling
			for j := range s.Labels {
				if rng.Float64() < rate {
					if f == nil {
						f = s.Labels.Clone()
					}
					f[j] = roman.Label(rng.Intn(3))
				}
			}
			if f != nil {
				pop[i], err = e.scoreLabels(f)
			}
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// replace keeps the best elite of cur plus the best len(cur)-elite of
// offspring and returns them sorted. Elites precede offspring of equal cost.
func replace(cur, offspring []*Solution, elite int) []*Solution {
	sortPopulation(cur)
	sortPopulation(offspring)
	out := make([]*Solution, 0, len(cur))
	out = append(out, cur[:elite]...)
	out = append(out, offspring[:len(cur)-elite]...)
	sortPopulation(out)

	return out
}
