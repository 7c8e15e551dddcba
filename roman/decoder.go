package roman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/romandom/graph"
)

// Policy turns a chromosome of random keys into a feasible labeling.
//
// Implementations must be deterministic functions of (adj, keys, v) and must
// not retain any argument after returning.
type Policy interface {
	// Name identifies the policy in logs and configuration ("threshold", "order").
	Name() string

	// Assign fills f (all zeros on entry, len n) with a labeling that is
	// feasible for v and labels every isolated vertex 1. count is n ints of
	// scratch space.
	Assign(adj [][]int, keys []float64, v Variant, f Labeling, count []int)

	// Canonicalize returns a fresh chromosome that decodes to f, given the
	// keys f was decoded from.
	Canonicalize(f Labeling, keys []float64) []float64
}

// Decoded is the outcome of Decoder.Decode.
type Decoded struct {
	// Labels is the feasible, weight-reduced labeling.
	Labels Labeling

	// Cost is Labels.Cost().
	Cost int

	// Keys is the canonical chromosome for Labels; decoding it again
	// reproduces Labels and Cost exactly.
	Keys []float64
}

// Decoder maps chromosomes to feasible labelings. The zero value is not
// ready for use; start from DefaultDecoder.
type Decoder struct {
	Policy  Policy
	Variant Variant
	Sweep   SweepMode
}

// DefaultDecoder returns the canonical decoder: ThresholdPolicy, Perfect
// variant, single reduction sweep.
func DefaultDecoder() Decoder {
	return Decoder{Policy: ThresholdPolicy{}, Variant: Perfect, Sweep: SingleSweep}
}

// Decode maps keys to a feasible labeling of g, reduces its weight, and
// returns it with its cost and canonical chromosome. keys is not modified.
//
// Errors:
//   - ErrNilGraph, ErrLengthMismatch (len(keys) ≠ n), ErrKeyOutOfRange.
//
// An empty graph decodes to an empty labeling of cost 0.
//
// Complexity: O(n log n + m) for OrderPolicy, O(n + m) for ThresholdPolicy,
// plus reduction sweeps.
func (d Decoder) Decode(g *graph.Graph, keys []float64) (Decoded, error) {
	if g == nil {
		return Decoded{}, ErrNilGraph
	}
	n := g.Order()
	if len(keys) != n {
		return Decoded{}, fmt.Errorf("chromosome has %d keys, graph has %d vertices: %w", len(keys), n, ErrLengthMismatch)
	}
	for u, k := range keys {
		if math.IsNaN(k) || k < 0 || k >= 1 {
			return Decoded{}, fmt.Errorf("key %d = %v: %w", u, k, ErrKeyOutOfRange)
		}
	}
	p := d.Policy
	if p == nil {
		p = ThresholdPolicy{}
	}

	adj := g.Adjacency()
	f := make(Labeling, n)
	count := make([]int, n)
	p.Assign(adj, keys, d.Variant, f, count)
	reduce(adj, f, count, d.Variant, d.Sweep)

	return Decoded{Labels: f, Cost: f.Cost(), Keys: p.Canonicalize(f, keys)}, nil
}
