package ga

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/romandom/roman"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *graph.Graph argument.
	ErrNilGraph = errors.New("ga: graph is nil")

	// ErrInvalidOptions indicates an Options value outside its documented domain.
	ErrInvalidOptions = errors.New("ga: invalid options")
)

// Encoding selects the genotype representation.
type Encoding int

const (
	// EncodingKeys uses random-key chromosomes decoded by Options.Decoder.
	EncodingKeys Encoding = iota
	// EncodingLabels uses label genes directly.
	EncodingLabels
)

// String returns "keys" or "labels".
func (e Encoding) String() string {
	if e == EncodingLabels {
		return "labels"
	}

	return "keys"
}

// Fitness selects how label genes are scored.
type Fitness int

const (
	// FitnessRepair repairs every individual before scoring it.
	FitnessRepair Fitness = iota
	// FitnessPenalty scores raw labels, adding roman.PenaltyFactor·n when infeasible.
	FitnessPenalty
)

// String returns "repair" or "penalty".
func (f Fitness) String() string {
	if f == FitnessPenalty {
		return "penalty"
	}

	return "repair"
}

// CutPolicy selects the one-point crossover cut.
type CutPolicy int

const (
	// UniformCut draws the cut uniformly from [1, n-2].
	UniformCut CutPolicy = iota
	// MiddleCut always cuts at n/2.
	MiddleCut
)

// String returns "uniform" or "middle".
func (c CutPolicy) String() string {
	if c == MiddleCut {
		return "middle"
	}

	return "uniform"
}

// Reason records why a run stopped.
type Reason int

const (
	// ReasonNone means the run has not stopped.
	ReasonNone Reason = iota
	// ReasonMaxGenerations means the generation cap was reached.
	ReasonMaxGenerations
	// ReasonStagnation means the best cost did not improve for MaxStagnation generations.
	ReasonStagnation
	// ReasonTimeLimit means the wall-clock budget elapsed.
	ReasonTimeLimit
	// ReasonCancelled means the context was cancelled.
	ReasonCancelled
	// ReasonEmptyGraph means the graph has no vertices; nothing to search.
	ReasonEmptyGraph
)

var reasonNames = [...]string{"none", "max_generations", "stagnation", "time_limit", "cancelled", "empty_graph"}

// String returns a snake_case name suitable for logs and CSV.
func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}

	return reasonNames[r]
}

// Solution is one individual: its genes, decoded labeling and cost.
// Solutions are rebuilt, never patched, after crossover or mutation.
type Solution struct {
	// Keys is the canonical chromosome; nil under EncodingLabels.
	Keys []float64

	// Labels is the labeling the individual stands for. Under FitnessPenalty
	// it may be infeasible.
	Labels roman.Labeling

	// Cost is the fitness to minimize: Labels.Cost(), plus the penalty when
	// Feasible is false.
	Cost int

	// Feasible reports whether Labels satisfies the configured variant.
	Feasible bool
}

// Clone returns a deep copy of s.
func (s *Solution) Clone() *Solution {
	out := &Solution{Labels: s.Labels.Clone(), Cost: s.Cost, Feasible: s.Feasible}
	if s.Keys != nil {
		out.Keys = append([]float64(nil), s.Keys...)
	}

	return out
}

// GenerationStats is passed to Options.OnGeneration after every REPLACE step.
type GenerationStats struct {
	Trial       int
	Generation  int
	Best        int
	Mean        float64
	Stagnation  int
	Evaluations int
	Elapsed     time.Duration
}

// Result is the outcome of one run.
type Result struct {
	// Best is the lowest-cost individual seen during the run.
	Best *Solution

	// Seed is the effective seed of the run.
	Seed int64

	Generations    int
	Evaluations    int
	PopulationSize int
	Elapsed        time.Duration
	Reason         Reason
}

// Options configures Run and RunTrials. Start from DefaultOptions.
type Options struct {
	// Encoding and Decoder define the genotype; Decoder also carries the
	// Variant and SweepMode used by repair.
	Encoding Encoding
	Decoder  roman.Decoder

	// Fitness applies to EncodingLabels only; FitnessPenalty with
	// EncodingKeys is rejected.
	Fitness Fitness

	// Population size is max(n/PopulationFactor, MinPopulation) unless
	// PopulationSize > 0 overrides it.
	PopulationFactor int
	PopulationSize   int
	MinPopulation    int

	// EliteFraction ∈ [0,1): ⌊P·EliteFraction⌋ parents survive each generation.
	EliteFraction float64

	// MutationRate ∈ [0,1] is the per-gene mutation probability.
	MutationRate float64

	// CrossoverRate ∈ [0,1]; a pair that is not recombined yields copies of
	// its parents.
	CrossoverRate float64

	CutPolicy      CutPolicy
	TournamentSize int

	// Termination caps; TimeLimit 0 means unlimited.
	MaxGenerations int
	MaxStagnation  int
	TimeLimit      time.Duration

	// Seed of the run RNG; 0 selects a fixed default.
	Seed int64

	// Seeds are warm-start labelings inserted first (repaired). Each must
	// have one label per vertex.
	Seeds []roman.Labeling

	// Logger receives progress; nil discards.
	Logger logrus.FieldLogger

	// OnGeneration, when set, is called after every generation.
	OnGeneration func(GenerationStats)
}

// DefaultOptions returns the reference configuration.
//
// Defaults:
//   - Encoding:         EncodingKeys with roman.DefaultDecoder()
//   - Fitness:          FitnessRepair
//   - PopulationFactor: 3, MinPopulation: 4
//   - EliteFraction:    0.1
//   - MutationRate:     0.07, CrossoverRate: 1.0
//   - CutPolicy:        UniformCut, TournamentSize: 5
//   - MaxGenerations:   500, MaxStagnation: 350, TimeLimit: unlimited
func DefaultOptions() Options {
	return Options{
		Encoding:         EncodingKeys,
		Decoder:          roman.DefaultDecoder(),
		Fitness:          FitnessRepair,
		PopulationFactor: 3,
		MinPopulation:    4,
		EliteFraction:    0.1,
		MutationRate:     0.07,
		CrossoverRate:    1.0,
		CutPolicy:        UniformCut,
		TournamentSize:   5,
		MaxGenerations:   500,
		MaxStagnation:    350,
	}
}
