package ga

import (
	"fmt"
	"io"
	"math"

	"github.com/sirupsen/logrus"
)

// validate checks every field against its domain and returns
// ErrInvalidOptions wrapped with the first offending field.
//
// Complexity: O(1).
func (o Options) validate() error {
	switch {
	case o.Encoding != EncodingKeys && o.Encoding != EncodingLabels:
		return fmt.Errorf("encoding %d: %w", o.Encoding, ErrInvalidOptions)
	case o.Fitness != FitnessRepair && o.Fitness != FitnessPenalty:
		return fmt.Errorf("fitness %d: %w", o.Fitness, ErrInvalidOptions)
	case o.Fitness == FitnessPenalty && o.Encoding != EncodingLabels:
		return fmt.Errorf("penalty fitness requires label encoding: %w", ErrInvalidOptions)
	case o.CutPolicy != UniformCut && o.CutPolicy != MiddleCut:
		return fmt.Errorf("cut policy %d: %w", o.CutPolicy, ErrInvalidOptions)
	case o.PopulationFactor < 1:
		return fmt.Errorf("population factor %d < 1: %w", o.PopulationFactor, ErrInvalidOptions)
	case o.MinPopulation < 2:
		return fmt.Errorf("min population %d < 2: %w", o.MinPopulation, ErrInvalidOptions)
	case o.PopulationSize != 0 && o.PopulationSize < 2:
		return fmt.Errorf("population size %d < 2: %w", o.PopulationSize, ErrInvalidOptions)
	case !inUnit(o.EliteFraction) || o.EliteFraction >= 1:
		return fmt.Errorf("elite fraction %v not in [0,1): %w", o.EliteFraction, ErrInvalidOptions)
	case !inUnit(o.MutationRate):
		return fmt.Errorf("mutation rate %v not in [0,1]: %w", o.MutationRate, ErrInvalidOptions)
	case !inUnit(o.CrossoverRate):
		return fmt.Errorf("crossover rate %v not in [0,1]: %w", o.CrossoverRate, ErrInvalidOptions)
	case o.TournamentSize < 1:
		return fmt.Errorf("tournament size %d < 1: %w", o.TournamentSize, ErrInvalidOptions)
	case o.MaxGenerations < 0:
		return fmt.Errorf("max generations %d < 0: %w", o.MaxGenerations, ErrInvalidOptions)
	case o.MaxStagnation < 1:
		return fmt.Errorf("max stagnation %d < 1: %w", o.MaxStagnation, ErrInvalidOptions)
	case o.TimeLimit < 0:
		return fmt.Errorf("time limit %v < 0: %w", o.TimeLimit, ErrInvalidOptions)
	}

	return nil
}

func inUnit(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}

// populationSize resolves P for a graph of order n.
func (o Options) populationSize(n int) int {
	if o.PopulationSize > 0 {
		return o.PopulationSize
	}
	p := n / o.PopulationFactor
	if p < o.MinPopulation {
		p = o.MinPopulation
	}

	return p
}

// eliteSize is ⌊p·EliteFraction⌋.
func (o Options) eliteSize(p int) int {
	return int(math.Floor(float64(p) * o.EliteFraction))
}

// logger returns o.Logger, or a logger that discards everything.
func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	discard := logrus.New()
	discard.Out = io.Discard

	return discard
}
