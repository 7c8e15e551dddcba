package ga_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

func quick() ga.Options {
	o := ga.DefaultOptions()
	o.MaxGenerations = 40
	o.MaxStagnation = 20
	o.Seed = 42

	return o
}

func TestRun_KnownOptima(t *testing.T) {
	cases := []struct {
		name string
		cons []builder.Constructor
		want int
	}{
		{"star", []builder.Constructor{builder.Star(5)}, 2},
		{"two stars", []builder.Constructor{builder.Star(4), builder.Star(3)}, 4},
		{"c6", []builder.Constructor{builder.Cycle(6)}, 4},
		{"isolated", []builder.Constructor{builder.Empty(3)}, 3},
		{"k5", []builder.Constructor{builder.Complete(5)}, 2},
		{"wheel", []builder.Constructor{builder.Wheel(7)}, 2},
		{"k33", []builder.Constructor{builder.CompleteBipartite(3, 3)}, 4},
	}
	for _, enc := range []ga.Encoding{ga.EncodingKeys, ga.EncodingLabels} {
		for _, tc := range cases {
			t.Run(enc.String()+"/"+tc.name, func(t *testing.T) {
				g := build(t, nil, tc.cons...)
				o := quick()
				o.Encoding = enc

				res, err := ga.Run(context.Background(), g, o)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Best.Cost)
				assert.True(t, res.Best.Feasible)
				assert.NoError(t, roman.Verify(g, res.Best.Labels, roman.Perfect))
				if enc == ga.EncodingLabels {
					assert.Nil(t, res.Best.Keys)
				} else {
					assert.Len(t, res.Best.Keys, g.Order())
				}
			})
		}
	}
}

func TestRun_RandomGraphFeasibleAndNotWorseThanGreedy(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(3)}, builder.RandomDensity(60, 0.08))
	greedy, err := roman.Greedy(g)
	require.NoError(t, err)
	greedy, err = roman.Repair(g, greedy, roman.Perfect, roman.SingleSweep)
	require.NoError(t, err)

	for _, enc := range []ga.Encoding{ga.EncodingKeys, ga.EncodingLabels} {
		o := quick()
		o.Encoding = enc

		res, err := ga.Run(context.Background(), g, o)
		require.NoError(t, err)
		assert.NoError(t, roman.Verify(g, res.Best.Labels, roman.Perfect))
		assert.LessOrEqual(t, res.Best.Cost, greedy.Cost())
	}

	o := quick()
	o.Decoder = roman.Decoder{Policy: roman.OrderPolicy{LightProtection: 0.1}, Variant: roman.Perfect}
	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.NoError(t, roman.Verify(g, res.Best.Labels, roman.Perfect))
}

func TestRun_StandardVariant(t *testing.T) {
	g := build(t, nil, builder.Cycle(4))
	o := quick()
	o.Decoder.Variant = roman.Standard

	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Best.Cost)
	assert.NoError(t, roman.Verify(g, res.Best.Labels, roman.Standard))
}

func TestRun_PenaltyFitness(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(8)}, builder.RandomDensity(30, 0.15))
	o := quick()
	o.Encoding = ga.EncodingLabels
	o.Fitness = ga.FitnessPenalty
	o.PopulationSize = 12
	o.EliteFraction = 0.25

	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.True(t, res.Best.Feasible)
	assert.Equal(t, res.Best.Labels.Cost(), res.Best.Cost)
}

func TestRun_Reproducible(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(5)}, builder.RandomDensity(40, 0.1))
	o := quick()

	a, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	b, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)

	assert.Equal(t, a.Best, b.Best)
	assert.Equal(t, a.Generations, b.Generations)
	assert.Equal(t, a.Evaluations, b.Evaluations)
	assert.Equal(t, a.Reason, b.Reason)
}

func TestRun_Termination(t *testing.T) {
	g := build(t, nil, builder.Star(6))

	o := quick()
	o.MaxGenerations = 7
	o.MaxStagnation = 1000
	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.Equal(t, ga.ReasonMaxGenerations, res.Reason)
	assert.Equal(t, 7, res.Generations)

	// The greedy start is already optimal, so no generation improves.
	o.MaxGenerations = 1000
	o.MaxStagnation = 3
	res, err = ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.Equal(t, ga.ReasonStagnation, res.Reason)
	assert.Equal(t, 3, res.Generations)

	o.MaxStagnation = 1 << 30
	o.MaxGenerations = 1 << 30
	o.TimeLimit = 20 * time.Millisecond
	res, err = ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.Equal(t, ga.ReasonTimeLimit, res.Reason)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err = ga.Run(ctx, g, quick())
	require.NoError(t, err)
	assert.Equal(t, ga.ReasonCancelled, res.Reason)
	assert.Equal(t, 0, res.Generations)
	require.NotNil(t, res.Best)
	assert.Equal(t, 2, res.Best.Cost)
}

func TestRun_EmptyGraph(t *testing.T) {
	g := build(t, nil, builder.Empty(0))

	res, err := ga.Run(context.Background(), g, quick())
	require.NoError(t, err)
	assert.Equal(t, ga.ReasonEmptyGraph, res.Reason)
	assert.Equal(t, 0, res.Best.Cost)
}

func TestRun_OnGeneration(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(2)}, builder.RandomDensity(30, 0.1))
	o := quick()

	var stats []ga.GenerationStats
	o.OnGeneration = func(s ga.GenerationStats) { stats = append(stats, s) }

	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	require.Len(t, stats, res.Generations)
	for i, s := range stats {
		assert.Equal(t, i+1, s.Generation)
		assert.Equal(t, -1, s.Trial)
		assert.LessOrEqual(t, float64(s.Best), s.Mean)
		if i > 0 {
			assert.LessOrEqual(t, s.Best, stats[i-1].Best)
		}
	}
	assert.Equal(t, res.Best.Cost, stats[len(stats)-1].Best)
}

func TestRun_WarmStart(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(4)}, builder.RandomDensity(45, 0.1))
	o := quick()
	o.MaxGenerations = 5

	first, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)

	o.Seed = 999
	o.Seeds = []roman.Labeling{first.Best.Labels}
	second, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.LessOrEqual(t, second.Best.Cost, first.Best.Cost)

	o.Seeds = []roman.Labeling{{roman.Two}}
	_, err = ga.Run(context.Background(), g, o)
	assert.ErrorIs(t, err, roman.ErrLengthMismatch)
}

func TestRun_InvalidOptions(t *testing.T) {
	g := build(t, nil, builder.Path(4))

	_, err := ga.Run(context.Background(), nil, ga.DefaultOptions())
	assert.ErrorIs(t, err, ga.ErrNilGraph)

	mutators := map[string]func(*ga.Options){
		"penalty with keys":  func(o *ga.Options) { o.Fitness = ga.FitnessPenalty },
		"factor":             func(o *ga.Options) { o.PopulationFactor = 0 },
		"min population":     func(o *ga.Options) { o.MinPopulation = 1 },
		"population size":    func(o *ga.Options) { o.PopulationSize = 1 },
		"elite fraction":     func(o *ga.Options) { o.EliteFraction = 1 },
		"mutation rate":      func(o *ga.Options) { o.MutationRate = 1.5 },
		"crossover rate":     func(o *ga.Options) { o.CrossoverRate = -0.1 },
		"tournament":         func(o *ga.Options) { o.TournamentSize = 0 },
		"max generations":    func(o *ga.Options) { o.MaxGenerations = -1 },
		"max stagnation":     func(o *ga.Options) { o.MaxStagnation = 0 },
		"time limit":         func(o *ga.Options) { o.TimeLimit = -time.Second },
		"unknown cut policy": func(o *ga.Options) { o.CutPolicy = 9 },
	}
	for name, mut := range mutators {
		o := ga.DefaultOptions()
		mut(&o)
		_, err = ga.Run(context.Background(), g, o)
		assert.ErrorIs(t, err, ga.ErrInvalidOptions, name)
	}
}

func TestRun_MiddleCutAndPartialCrossover(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithSeed(6)}, builder.RandomDensity(25, 0.2))
	o := quick()
	o.CutPolicy = ga.MiddleCut
	o.CrossoverRate = 0.5
	o.PopulationSize = 7

	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	assert.Equal(t, 7, res.PopulationSize)
	assert.NoError(t, roman.Verify(g, res.Best.Labels, roman.Perfect))
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "stagnation", ga.ReasonStagnation.String())
	assert.Equal(t, "unknown", ga.Reason(42).String())
	assert.Equal(t, "labels", ga.EncodingLabels.String())
	assert.Equal(t, "penalty", ga.FitnessPenalty.String())
	assert.Equal(t, "middle", ga.MiddleCut.String())
}

func ExampleRun() {
	g, _ := builder.BuildGraph(nil, builder.Star(7))
	o := ga.DefaultOptions()
	o.MaxStagnation = 10

	res, err := ga.Run(context.Background(), g, o)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(res.Best.Cost, res.Best.Labels, res.Reason)
	// Output: 2 2 0 0 0 0 0 0 stagnation
}
