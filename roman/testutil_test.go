package roman_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

func build(t testing.TB, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)

	return g
}

func randomGraph(t testing.TB, seed int64, n int, d float64) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDensity(n, d))
	require.NoError(t, err)

	return g
}

func randomKeys(rng *rand.Rand, n int) []float64 {
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = rng.Float64()
	}

	return keys
}

func randomLabels(rng *rand.Rand, n int) roman.Labeling {
	f := make(roman.Labeling, n)
	for i := range f {
		f[i] = roman.Label(rng.Intn(3))
	}

	return f
}

func constKeys(n int, k float64) []float64 {
	keys := make([]float64, n)
	for i := range keys {
		keys[i] = k
	}

	return keys
}

func labels(xs ...int) roman.Labeling {
	f, err := roman.FromInts(xs)
	if err != nil {
		panic(err)
	}

	return f
}
