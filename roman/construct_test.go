package roman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/roman"
)

func TestGreedy_Stars(t *testing.T) {
	g := build(t, builder.Star(4), builder.Star(3), builder.Empty(1))

	f, err := roman.Greedy(g)
	require.NoError(t, err)
	assert.Equal(t, labels(2, 0, 0, 0, 2, 0, 0, 1), f)
	assert.NoError(t, roman.Verify(g, f, roman.Perfect))
}

func TestGreedy_FeasibleOnRandomGraphs(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := randomGraph(t, seed, 40, 0.1)
		f, err := roman.Greedy(g)
		require.NoError(t, err)
		assert.NoError(t, roman.Verify(g, f, roman.Perfect))
		assert.NoError(t, roman.Verify(g, f, roman.Standard))
	}

	_, err := roman.Greedy(nil)
	assert.ErrorIs(t, err, roman.ErrNilGraph)
}

func TestDominator(t *testing.T) {
	g := build(t, builder.Path(3), builder.Empty(1))

	f, err := roman.Dominator(g, 1)
	require.NoError(t, err)
	assert.Equal(t, labels(0, 2, 0, 0), f)

	f, err = roman.Dominator(g, 3)
	require.NoError(t, err)
	assert.Equal(t, labels(0, 0, 0, 1), f)

	_, err = roman.Dominator(g, 4)
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestPenaltyCost(t *testing.T) {
	g := build(t, builder.Path(3))

	cost, ok, err := roman.PenaltyCost(g, labels(0, 2, 0), roman.Perfect)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, cost)

	cost, ok, err = roman.PenaltyCost(g, labels(0, 1, 0), roman.Perfect)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1+roman.PenaltyFactor*3, cost)

	_, _, err = roman.PenaltyCost(g, labels(0), roman.Perfect)
	assert.ErrorIs(t, err, roman.ErrLengthMismatch)
}
