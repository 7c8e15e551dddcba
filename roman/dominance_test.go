package roman_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/roman"
)

func TestDominanceCounts_Star(t *testing.T) {
	g := build(t, builder.Star(4))

	count, err := roman.DominanceCounts(g, labels(2, 0, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 1}, count)
}

func TestVerify_VariantsDiffer(t *testing.T) {
	g := build(t, builder.Cycle(4))
	f := labels(2, 0, 2, 0)

	assert.NoError(t, roman.Verify(g, f, roman.Standard))

	err := roman.Verify(g, f, roman.Perfect)
	require.ErrorIs(t, err, roman.ErrInfeasible)
	assert.Contains(t, err.Error(), "vertex 1")
	assert.False(t, roman.Feasible(g, f, roman.Perfect))
}

func TestVerify_UnprotectedZero(t *testing.T) {
	g := build(t, builder.Path(3))

	require.ErrorIs(t, roman.Verify(g, labels(1, 0, 1), roman.Standard), roman.ErrInfeasible)
	assert.True(t, roman.Feasible(g, labels(0, 2, 0), roman.Perfect))
}

func TestValidation(t *testing.T) {
	g := build(t, builder.Path(3))

	_, err := roman.DominanceCounts(nil, labels(0))
	assert.ErrorIs(t, err, roman.ErrNilGraph)

	_, err = roman.DominanceCounts(g, labels(0, 2))
	assert.ErrorIs(t, err, roman.ErrLengthMismatch)

	_, err = roman.DominanceCounts(g, roman.Labeling{0, 3, 0})
	assert.ErrorIs(t, err, roman.ErrInvalidLabel)

	_, err = roman.FromInts([]int{0, -1})
	assert.ErrorIs(t, err, roman.ErrInvalidLabel)
}

func TestLabeling_Helpers(t *testing.T) {
	f := labels(2, 0, 1)

	assert.Equal(t, 3, f.Cost())
	assert.Equal(t, "2 0 1", f.String())
	assert.Equal(t, []int{2, 0, 1}, f.Ints())

	c := f.Clone()
	c[0] = roman.Zero
	assert.Equal(t, roman.Two, f[0])
	assert.Equal(t, "perfect", roman.Perfect.String())
	assert.Equal(t, "fixed", roman.FixedPoint.String())
}
