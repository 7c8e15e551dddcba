package roman_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/roman"
)

func TestRepair_Table(t *testing.T) {
	cases := []struct {
		name    string
		cons    []builder.Constructor
		in      roman.Labeling
		variant roman.Variant
		want    roman.Labeling
	}{
		{"star all zero", []builder.Constructor{builder.Star(5)}, labels(0, 0, 0, 0, 0), roman.Perfect, labels(2, 0, 0, 0, 0)},
		{"isolated forced", []builder.Constructor{builder.Empty(3)}, labels(0, 2, 0), roman.Perfect, labels(1, 1, 1)},
		{"c4 standard keeps double cover", []builder.Constructor{builder.Cycle(4)}, labels(2, 0, 2, 0), roman.Standard, labels(1, 0, 2, 0)},
		{"two stars", []builder.Constructor{builder.Star(4), builder.Star(3)}, labels(0, 0, 0, 0, 0, 0, 0), roman.Perfect, labels(2, 0, 0, 0, 2, 0, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.cons...)
			out, err := roman.Repair(g, tc.in, tc.variant, roman.SingleSweep)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
			assert.NoError(t, roman.Verify(g, out, tc.variant))
		})
	}
}

func TestRepair_C4PerfectIsFeasible(t *testing.T) {
	g := build(t, builder.Cycle(4))

	out, err := roman.Repair(g, labels(2, 0, 2, 0), roman.Perfect, roman.SingleSweep)
	require.NoError(t, err)
	assert.NoError(t, roman.Verify(g, out, roman.Perfect))
}

func TestRepair_RandomAlwaysFeasible(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, v := range []roman.Variant{roman.Perfect, roman.Standard} {
		for trial := 0; trial < 50; trial++ {
			g := randomGraph(t, int64(trial), 40, 0.08)
			out, err := roman.Repair(g, randomLabels(rng, g.Order()), v, roman.SingleSweep)
			require.NoError(t, err)
			require.NoError(t, roman.Verify(g, out, v))
			for _, u := range g.Isolated() {
				assert.Equal(t, roman.One, out[u])
			}
		}
	}
}

func TestRepair_Errors(t *testing.T) {
	g := build(t, builder.Path(3))

	_, err := roman.Repair(g, roman.Labeling{0, 7, 0}, roman.Perfect, roman.SingleSweep)
	assert.ErrorIs(t, err, roman.ErrInvalidLabel)

	_, err = roman.Repair(g, labels(0), roman.Perfect, roman.SingleSweep)
	assert.ErrorIs(t, err, roman.ErrLengthMismatch)
}

func TestRepair_EmptyGraph(t *testing.T) {
	g := build(t, builder.Empty(0))

	out, err := roman.Repair(g, roman.Labeling{}, roman.Perfect, roman.SingleSweep)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Cost())
}
