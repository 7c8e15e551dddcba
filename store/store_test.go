package store_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/roman"
	"github.com/katalvlaran/romandom/store"
)

func openStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func run(graph string, fitness int, createdAt int64) *store.Run {
	return &store.Run{Graph: graph, Fitness: fitness, Labels: []int{2, 0, 0}, CreatedAt: createdAt}
}

func TestSave_AssignsIDAndTime(t *testing.T) {
	s := openStore(t)
	r := &store.Run{Graph: "g", Fitness: 3, Labels: []int{2, 0, 1}}

	require.NoError(t, s.Save(r))
	_, err := uuid.Parse(r.ID)
	require.NoError(t, err)
	assert.NotZero(t, r.CreatedAt)

	got, err := s.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestBest_MinimumFitnessEarliestFirst(t *testing.T) {
	s := openStore(t)
	for _, r := range []*store.Run{
		run("g", 7, 1),
		run("g", 5, 3),
		run("g", 5, 2),
		run("h", 1, 4),
	} {
		require.NoError(t, s.Save(r))
	}

	best, err := s.Best("g")
	require.NoError(t, err)
	assert.Equal(t, 5, best.Fitness)
	assert.Equal(t, int64(2), best.CreatedAt)

	_, err = s.Best("missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestList(t *testing.T) {
	s := openStore(t)
	require.NoError(t, s.Save(run("g", 4, 20)))
	require.NoError(t, s.Save(run("h", 2, 5)))
	require.NoError(t, s.Save(run("g", 3, 10)))

	gs, err := s.List("g")
	require.NoError(t, err)
	require.Len(t, gs, 2)
	assert.Equal(t, int64(10), gs[0].CreatedAt)

	all, err := s.List("")
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "h", all[0].Graph)
}

func TestGet_NotFound(t *testing.T) {
	s := openStore(t)

	_, err := s.Get(uuid.NewString())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestNewRun_RoundTripsLabeling(t *testing.T) {
	res := ga.Result{
		Best:        &ga.Solution{Labels: roman.Labeling{2, 0, 1}, Cost: 3, Feasible: true},
		Seed:        9,
		Generations: 12,
		Reason:      ga.ReasonStagnation,
		Elapsed:     2 * time.Second,
	}
	r := store.NewRun("p3", 3, 2, roman.Perfect, res)
	assert.Equal(t, "stagnation", r.Reason)
	assert.Equal(t, "perfect", r.Variant)
	assert.Equal(t, 2.0, r.ElapsedSeconds)

	s := openStore(t)
	require.NoError(t, s.Save(r))
	best, err := s.Best("p3")
	require.NoError(t, err)
	f, err := best.Labeling()
	require.NoError(t, err)
	assert.Equal(t, roman.Labeling{2, 0, 1}, f)
}
