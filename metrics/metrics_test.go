package metrics_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/romandom/builder"
	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/metrics"
)

func TestCollector_OnGeneration(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	hook := c.OnGeneration("g")

	hook(ga.GenerationStats{Trial: 0, Generation: 1, Best: 9, Stagnation: 0})
	hook(ga.GenerationStats{Trial: 0, Generation: 2, Best: 7, Stagnation: 0})
	hook(ga.GenerationStats{Trial: 1, Generation: 1, Best: 8, Stagnation: 1})

	n, err := testutil.GatherAndCount(reg, "romandom_best_cost")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			if mf.GetName() == "romandom_generations_total" {
				values["generations"] = m.GetCounter().GetValue()
			}
			if mf.GetName() == "romandom_best_cost" && m.GetLabel()[1].GetValue() == "0" {
				values["best0"] = m.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, values["generations"])
	assert.Equal(t, 7.0, values["best0"])
}

func TestCollector_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)

	c.ObserveRun("g", ga.Result{Evaluations: 120, Elapsed: time.Second, Reason: ga.ReasonStagnation})
	c.ObserveRun("g", ga.Result{Evaluations: 30, Elapsed: time.Second, Reason: ga.ReasonStagnation})

	n, err := testutil.GatherAndCount(reg, "romandom_run_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "romandom_evaluations_total" {
			assert.Equal(t, 150.0, mf.GetMetric()[0].GetCounter().GetValue())
		}
		if mf.GetName() == "romandom_run_duration_seconds" {
			assert.Equal(t, uint64(2), mf.GetMetric()[0].GetHistogram().GetSampleCount())
		}
	}
}

func TestCollector_WiredIntoRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := metrics.NewCollector(reg)
	g, err := builder.BuildGraph(nil, builder.Cycle(12))
	require.NoError(t, err)

	o := ga.DefaultOptions()
	o.MaxGenerations = 5
	o.OnGeneration = c.OnGeneration("c12")
	res, err := ga.Run(context.Background(), g, o)
	require.NoError(t, err)
	c.ObserveRun("c12", res)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range mfs {
		if mf.GetName() == "romandom_generations_total" {
			assert.Equal(t, float64(res.Generations), mf.GetMetric()[0].GetCounter().GetValue())
		}
	}
}

func TestNewCollector_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewCollector(reg)

	assert.Panics(t, func() { metrics.NewCollector(reg) })
}
