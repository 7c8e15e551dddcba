// Package metrics exposes solver progress as Prometheus collectors.
//
// Collector.OnGeneration plugs into ga.Options.OnGeneration; ObserveRun is
// called once per finished run. All series carry a "graph" label; per-trial
// gauges add a "trial" label.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/romandom/ga"
)

const namespace = "romandom"

// Collector owns the romandom series registered on one Registerer.
type Collector struct {
	generations *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	bestCost    *prometheus.GaugeVec
	stagnation  *prometheus.GaugeVec
	runDuration *prometheus.HistogramVec
}

// NewCollector registers the series on reg (prometheus.DefaultRegisterer when nil).
// It panics when the series are already registered on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		generations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Generations completed.",
		}, []string{"graph"}),
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Individuals decoded or repaired by finished runs.",
		}, []string{"graph"}),
		bestCost: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_cost",
			Help:      "Best labeling weight found so far.",
		}, []string{"graph", "trial"}),
		stagnation: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stagnation",
			Help:      "Generations since the last improvement.",
		}, []string{"graph", "trial"}),
		runDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of finished runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 4, 10),
		}, []string{"graph", "reason"}),
	}
}

// OnGeneration returns a ga.Options.OnGeneration hook for graph. It is safe
// for concurrent use by several trials.
func (c *Collector) OnGeneration(graph string) func(ga.GenerationStats) {
	return func(s ga.GenerationStats) {
		trial := strconv.Itoa(s.Trial)
		c.generations.WithLabelValues(graph).Inc()
		c.bestCost.WithLabelValues(graph, trial).Set(float64(s.Best))
		c.stagnation.WithLabelValues(graph, trial).Set(float64(s.Stagnation))
	}
}

// ObserveRun records a finished run.
func (c *Collector) ObserveRun(graph string, res ga.Result) {
	c.evaluations.WithLabelValues(graph).Add(float64(res.Evaluations))
	c.runDuration.WithLabelValues(graph, res.Reason.String()).Observe(res.Elapsed.Seconds())
}
