package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/romandom/config"
	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/graph"
	"github.com/katalvlaran/romandom/metrics"
	"github.com/katalvlaran/romandom/report"
	"github.com/katalvlaran/romandom/store"
)

type solveFlags struct {
	warmStart   bool
	printLabels bool
}

func newSolveCommand(g *globals) *cobra.Command {
	var (
		fv = config.Default()
		sf solveFlags
	)
	cmd := &cobra.Command{
		Use:   "solve GRAPH...",
		Short: "Run the genetic algorithm on one or more graph files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			log, err := newLogger(cfg, g.stderr)
			if err != nil {
				return err
			}

			return solve(cmd.Context(), cfg, sf, args, cmd.OutOrStdout(), log)
		},
	}
	bindConfigFlags(cmd.Flags(), &fv)
	cmd.Flags().BoolVar(&sf.warmStart, "warm-start", false, "seed the population with the best stored labeling (requires --store)")
	cmd.Flags().BoolVar(&sf.printLabels, "print-labels", false, "print the best labeling of every trial")

	return cmd
}

// solver carries the optional sinks of one solve invocation.
type solver struct {
	cfg       config.Config
	flags     solveFlags
	out       io.Writer
	log       logrus.FieldLogger
	runs      *store.Store
	collector *metrics.Collector
	records   []report.Record
}

func solve(ctx context.Context, cfg config.Config, sf solveFlags, paths []string, out io.Writer, log logrus.FieldLogger) error {
	s := &solver{cfg: cfg, flags: sf, out: out, log: log}

	if cfg.Store != "" {
		st, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		s.runs = st
	} else if sf.warmStart {
		return errors.New("--warm-start requires --store")
	}

	if cfg.MetricsAddr != "" {
		reg := prometheus.NewRegistry()
		s.collector = metrics.NewCollector(reg)
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.WithError(err).Error("metrics server stopped")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		log.WithField("addr", cfg.MetricsAddr).Info("serving metrics")
	}

	for _, path := range paths {
		if err := s.solveFile(ctx, path); err != nil {
			return err
		}
		if ctx.Err() != nil {
			break
		}
	}

	if cfg.XLSX != "" {
		if err := report.WriteXLSX(cfg.XLSX, s.records); err != nil {
			return err
		}
		log.WithField("path", cfg.XLSX).Info("xlsx report written")
	}

	return nil
}

func (s *solver) solveFile(ctx context.Context, path string) error {
	g, err := graph.ReadFile(path)
	if err != nil {
		return err
	}
	name := filepath.Base(path)
	log := s.log.WithFields(logrus.Fields{"graph": name, "order": g.Order(), "size": g.Size()})

	opts := s.cfg.Options()
	opts.Logger = log
	if s.collector != nil {
		opts.OnGeneration = s.collector.OnGeneration(name)
	}
	if s.flags.warmStart {
		if err = s.addWarmStart(&opts, name, g.Order(), log); err != nil {
			return err
		}
	}

	results, err := ga.RunTrials(ctx, g, opts, s.cfg.Trials, s.cfg.Workers)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	recs := make([]report.Record, 0, len(results))
	for i, res := range results {
		rec := report.NewRecord(name, g, res.Best.Cost, res.Elapsed)
		recs = append(recs, rec)
		fmt.Fprintf(s.out, "%s\ttrial=%d\tcost=%d\tgenerations=%d\treason=%s\telapsed=%.3fs\n",
			name, i, res.Best.Cost, res.Generations, res.Reason, rec.ElapsedSeconds)
		if s.flags.printLabels {
			fmt.Fprintln(s.out, res.Best.Labels)
		}
		if s.collector != nil {
			s.collector.ObserveRun(name, res)
		}
		if s.runs != nil {
			if err = s.runs.Save(store.NewRun(name, g.Order(), g.Size(), opts.Decoder.Variant, res)); err != nil {
				return err
			}
		}
	}
	s.records = append(s.records, recs...)

	if s.cfg.Output != "" {
		if err = report.AppendCSV(s.cfg.Output, recs...); err != nil {
			return err
		}
	}

	return nil
}

// addWarmStart seeds opts with the best stored labeling of name, if any.
func (s *solver) addWarmStart(opts *ga.Options, name string, order int, log logrus.FieldLogger) error {
	best, err := s.runs.Best(name)
	if errors.Is(err, store.ErrNotFound) {
		log.Debug("no stored run to warm-start from")
		return nil
	}
	if err != nil {
		return err
	}
	f, err := best.Labeling()
	if err != nil {
		return err
	}
	if len(f) != order {
		log.WithField("stored_order", len(f)).Warn("stored labeling does not fit the graph, ignored")
		return nil
	}
	opts.Seeds = append(opts.Seeds, f)
	log.WithFields(logrus.Fields{"run": best.ID, "fitness": best.Fitness}).Info("warm start")

	return nil
}
