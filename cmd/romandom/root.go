package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/romandom/config"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	configPath string
	stderr     io.Writer
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	g := &globals{stderr: stderr}
	root := &cobra.Command{
		Use:           "romandom",
		Short:         "Search for light perfect Roman domination labelings with a genetic algorithm",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "YAML configuration file")

	root.AddCommand(
		newSolveCommand(g),
		newGenerateCommand(),
		newVerifyCommand(),
		newExportCommand(),
		newHistoryCommand(),
	)

	return root
}

// loadConfig merges the config file, environment and the flags the user set
// on fs, then validates the result.
func (g *globals) loadConfig(fs *pflag.FlagSet) (config.Config, error) {
	cfg, err := config.Load(g.configPath)
	if err != nil {
		return config.Config{}, err
	}
	overlay := pflag.NewFlagSet("overlay", pflag.ContinueOnError)
	bindConfigFlags(overlay, &cfg)
	fs.Visit(func(f *pflag.Flag) {
		if overlay.Lookup(f.Name) != nil && err == nil {
			err = overlay.Set(f.Name, f.Value.String())
		}
	})
	if err != nil {
		return config.Config{}, err
	}
	if err = cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// bindConfigFlags registers one flag per configuration key, bound to cfg.
func bindConfigFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.IntVar(&cfg.PopulationFactor, "population-factor", cfg.PopulationFactor, "population size is order / factor")
	fs.IntVar(&cfg.PopulationSize, "population-size", cfg.PopulationSize, "fixed population size (0 = use factor)")
	fs.Float64Var(&cfg.EliteFraction, "elite-fraction", cfg.EliteFraction, "fraction of parents kept each generation")
	fs.Float64Var(&cfg.MutationRate, "mutation-rate", cfg.MutationRate, "per-gene mutation probability")
	fs.Float64Var(&cfg.CrossoverRate, "crossover-rate", cfg.CrossoverRate, "probability that a pair is recombined")
	fs.StringVar(&cfg.CutPolicy, "cut-policy", cfg.CutPolicy, "crossover cut: uniform|middle")
	fs.IntVar(&cfg.TournamentSize, "tournament-size", cfg.TournamentSize, "tournament size")
	fs.IntVar(&cfg.MaxGenerations, "max-generations", cfg.MaxGenerations, "generation cap")
	fs.IntVar(&cfg.MaxStagnation, "max-stagnation", cfg.MaxStagnation, "generations without improvement before stopping")
	fs.IntVar(&cfg.Trials, "trials", cfg.Trials, "independent trials per graph")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent trials")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = fixed default)")
	fs.DurationVar(&cfg.TimeLimit, "time-limit", cfg.TimeLimit, "wall-clock budget per trial (0 = unlimited)")
	fs.StringVar(&cfg.Encoding, "encoding", cfg.Encoding, "genotype: keys|labels")
	fs.StringVar(&cfg.Decoder, "decoder", cfg.Decoder, "random-key decoder: threshold|order")
	fs.StringVar(&cfg.Variant, "variant", cfg.Variant, "domination variant: perfect|standard")
	fs.StringVar(&cfg.Sweep, "sweep", cfg.Sweep, "weight reduction: single|fixed")
	fs.StringVar(&cfg.Fitness, "fitness", cfg.Fitness, "label fitness: repair|penalty")
	fs.Float64Var(&cfg.LightProtection, "light-protection", cfg.LightProtection, "order decoder: probability of labeling a covered vertex 1")
	fs.StringVarP(&cfg.Output, "output", "o", cfg.Output, "append results to this CSV file")
	fs.StringVar(&cfg.XLSX, "xlsx", cfg.XLSX, "write an XLSX report of this invocation")
	fs.StringVar(&cfg.Store, "store", cfg.Store, "run history database")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text|json")
}

// newLogger builds the CLI logger; colors only when out is a terminal.
func newLogger(cfg config.Config, out io.Writer) (*logrus.Logger, error) {
	l := logrus.New()
	l.SetOutput(out)
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	l.SetLevel(level)
	if cfg.LogFormat == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: !isTerminal(out),
		})
	}

	return l, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
