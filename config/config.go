// Package config loads romandom run settings.
//
// Sources, later overriding earlier:
//
//	Default() → YAML file (optional) → environment (prefix ROMANDOM_) → CLI flags
//
// Validate checks the merged result with go-playground/validator struct tags;
// every failure is reported as ErrInvalidConfig wrapped with the field name.
// Options converts a valid Config into ga.Options.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/romandom/ga"
	"github.com/katalvlaran/romandom/roman"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ROMANDOM_"

// ErrInvalidConfig indicates a configuration value outside its domain, an
// unknown YAML key, or an unparsable environment variable.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full configuration surface of the CLI.
type Config struct {
	PopulationFactor int     `yaml:"population_factor" env:"POPULATION_FACTOR" validate:"gte=1"`
	PopulationSize   int     `yaml:"population_size" env:"POPULATION_SIZE" validate:"eq=0|gte=2"`
	EliteFraction    float64 `yaml:"elite_fraction" env:"ELITE_FRACTION" validate:"gte=0,lt=1"`
	MutationRate     float64 `yaml:"mutation_rate" env:"MUTATION_RATE" validate:"gte=0,lte=1"`
	CrossoverRate    float64 `yaml:"crossover_rate" env:"CROSSOVER_RATE" validate:"gte=0,lte=1"`
	CutPolicy        string  `yaml:"cut_policy" env:"CUT_POLICY" validate:"oneof=uniform middle"`
	TournamentSize   int     `yaml:"tournament_size" env:"TOURNAMENT_SIZE" validate:"gte=1"`
	MaxGenerations   int     `yaml:"max_generations" env:"MAX_GENERATIONS" validate:"gte=0"`
	MaxStagnation    int     `yaml:"max_stagnation" env:"MAX_STAGNATION" validate:"gte=1"`

	Trials    int           `yaml:"trials" env:"TRIALS" validate:"gte=1"`
	Workers   int           `yaml:"workers" env:"WORKERS" validate:"gte=1"`
	Seed      int64         `yaml:"seed" env:"SEED"`
	TimeLimit time.Duration `yaml:"time_limit" env:"TIME_LIMIT" validate:"gte=0"`

	Encoding        string  `yaml:"encoding" env:"ENCODING" validate:"oneof=keys labels"`
	Decoder         string  `yaml:"decoder" env:"DECODER" validate:"oneof=threshold order"`
	Variant         string  `yaml:"variant" env:"VARIANT" validate:"oneof=perfect standard"`
	Sweep           string  `yaml:"sweep" env:"SWEEP" validate:"oneof=single fixed"`
	Fitness         string  `yaml:"fitness" env:"FITNESS" validate:"oneof=repair penalty"`
	LightProtection float64 `yaml:"light_protection" env:"LIGHT_PROTECTION" validate:"gte=0,lte=1"`

	Output      string `yaml:"output" env:"OUTPUT"`
	XLSX        string `yaml:"xlsx" env:"XLSX"`
	Store       string `yaml:"store" env:"STORE"`
	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR" validate:"omitempty,hostname_port"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=panic fatal error warn warning info debug trace"`
	LogFormat   string `yaml:"log_format" env:"LOG_FORMAT" validate:"oneof=text json"`
}

// Default returns the configuration matching ga.DefaultOptions, one trial on
// one worker, and info-level text logs.
func Default() Config {
	o := ga.DefaultOptions()

	return Config{
		PopulationFactor: o.PopulationFactor,
		EliteFraction:    o.EliteFraction,
		MutationRate:     o.MutationRate,
		CrossoverRate:    o.CrossoverRate,
		CutPolicy:        o.CutPolicy.String(),
		TournamentSize:   o.TournamentSize,
		MaxGenerations:   o.MaxGenerations,
		MaxStagnation:    o.MaxStagnation,
		Trials:           1,
		Workers:          1,
		Encoding:         o.Encoding.String(),
		Decoder:          o.Decoder.Policy.Name(),
		Variant:          o.Decoder.Variant.String(),
		Sweep:            o.Decoder.Sweep.String(),
		Fitness:          o.Fitness.String(),
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Load merges Default, the YAML file at path (skipped when path is empty) and
// the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err = decodeYAML(bytes.NewReader(raw), &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("environment: %v: %w", err, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// decodeYAML overlays r onto cfg, rejecting unknown keys. An empty document
// leaves cfg unchanged.
func decodeYAML(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("yaml: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

var validate = newValidator()

// newValidator reports fields by their YAML key.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	return v
}

// Validate checks every field; the first failure is returned as
// ErrInvalidConfig naming the YAML key and the violated rule.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		if c.Fitness == "penalty" && c.Encoding != "labels" {
			return fmt.Errorf("fitness=penalty requires encoding=labels: %w", ErrInvalidConfig)
		}

		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return fmt.Errorf("%s=%v violates %q: %w", fe.Field(), fe.Value(), fe.Tag(), ErrInvalidConfig)
	}

	return fmt.Errorf("%v: %w", err, ErrInvalidConfig)
}

// Options converts c into ga.Options. c must be valid.
func (c Config) Options() ga.Options {
	o := ga.DefaultOptions()
	o.PopulationFactor = c.PopulationFactor
	o.PopulationSize = c.PopulationSize
	o.EliteFraction = c.EliteFraction
	o.MutationRate = c.MutationRate
	o.CrossoverRate = c.CrossoverRate
	o.TournamentSize = c.TournamentSize
	o.MaxGenerations = c.MaxGenerations
	o.MaxStagnation = c.MaxStagnation
	o.TimeLimit = c.TimeLimit
	o.Seed = c.Seed

	if c.CutPolicy == "middle" {
		o.CutPolicy = ga.MiddleCut
	}
	if c.Encoding == "labels" {
		o.Encoding = ga.EncodingLabels
	}
	if c.Fitness == "penalty" {
		o.Fitness = ga.FitnessPenalty
	}
	o.Decoder = c.Decoding()

	return o
}

// Decoding builds the roman.Decoder selected by c.
func (c Config) Decoding() roman.Decoder {
	d := roman.DefaultDecoder()
	if c.Decoder == "order" {
		d.Policy = roman.OrderPolicy{LightProtection: c.LightProtection}
	}
	if c.Variant == "standard" {
		d.Variant = roman.Standard
	}
	if c.Sweep == "fixed" {
		d.Sweep = roman.FixedPoint
	}

	return d
}
