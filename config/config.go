package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/greedy"
	"github.com/katalvlaran/kxtabu/jumpstart"
	"github.com/katalvlaran/kxtabu/oracle"
	"github.com/katalvlaran/kxtabu/tabu"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// Accepted values of the order fields.
const (
	OrderNone       = "none"
	OrderAscending  = "ascending"
	OrderDescending = "descending"
)

// Config is the full run configuration.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	Greedy    GreedyConfig    `yaml:"greedy"`
	JumpStart JumpStartConfig `yaml:"jumpstart"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Log       LogConfig       `yaml:"log"`
}

// SearchConfig tunes the tabu search and instance preparation.
type SearchConfig struct {
	K               int           `yaml:"k" validate:"gte=2"`
	TimeLimit       time.Duration `yaml:"time_limit" validate:"gt=0s"`
	UpperBound      int           `yaml:"upper_bound" validate:"gte=0"` // 0: compute with the oracle
	TabuCapacity    int           `yaml:"tabu_capacity" validate:"gte=1"`
	InitialSample   int           `yaml:"initial_sample" validate:"gte=0"`
	SampleStep      int           `yaml:"sample_step" validate:"gte=0"`
	StagnationLimit int           `yaml:"stagnation_limit" validate:"gte=0"`
	PoolSize        int           `yaml:"pool_size" validate:"gte=1"`
	Seed            int64         `yaml:"seed"`
	Reorder         string        `yaml:"reorder" validate:"oneof=none ascending descending"`
}

// GreedyConfig tunes the randomized greedy builder.
type GreedyConfig struct {
	Retention float64 `yaml:"retention" validate:"gt=0,lte=1"`
	PoolSize  int     `yaml:"pool_size" validate:"gte=1"`
	Order     string  `yaml:"order" validate:"oneof=ascending descending"`
}

// JumpStartConfig bounds the greedy phase. A non-zero Budget overrides Runs.
type JumpStartConfig struct {
	Runs   int           `yaml:"runs" validate:"gte=1"`
	Budget time.Duration `yaml:"budget" validate:"gte=0s"`
}

// OracleConfig tunes the reference MAXSAT oracle.
type OracleConfig struct {
	PoolGap   float64 `yaml:"pool_gap" validate:"gte=0,lte=1"`
	MaxCycles int     `yaml:"max_cycles" validate:"gte=0"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	tc := tabu.DefaultConfig()

	return Config{
		Search: SearchConfig{
			K:               tc.K,
			TimeLimit:       tc.TimeLimit,
			UpperBound:      tc.UpperBound,
			TabuCapacity:    tc.TabuCapacity,
			InitialSample:   tc.InitialSample,
			SampleStep:      tc.SampleStep,
			StagnationLimit: tc.StagnationLimit,
			PoolSize:        tc.PoolSize,
			Reorder:         OrderNone,
		},
		Greedy: GreedyConfig{
			Retention: greedy.DefaultRetention,
			PoolSize:  greedy.DefaultPoolSize,
			Order:     OrderDescending,
		},
		JumpStart: JumpStartConfig{Runs: jumpstart.DefaultRuns},
		Oracle: OracleConfig{
			PoolGap:   oracle.DefaultPoolGap,
			MaxCycles: oracle.DefaultMaxCycles,
		},
		Log: LogConfig{Level: "info", Format: telemetry.FormatText},
	}
}

// Load merges defaults, the YAML file at path (skipped when path is
// empty) and the environment, then validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %s: %w", path, err)
		}
	}
	if err := loadEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// loadFile decodes path over cfg. Unknown keys are rejected; an empty
// file leaves cfg unchanged.
func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// Validate checks every field against its struct tag.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// TabuConfig returns the engine configuration of the search section.
func (c Config) TabuConfig() tabu.Config {
	s := c.Search

	return tabu.Config{
		K:               s.K,
		TimeLimit:       s.TimeLimit,
		UpperBound:      s.UpperBound,
		TabuCapacity:    s.TabuCapacity,
		InitialSample:   s.InitialSample,
		SampleStep:      s.SampleStep,
		StagnationLimit: s.StagnationLimit,
		PoolSize:        s.PoolSize,
		Seed:            s.Seed,
	}
}

// JumpStartOptions returns the jump-start options of the greedy and
// jumpstart sections. A non-zero search seed also seeds the greedy runs.
func (c Config) JumpStartOptions() []jumpstart.Option {
	opts := []jumpstart.Option{
		jumpstart.WithRetention(c.Greedy.Retention),
		jumpstart.WithPoolSize(c.Greedy.PoolSize),
		jumpstart.WithOrder(c.GreedyOrder()),
	}
	if c.JumpStart.Budget > 0 {
		opts = append(opts, jumpstart.WithBudget(c.JumpStart.Budget))
	} else {
		opts = append(opts, jumpstart.WithRuns(c.JumpStart.Runs))
	}
	if c.Search.Seed != 0 {
		opts = append(opts, jumpstart.WithSeed(c.Search.Seed))
	}

	return opts
}

// OracleOptions returns the options of the oracle section.
func (c Config) OracleOptions() []oracle.Option {
	return []oracle.Option{
		oracle.WithPoolGap(c.Oracle.PoolGap),
		oracle.WithMaxCycles(c.Oracle.MaxCycles),
	}
}

// GreedyOrder maps the greedy order name.
func (c Config) GreedyOrder() greedy.Order {
	if c.Greedy.Order == OrderAscending {
		return greedy.Ascending
	}

	return greedy.Descending
}

// Reorder reports the degree order requested for preprocessing; ok is
// false for "none".
func (c Config) Reorder() (order compat.Order, ok bool) {
	switch c.Search.Reorder {
	case OrderAscending:
		return compat.Ascending, true
	case OrderDescending:
		return compat.Descending, true
	default:
		return 0, false
	}
}

// Logger builds the slog logger of the log section writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := telemetry.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	return telemetry.NewLogger(w, level, c.Log.Format)
}
