package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "KXTABU_"

type lookupFunc func(key string) (string, bool)

// envBinding sets one field from a raw environment value.
type envBinding struct {
	key string
	set func(c *Config, raw string) error
}

func intVar(dst func(*Config) *int) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

func floatVar(dst func(*Config) *float64) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

func durationVar(dst func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, raw string) error {
		v, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		*dst(c) = v
		return nil
	}
}

func stringVar(dst func(*Config) *string) func(*Config, string) error {
	return func(c *Config, raw string) error {
		*dst(c) = raw
		return nil
	}
}

var envBindings = []envBinding{
	{"K", intVar(func(c *Config) *int { return &c.Search.K })},
	{"TIME_LIMIT", durationVar(func(c *Config) *time.Duration { return &c.Search.TimeLimit })},
	{"UPPER_BOUND", intVar(func(c *Config) *int { return &c.Search.UpperBound })},
	{"TABU_CAPACITY", intVar(func(c *Config) *int { return &c.Search.TabuCapacity })},
	{"INITIAL_SAMPLE", intVar(func(c *Config) *int { return &c.Search.InitialSample })},
	{"SAMPLE_STEP", intVar(func(c *Config) *int { return &c.Search.SampleStep })},
	{"STAGNATION_LIMIT", intVar(func(c *Config) *int { return &c.Search.StagnationLimit })},
	{"POOL_SIZE", intVar(func(c *Config) *int { return &c.Search.PoolSize })},
	{"SEED", func(c *Config, raw string) error {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return err
		}
		c.Search.Seed = v
		return nil
	}},
	{"REORDER", stringVar(func(c *Config) *string { return &c.Search.Reorder })},
	{"GREEDY_RETENTION", floatVar(func(c *Config) *float64 { return &c.Greedy.Retention })},
	{"GREEDY_POOL_SIZE", intVar(func(c *Config) *int { return &c.Greedy.PoolSize })},
	{"GREEDY_ORDER", stringVar(func(c *Config) *string { return &c.Greedy.Order })},
	{"JUMPSTART_RUNS", intVar(func(c *Config) *int { return &c.JumpStart.Runs })},
	{"JUMPSTART_BUDGET", durationVar(func(c *Config) *time.Duration { return &c.JumpStart.Budget })},
	{"ORACLE_POOL_GAP", floatVar(func(c *Config) *float64 { return &c.Oracle.PoolGap })},
	{"ORACLE_MAX_CYCLES", intVar(func(c *Config) *int { return &c.Oracle.MaxCycles })},
	{"LOG_LEVEL", stringVar(func(c *Config) *string { return &c.Log.Level })},
	{"LOG_FORMAT", stringVar(func(c *Config) *string { return &c.Log.Format })},
}

// loadEnv applies every KXTABU_* variable present in lookup.
func loadEnv(cfg *Config, lookup lookupFunc) error {
	for _, b := range envBindings {
		raw, ok := lookup(EnvPrefix + b.key)
		if !ok || raw == "" {
			continue
		}
		if err := b.set(cfg, raw); err != nil {
			return fmt.Errorf("%s%s=%q: %v: %w", EnvPrefix, b.key, raw, err, ErrBadEnv)
		}
	}

	return nil
}
