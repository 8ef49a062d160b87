package tabu

import (
	"fmt"
	"time"
)

// Config holds the tunables of one search.
type Config struct {
	// K is the maximum cycle length passed to the oracle.
	K int
	// TimeLimit is the wall-clock budget of Run.
	TimeLimit time.Duration
	// UpperBound stops the search once reached; 0 means no external bound.
	UpperBound int
	// TabuCapacity is the number of recent packings kept tabu.
	TabuCapacity int
	// InitialSample is the starting number of companions removed per move.
	InitialSample int
	// SampleStep is added to the sample size on stagnation.
	SampleStep int
	// StagnationLimit is the number of non-improving iterations tolerated
	// before the sample grows.
	StagnationLimit int
	// PoolSize is the number of repair packings requested per move.
	PoolSize int
	// Seed drives neighbour sampling; 0 seeds from the clock.
	Seed int64
}

// DefaultConfig returns the tuning used by the reference experiments.
func DefaultConfig() Config {
	return Config{
		K:               4,
		TimeLimit:       30 * time.Minute,
		TabuCapacity:    1,
		InitialSample:   0,
		SampleStep:      5,
		StagnationLimit: 3,
		PoolSize:        1,
	}
}

// Validate reports the first out-of-range field wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.K < 2:
		return fmt.Errorf("K=%d < 2: %w", c.K, ErrInvalidConfig)
	case c.TimeLimit <= 0:
		return fmt.Errorf("TimeLimit=%s <= 0: %w", c.TimeLimit, ErrInvalidConfig)
	case c.UpperBound < 0:
		return fmt.Errorf("UpperBound=%d < 0: %w", c.UpperBound, ErrInvalidConfig)
	case c.TabuCapacity < 1:
		return fmt.Errorf("TabuCapacity=%d < 1: %w", c.TabuCapacity, ErrInvalidConfig)
	case c.InitialSample < 0:
		return fmt.Errorf("InitialSample=%d < 0: %w", c.InitialSample, ErrInvalidConfig)
	case c.SampleStep < 0:
		return fmt.Errorf("SampleStep=%d < 0: %w", c.SampleStep, ErrInvalidConfig)
	case c.StagnationLimit < 0:
		return fmt.Errorf("StagnationLimit=%d < 0: %w", c.StagnationLimit, ErrInvalidConfig)
	case c.PoolSize < 1:
		return fmt.Errorf("PoolSize=%d < 1: %w", c.PoolSize, ErrInvalidConfig)
	}

	return nil
}
