package tabu

import (
	"fmt"
	"time"

	"github.com/katalvlaran/kxtabu/packing"
)

// Outcome tells why Run stopped.
type Outcome int

const (
	// Failed marks a run that ended with an error.
	Failed Outcome = iota
	// UpperBoundReached means the best objective met the effective bound.
	UpperBoundReached
	// TimeLimitReached means the wall-clock budget elapsed.
	TimeLimitReached
	// Canceled means the context was done before the budget elapsed.
	Canceled
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case Failed:
		return "failed"
	case UpperBoundReached:
		return "upper bound reached"
	case TimeLimitReached:
		return "time limit reached"
	case Canceled:
		return "canceled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Improvement records one increase of the best-known objective.
// The initial packing is recorded as iteration 0.
type Improvement struct {
	Iteration int
	Elapsed   time.Duration
	Objective int
}

// Result summarizes a Run.
type Result struct {
	RunID        string
	Best         packing.Solution
	Objective    int
	Outcome      Outcome
	Iterations   int
	Elapsed      time.Duration
	Improvements []Improvement
}
