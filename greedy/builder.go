package greedy

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/katalvlaran/kxtabu/cycles"
)

// Builder produces randomized greedy packings from a ranked cycle catalog.
type Builder struct {
	ranked   []cycles.Cycle // retained cycles, best rank first
	scores   []float64      // parallel to ranked
	catalog  []int          // ranked position -> catalog index
	byVertex map[int][]int  // vertex -> ranked positions containing it
	poolSize int
	rng      *rand.Rand

	history map[string]struct{}
	runs    int
	elapsed time.Duration
}

// New ranks cs by scores and retains the configured fraction.
// Ties in score keep ascending catalog index. cs and scores must be
// parallel, otherwise ErrLengthMismatch is returned.
// Complexity: O(C log C + Σ|c|).
func New(cs []cycles.Cycle, scores []float64, opts ...Option) (*Builder, error) {
	if len(cs) != len(scores) {
		return nil, fmt.Errorf("New: %d cycles, %d scores: %w", len(cs), len(scores), ErrLengthMismatch)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = timeSeeded()
	}

	order := make([]int, len(cs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if o.order == Ascending {
			return scores[order[a]] < scores[order[b]]
		}
		return scores[order[a]] > scores[order[b]]
	})
	keep := int(math.Ceil(o.retention * float64(len(cs))))
	if keep > len(cs) {
		keep = len(cs)
	}
	order = order[:keep]

	b := &Builder{
		ranked:   make([]cycles.Cycle, keep),
		scores:   make([]float64, keep),
		catalog:  order,
		byVertex: make(map[int][]int),
		poolSize: o.poolSize,
		rng:      o.rng,
		history:  make(map[string]struct{}),
	}
	for pos, ci := range order {
		b.ranked[pos] = cs[ci]
		b.scores[pos] = scores[ci]
		for _, v := range cs[ci] {
			b.byVertex[v] = append(b.byVertex[v], pos)
		}
	}

	return b, nil
}

// Candidates returns the number of retained cycles.
func (b *Builder) Candidates() int { return len(b.ranked) }

// Run performs one randomized construction and returns vertex-disjoint
// cycles in acceptance order. The returned cycles alias the catalog and
// must not be modified.
//
// Stage 1 (Pool): collect up to R alive cycles in rank order; a cycle is
// alive while none of its vertices is matched.
// Stage 2 (Pick): try pool members in random order, rejecting those whose
// acceptance would reproduce a remembered result; stop early if all are
// rejected.
// Stage 3 (Commit): kill every cycle sharing a vertex with the accepted one.
//
// Complexity: O(steps·(R + C_dead)) amortized, the head cursor skips dead
// cycles at the front of the ranking once.
func (b *Builder) Run() []cycles.Cycle {
	chosen := b.construct()
	out := make([]cycles.Cycle, len(chosen))
	for i, pos := range chosen {
		out[i] = b.ranked[pos]
	}

	return out
}

// RunScored is Run plus the scores of the returned cycles.
func (b *Builder) RunScored() ([]cycles.Cycle, []float64) {
	chosen := b.construct()
	cs := make([]cycles.Cycle, len(chosen))
	scores := make([]float64, len(chosen))
	for i, pos := range chosen {
		cs[i], scores[i] = b.ranked[pos], b.scores[pos]
	}

	return cs, scores
}

// construct runs one construction and returns ranked positions.
func (b *Builder) construct() []int {
	start := time.Now()
	defer func() {
		b.runs++
		b.elapsed += time.Since(start)
	}()

	alive := make([]bool, len(b.ranked))
	for i := range alive {
		alive[i] = true
	}
	var (
		head   int
		chosen []int // ranked positions in acceptance order
		pool   = make([]int, 0, b.poolSize)
	)
	for {
		for head < len(alive) && !alive[head] {
			head++
		}
		pool = pool[:0]
		for i := head; i < len(alive) && len(pool) < b.poolSize; i++ {
			if alive[i] {
				pool = append(pool, i)
			}
		}
		if len(pool) == 0 {
			break
		}

		pick := -1
		for _, j := range b.rng.Perm(len(pool)) {
			if _, seen := b.history[b.signature(chosen, pool[j])]; !seen {
				pick = pool[j]
				break
			}
		}
		if pick < 0 {
			break
		}
		chosen = append(chosen, pick)
		for _, v := range b.ranked[pick] {
			for _, pos := range b.byVertex[v] {
				alive[pos] = false
			}
		}
	}

	b.history[b.signature(chosen, -1)] = struct{}{}

	return chosen
}

// signature renders the sorted catalog indices of chosen plus extra
// (ignored when negative).
func (b *Builder) signature(chosen []int, extra int) string {
	ids := make([]int, 0, len(chosen)+1)
	for _, pos := range chosen {
		ids = append(ids, b.catalog[pos])
	}
	if extra >= 0 {
		ids = append(ids, b.catalog[extra])
	}
	sort.Ints(ids)

	var sb strings.Builder
	for i, id := range ids {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(id))
	}

	return sb.String()
}

// Runs returns the number of completed Run calls.
func (b *Builder) Runs() int { return b.runs }

// HistorySize returns the number of distinct results remembered.
func (b *Builder) HistorySize() int { return len(b.history) }

// AverageRunTime is the mean wall-clock duration of Run, zero before the
// first call.
func (b *Builder) AverageRunTime() time.Duration {
	if b.runs == 0 {
		return 0
	}

	return b.elapsed / time.Duration(b.runs)
}
