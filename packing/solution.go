package packing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
)

// Scored is a cycle paired with its precomputed score.
type Scored struct {
	Cycle cycles.Cycle
	Score float64
}

// Solution is an immutable set of vertex-disjoint scored cycles.
// The zero value is the empty packing.
type Solution struct {
	items     []Scored
	covered   map[int]struct{}
	objective int
	score     float64
	signature string
}

// New builds a Solution from the given items.
// Returns ErrShortCycle for cycles with fewer than two vertices and
// ErrOverlap when two cycles share a vertex.
// Complexity: O(V + C log C) for V covered vertices and C cycles.
func New(items ...Scored) (Solution, error) {
	own := make([]Scored, len(items))
	covered := make(map[int]struct{})
	for i, it := range items {
		if len(it.Cycle) < 2 {
			return Solution{}, fmt.Errorf("item %d %v: %w", i, it.Cycle, ErrShortCycle)
		}
		for _, v := range it.Cycle {
			if _, dup := covered[v]; dup {
				return Solution{}, fmt.Errorf("item %d %v: vertex %d: %w", i, it.Cycle, v, ErrOverlap)
			}
			covered[v] = struct{}{}
		}
		own[i] = Scored{Cycle: it.Cycle.Clone(), Score: it.Score}
	}

	return assemble(own, covered), nil
}

// FromCycles scores each cycle against ps and builds a Solution.
func FromCycles(ps cycles.PairScore, cs ...cycles.Cycle) (Solution, error) {
	items := make([]Scored, len(cs))
	for i, c := range cs {
		items[i] = Scored{Cycle: c, Score: cycles.ScoreOne(c, ps)}
	}

	return New(items...)
}

// assemble sorts items canonically and derives the aggregate fields.
// It takes ownership of items and covered.
func assemble(items []Scored, covered map[int]struct{}) Solution {
	keys := make([]string, len(items))
	for i := range items {
		keys[i] = items[i].Cycle.Key()
	}
	sort.Sort(byKey{items: items, keys: keys})

	s := Solution{items: items, covered: covered, objective: len(covered)}
	for _, it := range items {
		s.score += it.Score
	}
	s.signature = strings.Join(keys, "|")

	return s
}

// byKey sorts items and their keys in lockstep.
type byKey struct {
	items []Scored
	keys  []string
}

func (b byKey) Len() int           { return len(b.items) }
func (b byKey) Less(i, j int) bool { return b.keys[i] < b.keys[j] }
func (b byKey) Swap(i, j int) {
	b.items[i], b.items[j] = b.items[j], b.items[i]
	b.keys[i], b.keys[j] = b.keys[j], b.keys[i]
}

// Len returns the number of cycles.
func (s Solution) Len() int { return len(s.items) }

// Objective returns the number of covered vertices (Σ|c|).
func (s Solution) Objective() int { return s.objective }

// Score returns the sum of the cycle scores.
func (s Solution) Score() float64 { return s.score }

// Signature is the canonical identity of the packing: sorted cycle keys
// joined by "|". The empty packing has the empty signature.
func (s Solution) Signature() string { return s.signature }

// Items returns a copy of the scored cycles in canonical order.
func (s Solution) Items() []Scored {
	out := make([]Scored, len(s.items))
	for i, it := range s.items {
		out[i] = Scored{Cycle: it.Cycle.Clone(), Score: it.Score}
	}

	return out
}

// Item returns the i-th cycle in canonical order without copying.
// The returned Cycle must not be modified.
func (s Solution) Item(i int) Scored { return s.items[i] }

// Cycles returns copies of the cycles in canonical order.
func (s Solution) Cycles() []cycles.Cycle {
	out := make([]cycles.Cycle, len(s.items))
	for i, it := range s.items {
		out[i] = it.Cycle.Clone()
	}

	return out
}

// Covers reports whether v belongs to some cycle of the packing.
func (s Solution) Covers(v int) bool {
	_, ok := s.covered[v]
	return ok
}

// Covered returns the covered vertices in ascending order.
func (s Solution) Covered() []int {
	out := make([]int, 0, len(s.covered))
	for v := range s.covered {
		out = append(out, v)
	}
	sort.Ints(out)

	return out
}

// Free returns the members of universe that the packing does not cover,
// preserving the order of universe.
func (s Solution) Free(universe []int) []int {
	out := make([]int, 0, len(universe))
	for _, v := range universe {
		if !s.Covers(v) {
			out = append(out, v)
		}
	}

	return out
}

// Remove returns a new Solution without the items at the given canonical
// indices, plus the vertices those items covered (ascending).
// Duplicate indices are ignored; ErrIndexOutOfRange is returned for
// indices outside [0, Len).
func (s Solution) Remove(idx ...int) (Solution, []int, error) {
	drop := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		if i < 0 || i >= len(s.items) {
			return Solution{}, nil, fmt.Errorf("Remove(%d) of %d: %w", i, len(s.items), ErrIndexOutOfRange)
		}
		drop[i] = struct{}{}
	}

	items := make([]Scored, 0, len(s.items)-len(drop))
	covered := make(map[int]struct{}, len(s.covered))
	var freed []int
	for i, it := range s.items {
		if _, gone := drop[i]; gone {
			freed = append(freed, it.Cycle...)
			continue
		}
		items = append(items, it)
		for _, v := range it.Cycle {
			covered[v] = struct{}{}
		}
	}
	sort.Ints(freed)

	return assemble(items, covered), freed, nil
}

// Extend returns a new Solution holding s plus the given items.
// The additions must be disjoint from s and from each other.
func (s Solution) Extend(items ...Scored) (Solution, error) {
	all := make([]Scored, 0, len(s.items)+len(items))
	all = append(all, s.items...)
	all = append(all, items...)

	return New(all...)
}

// Validate checks that every cycle of s is a simple cycle of m.
// Disjointness holds by construction.
func Validate(m compat.Matrix, s Solution) error {
	for _, it := range s.items {
		if err := cycles.Valid(m, it.Cycle); err != nil {
			return err
		}
	}

	return nil
}

// Compare returns +1 if a is better than b, -1 if worse and 0 if equally
// good: higher objective wins, then higher total score.
func Compare(a, b Solution) int {
	switch {
	case a.objective > b.objective:
		return 1
	case a.objective < b.objective:
		return -1
	case a.score > b.score:
		return 1
	case a.score < b.score:
		return -1
	default:
		return 0
	}
}

// Better reports whether a is strictly better than b.
func Better(a, b Solution) bool { return Compare(a, b) > 0 }

// Edges returns the arcs used by the packing, each cycle contributing its
// consecutive arcs and the closing arc.
func (s Solution) Edges() []compat.Edge {
	var out []compat.Edge
	for _, it := range s.items {
		c := it.Cycle
		for i, u := range c {
			out = append(out, compat.Edge{From: u, To: c[(i+1)%len(c)]})
		}
	}

	return out
}

// String renders the packing as "{[a-b] [c-d-e]} obj=N score=X".
func (s Solution) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, it := range s.items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(it.Cycle.String())
	}
	fmt.Fprintf(&sb, "} obj=%d score=%.4f", s.objective, s.score)

	return sb.String()
}
