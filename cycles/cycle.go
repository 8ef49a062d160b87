package cycles

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/kxtabu/compat"
)

// Cycle is an ordered sequence of distinct vertices; consecutive entries
// and the closing pair (last, first) are arcs of the matrix it came from.
// Cycles are treated as immutable once produced.
type Cycle []int

// Len returns the number of vertices (and arcs) in the cycle.
func (c Cycle) Len() int { return len(c) }

// Key renders the traversal sequence as "v0-v1-...". Equal cycles have
// equal keys.
func (c Cycle) Key() string {
	var sb strings.Builder
	for i, v := range c {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (c Cycle) String() string { return "[" + c.Key() + "]" }

// Equal reports element-wise equality of the traversal sequences.
func (c Cycle) Equal(o Cycle) bool {
	if len(c) != len(o) {
		return false
	}
	for i := range c {
		if c[i] != o[i] {
			return false
		}
	}

	return true
}

// Contains reports whether v is a member of the cycle.
func (c Cycle) Contains(v int) bool {
	for _, x := range c {
		if x == v {
			return true
		}
	}

	return false
}

// Clone returns an independent copy.
func (c Cycle) Clone() Cycle { return append(Cycle(nil), c...) }

// Canonical returns a copy rotated to start at its smallest vertex, the
// form produced by Enumerate.
func (c Cycle) Canonical() Cycle {
	if len(c) == 0 {
		return Cycle{}
	}
	lo := 0
	for i, v := range c {
		if v < c[lo] {
			lo = i
		}
	}
	out := make(Cycle, 0, len(c))

	return append(append(out, c[lo:]...), c[:lo]...)
}

// Sorted returns the member vertices in ascending order.
func (c Cycle) Sorted() []int {
	vs := append([]int(nil), c...)
	sort.Ints(vs)

	return vs
}

// Valid checks that c is a simple cycle of m: at least two vertices, no
// repeats, and every arc (wraparound included) present.
func Valid(m compat.Matrix, c Cycle) error {
	if len(c) < 2 {
		return fmt.Errorf("cycle %v: %w", c, ErrInvalidLength)
	}
	seen := make(map[int]struct{}, len(c))
	for _, u := range c {
		if _, dup := seen[u]; dup {
			return fmt.Errorf("cycle %v: vertex %d: %w", c, u, ErrRepeatedVertex)
		}
		seen[u] = struct{}{}
	}
	for i, u := range c {
		w := c[(i+1)%len(c)]
		if !m.Has(u, w) {
			return fmt.Errorf("cycle %v: arc %d→%d: %w", c, u, w, ErrMissingEdge)
		}
	}

	return nil
}
