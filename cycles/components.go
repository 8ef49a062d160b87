package cycles

import (
	"sort"

	"github.com/katalvlaran/kxtabu/compat"
)

// Components returns the strongly connected components of m with two or
// more vertices. Every exchange cycle lies inside exactly one of them, so
// the largest component bounds the size of any subproblem worth solving.
// Each component is ascending; components are ordered by first vertex.
//
// Tarjan's algorithm: one depth-first pass assigns discovery indices and
// low-links; a vertex whose low-link equals its own index roots a component
// made of everything above it on the stack.
//
// Complexity: O(n + e) time, O(n) extra memory.
func Components(m compat.Matrix) [][]int {
	t := tarjan{
		m:       m,
		index:   make([]int, m.N()),
		low:     make([]int, m.N()),
		onStack: make([]bool, m.N()),
	}
	for v := range t.index {
		t.index[v] = -1
	}
	for v := 0; v < m.N(); v++ {
		if t.index[v] < 0 {
			t.connect(v)
		}
	}
	sort.Slice(t.out, func(a, b int) bool { return t.out[a][0] < t.out[b][0] })

	return t.out
}

type tarjan struct {
	m       compat.Matrix
	index   []int
	low     []int
	onStack []bool
	stack   []int
	next    int
	out     [][]int
}

func (t *tarjan) connect(v int) {
	t.index[v], t.low[v] = t.next, t.next
	t.next++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, w := range t.m.Successors(v) {
		switch {
		case t.index[w] < 0:
			t.connect(w)
			t.low[v] = min(t.low[v], t.low[w])
		case t.onStack[w]:
			t.low[v] = min(t.low[v], t.index[w])
		}
	}
	if t.low[v] != t.index[v] {
		return
	}

	var comp []int
	for {
		w := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.onStack[w] = false
		comp = append(comp, w)
		if w == v {
			break
		}
	}
	if len(comp) > 1 {
		sort.Ints(comp)
		t.out = append(t.out, comp)
	}
}
