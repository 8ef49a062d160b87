package tabu

// List is a FIFO of recently admitted packing signatures.
// It may temporarily hold more than its capacity; EvictExcess trims it.
type List struct {
	capacity int
	entries  []entry
	members  map[string]int
}

type entry struct {
	signature string
	iteration int
}

// NewList returns an empty list. Panics if capacity < 1.
func NewList(capacity int) *List {
	if capacity < 1 {
		panic("tabu: NewList(capacity<1)")
	}

	return &List{capacity: capacity, members: make(map[string]int)}
}

// Admit appends signature, stamped with the iteration that chose it.
func (l *List) Admit(signature string, iteration int) {
	l.entries = append(l.entries, entry{signature: signature, iteration: iteration})
	l.members[signature]++
}

// Contains reports whether signature is tabu.
func (l *List) Contains(signature string) bool { return l.members[signature] > 0 }

// EvictExcess drops the oldest entries until Len() <= capacity and
// returns how many were dropped.
func (l *List) EvictExcess() int {
	var n int
	for len(l.entries) > l.capacity {
		old := l.entries[0]
		l.entries = l.entries[1:]
		if l.members[old.signature]--; l.members[old.signature] == 0 {
			delete(l.members, old.signature)
		}
		n++
	}

	return n
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// Capacity returns the configured capacity.
func (l *List) Capacity() int { return l.capacity }

// Oldest returns the iteration stamp of the oldest entry, or -1 if empty.
func (l *List) Oldest() int {
	if len(l.entries) == 0 {
		return -1
	}

	return l.entries[0].iteration
}
