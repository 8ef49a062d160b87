// Package greedy builds cycle packings with a rank-biased randomized greedy
// heuristic over a fixed cycle catalog.
//
// A Builder ranks the catalog by score once (Descending by default) and
// keeps only the best retention fraction. Each Run repeatedly draws a pool
// of up to R top-ranked cycles whose vertices are all still free, picks one
// uniformly at random and removes every cycle that shares a vertex with it,
// until no candidate is left.
//
// History:
//
//	A Builder remembers the canonical signature (sorted catalog indices) of
//	every result it produced. A candidate whose acceptance would reproduce
//	a remembered result exactly is rejected in favour of another pool
//	member; if the whole pool is rejected the run ends early. Repeated
//	calls therefore keep exploring new packings.
//
// Concurrency: a Builder owns its *rand.Rand and history, so it is not safe
// for concurrent use. Independent builders may share one catalog.
package greedy
