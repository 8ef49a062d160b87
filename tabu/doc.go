// Package tabu improves a cycle packing by destroy-and-repair tabu search.
//
// Each iteration removes, for every cycle of the current packing, that
// cycle plus up to S random companions; the freed vertices (together with
// the ones already unmatched) are handed to a PackingOracle which returns
// its best repair packings over exactly that vertex set. Every repair
// yields one neighbour. The best neighbour that is not on the tabu list
// becomes the current packing.
//
// Adaptation:
//
//	S starts at Config.InitialSample. After more than StagnationLimit
//	consecutive non-improving iterations it grows by SampleStep, so the
//	moves become larger the longer the search stalls.
//
// Termination:
//
//	The search ends normally when the best objective reaches the effective
//	upper bound (the configured bound, capped by the number of matchable
//	vertices), when the time limit elapses, or when the context is done.
//	Only an empty admissible neighbourhood, an oracle failure or an oracle
//	packing that does not fit the freed vertices are errors.
//
// The loop is single-threaded; time and cancellation are checked once per
// iteration, never inside oracle calls.
package tabu
