// Package jumpstart builds a strong initial packing for the tabu search.
//
// Build combines an optimal 2-cycle pairing from an external oracle with
// the best of many greedy constructions over the residual graph:
//
//  1. ask the PairingOracle for a maximum-cardinality set of 2-cycles;
//  2. derive the residual matrix without the paired vertices;
//  3. enumerate cycles of length 2..k on the residual;
//  4. run the greedy builder for a run or time budget, keeping the best
//     objective;
//  5. union both parts and check every arc against the original matrix.
//
// Greedy candidates are ranked by scores derived from the residual matrix;
// the returned Solution is scored against the original matrix so it
// compares consistently with the search that consumes it.
package jumpstart
