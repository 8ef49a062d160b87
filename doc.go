// Package kxtabu finds large vertex-disjoint cycle packings in
// kidney-exchange compatibility graphs.
//
// Each vertex is an incompatible donor/recipient pair and an arc i→j means
// the donor of i can give to the recipient of j. A cycle of length at most
// k is a feasible exchange; the objective is the number of covered pairs.
//
// The search is organized under these subpackages:
//
//	compat/     immutable compatibility matrix, reduction and relabelling
//	cycles/     cycle enumeration (length 2..k) and pair/cycle scores
//	packing/    immutable packings with canonical signatures
//	greedy/     randomized greedy construction with a history of results
//	jumpstart/  optimal pairing plus greedy completion of the residual
//	tabu/       destroy/repair tabu search driven by a packing oracle
//	oracle/     MAXSAT pairing and packing oracle, cycle-cover upper bound
//	builder/    random and planted instance generators
//	config/     YAML and environment configuration
//	telemetry/  slog loggers and Prometheus metrics
//
// The kxtabu command (cmd/kxtabu) runs the whole pipeline:
//
//	go install github.com/katalvlaran/kxtabu/cmd/kxtabu@latest
//	kxtabu run --input pool.json --k 3 --time-limit 5m
package kxtabu
