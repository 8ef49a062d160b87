package oracle_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/oracle"
	"github.com/katalvlaran/kxtabu/telemetry"
)

// ExampleOracle_UpperBound bounds a triangle with a dangling donor.
func ExampleOracle_UpperBound() {
	m, _ := compat.New(4, []compat.Edge{
		{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 0}, {From: 3, To: 0},
	})
	o := oracle.New(oracle.WithLogger(telemetry.Discard()))
	ub, _ := o.UpperBound(context.Background(), m)
	fmt.Println(ub)
	// Output: 3
}

// ExampleOracle_BestPackings repairs a chain of mutual pairs.
func ExampleOracle_BestPackings() {
	m, _ := compat.New(4, []compat.Edge{
		{From: 0, To: 1}, {From: 1, To: 0},
		{From: 1, To: 2}, {From: 2, To: 1},
		{From: 2, To: 3}, {From: 3, To: 2},
	})
	o := oracle.New(oracle.WithLogger(telemetry.Discard()))
	packs, _ := o.BestPackings(context.Background(), m, []int{0, 1, 2, 3}, 2, 1)
	fmt.Println(packs[0])
	// Output: [[0-1] [2-3]]
}
