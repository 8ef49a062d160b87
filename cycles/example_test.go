package cycles_test

import (
	"fmt"

	"github.com/katalvlaran/kxtabu/compat"
	"github.com/katalvlaran/kxtabu/cycles"
)

// ExampleEnumerate lists the exchange cycles of a small pool.
func ExampleEnumerate() {
	m, _ := compat.New(3, []compat.Edge{
		{From: 0, To: 1}, {From: 1, To: 0},
		{From: 1, To: 2}, {From: 2, To: 0},
	})
	cs, _ := cycles.Enumerate(m, 3)
	for _, c := range cs {
		fmt.Println(c)
	}
	// Output:
	// [0-1]
	// [0-1-2]
}
