package core_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/core"
)

// ExampleCapacity shows that adding an item yields a new state.
func ExampleCapacity() {
	start := core.NewCapacity(10, 10)
	item := core.Item{ID: "B", Value: 100, Weight: 4, Volume: 6}

	next := start.Add(item)
	fmt.Println(start.Value, start.Weight, start.Volume)
	fmt.Println(next.Value, next.Weight, next.Volume, next.Feasible())
	fmt.Println(next.Fits(core.Item{ID: "big", Weight: 7}))

	// Output:
	// 0 10 10
	// 100 6 4 true
	// false
}
