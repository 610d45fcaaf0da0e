package heuristic_test

import (
	"fmt"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/heuristic"
)

// ExampleNewRandomImproved runs the improved heuristic with a fixed seed.
func ExampleNewRandomImproved() {
	cat, initial := builder.Fixture()

	s, err := heuristic.NewRandomImproved(200, heuristic.WithSeed(1))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	sol, err := s.Solve(initial, cat)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Value, sol.Verify(initial, cat) == nil)

	// Output:
	// 220 true
}
