// Package csvio reads knapsack instances and writes solutions in the plain
// comma-separated text format used by the knapsack command.
//
// Instance format:
//
//	item, points, weight, volume      <- header, always skipped
//	knapsack, 0, 1000, 1000           <- the container: value, weight capacity, volume capacity
//	a, 60, 5, 4
//	b, 100, 4, 6
//
// Fields are integers separated by commas; spaces around fields are ignored.
// Exactly one row must be named "knapsack"; every other row is an item, kept
// in file order (the order the solvers enumerate).
//
// Solution format:
//
//	points:220
//	b
//	c
//
// The first line carries the total value, followed by one chosen ID per line
// in choice order. SaveFile appends, so several runs can share one file.
package csvio
