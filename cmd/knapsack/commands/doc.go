// Package commands defines the knapsack CLI.
//
// Commands
//
//   - solve FILE   Solve one instance with one algorithm and print the solution
//   - run FILE     Solve one instance with several algorithms concurrently and
//     append each solution to <FILE>_solution_<algorithm>.csv
//   - generate     Write a random instance
//   - config       Print the effective configuration as YAML
//
// # Implementation
//
// The root command resolves configuration (flags, KNAPSACK_* environment,
// optional YAML file), builds the logger and the metrics recorder before any
// subcommand runs, and writes the metrics textfile after it finishes.
package commands
