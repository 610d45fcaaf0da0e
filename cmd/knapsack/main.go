package main

import (
	"os"

	"github.com/katalvlaran/knapsack/cmd/knapsack/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
