package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/csvio"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/solver"
)

// addSolverFlags registers the flags shared by solve and run.
func addSolverFlags(f *pflag.FlagSet) {
	f.Int(config.KeyReps, 0, "trials for heuristic algorithms (0 = algorithm default)")
	f.Int64(config.KeySeed, 0, "random seed for heuristic algorithms (default: clock)")
	f.Int(config.KeyMaxItems, config.DefaultMaxItems, "refuse exact search above this many items (0 = solver default)")
}

func solveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one instance with one algorithm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, initial, err := csvio.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts, err := a.cfg.SolverOptions()
			if err != nil {
				return err
			}
			opts.Seed = a.seed()
			opts.Wrap = a.wrap

			a.log.Info("solving",
				zap.String("file", args[0]),
				zap.Stringer("algorithm", opts.Algo),
				zap.Int("items", cat.Len()),
				zap.Int64("seed", opts.Seed))

			sol, err := solver.Solve(initial, cat, opts)
			if err != nil {
				return err
			}
			a.log.Info("solved",
				zap.Stringer("algorithm", opts.Algo),
				zap.Int64("value", sol.Value),
				zap.Int("chosen", sol.Len()))

			if err = csvio.Write(cmd.OutOrStdout(), sol); err != nil {
				return err
			}
			if a.cfg.Out != "" {
				return csvio.SaveFile(a.cfg.Out, sol)
			}

			return nil
		},
	}

	cmd.Flags().StringP(config.KeyAlgorithm, "a", config.DefaultAlgorithm,
		"algorithm: recursive, iterative, iterative-copy, random, random-improved")
	cmd.Flags().StringP(config.KeyOut, "o", "", "append the solution to this file")
	addSolverFlags(cmd.Flags())

	return cmd
}
