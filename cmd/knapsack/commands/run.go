package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/csvio"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/solver"
)

// solutionPath names the output of algo for the instance at path:
// "<dir>/<base>_solution_<algo>.csv", with dir defaulting to path's directory.
func solutionPath(path, dir string, algo solver.Algorithm) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if dir == "" {
		dir = filepath.Dir(path)
	}
	name := fmt.Sprintf("%s_solution_%s.csv", base, strings.ReplaceAll(algo.String(), "-", "_"))

	return filepath.Join(dir, name)
}

func runCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run FILE",
		Short: "Solve one instance with several algorithms concurrently",
		Long: `Solve one instance with several algorithms concurrently.

With --seed, each algorithm's first run uses the seed as given, so it prints
what "solve" prints for the same seed. Repeats of the same algorithm in
--algorithms draw from seeds derived from it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algos, err := a.cfg.ParsedAlgorithms()
			if err != nil {
				return err
			}
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== solving:", args[0])

			results, err := solver.SolveAll(cmd.Context(), initial, cat, algos, opts)
			if err != nil {
				return err
			}
			for _, res := range results {
				path := solutionPath(args[0], a.cfg.Out, res.Algo)
				a.log.Info("solved",
					zap.Stringer("algorithm", res.Algo),
					zap.Int64("value", res.Solution.Value),
					zap.Duration("elapsed", res.Elapsed),
					zap.String("output", path))

				if err = csvio.Write(out, res.Solution); err != nil {
					return err
				}
				if err = csvio.SaveFile(path, res.Solution); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSlice(config.KeyAlgorithms, nil, "algorithms to run (default all)")
	cmd.Flags().StringP(config.KeyOut, "o", "", "directory for solution files (default: next to FILE)")
	addSolverFlags(cmd.Flags())

	return cmd
}
