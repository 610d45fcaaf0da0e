package commands

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/builder"
	"github.com/katalvlaran/knapsack/csvio"
	"github.com/katalvlaran/knapsack/internal/config"
)

func generateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := a.seed()
			cat, initial, err := builder.RandomCatalog(a.cfg.Items,
				builder.WithSeed(seed),
				builder.WithCapacityRatio(a.cfg.Ratio),
				builder.WithPrefixIDs("item"),
			)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err = csvio.WriteCatalog(&buf, cat, initial); err != nil {
				return err
			}
			a.log.Info("generated",
				zap.Int("items", cat.Len()),
				zap.Int64("seed", seed),
				zap.Int64("weight", initial.Weight),
				zap.Int64("volume", initial.Volume))

			if a.cfg.Out == "" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}

			return os.WriteFile(a.cfg.Out, buf.Bytes(), 0o644)
		},
	}

	f := cmd.Flags()
	f.Int(config.KeyItems, config.DefaultItems, "number of items")
	f.Float64(config.KeyRatio, config.DefaultRatio, "container capacity as a fraction of total weight and volume")
	f.Int64(config.KeySeed, 0, "random seed (default: clock)")
	f.StringP(config.KeyOut, "o", "", "output file (default stdout)")

	return cmd
}
