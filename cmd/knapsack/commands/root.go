package commands

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/knapsack/core"
	"github.com/katalvlaran/knapsack/internal/config"
	"github.com/katalvlaran/knapsack/internal/logging"
	"github.com/katalvlaran/knapsack/metrics"
	"github.com/katalvlaran/knapsack/solver"
)

// app is the dependency set shared by subcommands for one invocation.
type app struct {
	cfg      config.Config
	log      *zap.Logger
	registry *prometheus.Registry
	recorder metrics.Recorder
}

// seed returns the configured seed, or a clock-derived one when none was given.
func (a *app) seed() int64 {
	if a.cfg.SeedSet {
		return a.cfg.Seed
	}
	s := time.Now().UnixNano()
	a.log.Debug("no seed configured, using clock", zap.Int64("seed", s))

	return s
}

// wrap instruments every solver built by the solver package.
func (a *app) wrap(algo solver.Algorithm, s core.Solver) core.Solver {
	return metrics.Instrument(s, algo.String(), a.recorder)
}

// Execute builds the command tree and runs it.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		state      = &app{log: logging.NewTestLogger(), recorder: metrics.Noop{}}
	)

	root := &cobra.Command{
		Use:           "knapsack",
		Short:         "Solve two-constraint (weight and volume) 0/1 knapsack instances",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(configFile)
			if err != nil {
				return err
			}
			if err = v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if state.cfg, err = config.Load(v); err != nil {
				return err
			}
			if state.log, err = logging.New(state.cfg.LogLevel, state.cfg.LogFormat); err != nil {
				return err
			}

			state.registry = prometheus.NewRegistry()
			rec, err := metrics.NewPrometheus(state.registry)
			if err != nil {
				return fmt.Errorf("metrics: %w", err)
			}
			state.recorder = rec

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = state.log.Sync() }()
			if state.cfg.MetricsFile == "" {
				return nil
			}
			if err := metrics.WriteTextfile(state.cfg.MetricsFile, state.registry); err != nil {
				return fmt.Errorf("metrics: %w", err)
			}
			state.log.Debug("metrics written", zap.String("path", state.cfg.MetricsFile))

			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.String(config.KeyLogLevel, config.DefaultLogLevel, "log level (debug, info, warn, error)")
	pf.String(config.KeyLogFormat, logging.FormatConsole, "log format (console, json)")
	pf.String(config.KeyMetricsFile, "", "write Prometheus metrics to this textfile on exit")

	root.AddCommand(
		solveCmd(state),
		runCmd(state),
		generateCmd(state),
		configCmd(state),
	)

	return root
}
