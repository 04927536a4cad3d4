package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/osnlab/seizsim/internal/config"
	"github.com/osnlab/seizsim/internal/export"
	"github.com/osnlab/seizsim/internal/logging"
	"github.com/osnlab/seizsim/internal/results"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run one experiment across many seeds",
		Long: `Run the configured experiment once per seed and persist every run to a
SQLite results database. Runs execute concurrently; each individual
simulation stays single-threaded, so results are identical to running the
seeds one at a time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			level, _ := cmd.Flags().GetString("log-level")
			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			sw, err := config.LoadSweep(configPath)
			if err != nil {
				return err
			}

			store, err := results.Open(sw.Database)
			if err != nil {
				return err
			}
			defer store.Close()

			workers := sw.Workers
			if workers <= 0 {
				workers = runtime.NumCPU()
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(workers)
			for _, seed := range sw.Seeds {
				g.Go(func() error {
					out, err := runSeed(&sw.Experiment, seed)
					if err != nil {
						return fmt.Errorf("seed %d: %w", seed, err)
					}
					id, err := store.SaveRun(ctx, out, seed)
					if err != nil {
						return fmt.Errorf("seed %d: save: %w", seed, err)
					}
					logger.Info("run saved", "seed", seed, "id", id)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			logger.Info("sweep complete", "runs", len(sw.Seeds), "database", sw.Database)
			return nil
		},
	}

	cmd.Flags().StringP("config", "c", "", "Sweep config file (YAML)")
	cmd.MarkFlagRequired("config")
	return cmd
}

// runSeed executes one full simulation for a single seed. Each call builds
// its own network and model, so concurrent calls share nothing.
func runSeed(exp *config.Experiment, seed int64) (export.RunOutput, error) {
	g, err := exp.Network.Build()
	if err != nil {
		return export.RunOutput{}, fmt.Errorf("build network: %w", err)
	}
	m, err := exp.BuildModel(g)
	if err != nil {
		return export.RunOutput{}, fmt.Errorf("build model: %w", err)
	}
	if err := m.InitializeStates(exp.Run.InfectedFrac, exp.Run.SkepticFrac, seed); err != nil {
		return export.RunOutput{}, err
	}
	if _, err := m.Run(exp.Run.Steps); err != nil {
		return export.RunOutput{}, fmt.Errorf("run simulation: %w", err)
	}
	return export.NewRunOutput(m), nil
}
