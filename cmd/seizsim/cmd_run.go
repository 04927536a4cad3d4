package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osnlab/seizsim/internal/config"
	"github.com/osnlab/seizsim/internal/export"
	"github.com/osnlab/seizsim/internal/logging"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a single simulation from a config file",
		Long: `Build the configured network, run the configured model variant for the
configured number of steps, and write the run output as JSON (stdout by
default).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			outputPath, _ := cmd.Flags().GetString("output")
			level, _ := cmd.Flags().GetString("log-level")
			logger := logging.NewLogger(level, cmd.ErrOrStderr())

			exp, err := config.Load(configPath)
			if err != nil {
				return err
			}

			g, err := exp.Network.Build()
			if err != nil {
				return fmt.Errorf("build network: %w", err)
			}
			logger.Debug("network built",
				"type", exp.Network.Type,
				"nodes", g.NumNodes(),
				"edges", g.NumEdges())

			m, err := exp.BuildModel(g)
			if err != nil {
				return fmt.Errorf("build model: %w", err)
			}
			if err := m.InitializeStates(exp.Run.InfectedFrac, exp.Run.SkepticFrac, exp.Run.Seed); err != nil {
				return err
			}
			if _, err := m.Run(exp.Run.Steps); err != nil {
				return fmt.Errorf("run simulation: %w", err)
			}

			final := m.Counts()
			logger.Info("run complete",
				"model", m.Type(),
				"steps", exp.Run.Steps,
				"seed", exp.Run.Seed,
				"S", final.S, "E", final.E, "I", final.I, "Z", final.Z)

			out := export.NewRunOutput(m)
			if outputPath != "" {
				if err := out.SaveJSON(outputPath); err != nil {
					return err
				}
				logger.Info("output written", "path", outputPath)
				return nil
			}
			return out.WriteJSON(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringP("config", "c", "", "Experiment config file (YAML)")
	cmd.Flags().StringP("output", "o", "", "Output JSON file (default stdout)")
	cmd.MarkFlagRequired("config")
	return cmd
}
