package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seizsim",
		Short: "SEIZ misinformation-spread simulator",
		Long: `seizsim runs agent-based SEIZ (Susceptible-Exposed-Infected-Skeptic)
simulations of information spread over social networks, with optional
content-moderation overlays, and exports reproducible run histories.`,
	}

	rootCmd.PersistentFlags().String("log-level", "info", "Log verbosity: info, debug, or trace")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newGraphCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seizsim version %s\n", version)
		},
	}
}
