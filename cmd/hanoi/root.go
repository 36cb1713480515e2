package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hanoi",
		Short: "hanoi solves the Tower of Hanoi puzzle",
		Long: `hanoi computes optimal Tower of Hanoi solutions, either over HTTP
(hanoi serve) or directly from the command line (hanoi solve).

Configuration is read from HANOI_* environment variables and an optional .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newServeCmd(), newSolveCmd(), newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
