package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/deppfellow/go-hanoi/internal/config"
	"github.com/deppfellow/go-hanoi/internal/errs"
	"github.com/deppfellow/go-hanoi/internal/hanoi"
	"github.com/deppfellow/go-hanoi/internal/lib/utils"
	"github.com/deppfellow/go-hanoi/internal/server"
	"github.com/deppfellow/go-hanoi/internal/service"
	"github.com/spf13/cobra"
)

func newSolveCmd() *cobra.Command {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a puzzle and print the JSON answer",
		Long: `Solves a Tower of Hanoi puzzle with the same rules as POST /solve and prints
the response body to stdout.

With --verify every move is replayed against the three pegs and the result is
reported on stderr.`,
		Example: `  hanoi solve --disks 3 --pretty
  hanoi solve --disks 64`,
		RunE: runSolve,
	}

	solveCmd.Flags().IntP("disks", "n", 0, "Number of disks (required)")
	solveCmd.Flags().Bool("verify", false, "Replay the moves and check every rule")
	solveCmd.Flags().Bool("pretty", false, "Indent the JSON output")
	_ = solveCmd.MarkFlagRequired("disks")

	return solveCmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	disks, _ := cmd.Flags().GetInt("disks")
	verify, _ := cmd.Flags().GetBool("verify")
	pretty, _ := cmd.Flags().GetBool("pretty")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The CLI logs nothing; nil gets a Nop logger.
	srv, err := server.New(cfg, nil, nil)
	if err != nil {
		return err
	}
	services, err := service.NewService(srv)
	if err != nil {
		return err
	}

	resp, err := services.Solver.Solve(context.Background(), disks)
	if err != nil {
		var httpErr *errs.HTTPError
		if errors.As(err, &httpErr) {
			return errors.New(httpErr.Message)
		}
		return err
	}

	if err := utils.WriteJSON(cmd.OutOrStdout(), resp, pretty); err != nil {
		return err
	}

	if verify {
		return verifySolution(cmd.ErrOrStderr(), disks, resp.Steps)
	}
	return nil
}

// verifySolution replays moves, enumerating them first for count-only answers.
func verifySolution(w io.Writer, disks int, moves []hanoi.Move) error {
	if moves == nil {
		var err error
		moves, err = hanoi.Enumerate(disks, hanoi.Canonical)
		if err != nil {
			return fmt.Errorf("cannot verify %d disks: %w", disks, err)
		}
	}

	if err := hanoi.Replay(disks, hanoi.Canonical, moves); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	fmt.Fprintf(w, "verified: %d moves, all legal, tower complete on %s\n", len(moves), hanoi.Canonical.To)
	return nil
}
