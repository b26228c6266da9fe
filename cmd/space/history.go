package main

import (
	"fmt"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/space-cli/space/internal/config"
	"github.com/space-cli/space/internal/history"
	"github.com/space-cli/space/internal/log"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent report runs",
		Long: `Show recent report runs recorded in the local history database.

Every report generated from configuration is recorded with its project
name, hash, base domain, service count, and output format. History lives
under the XDG data directory and never leaves the machine.

Examples:
  # Show the 20 most recent runs
  space history

  # Show the 5 most recent runs
  space history -n 5`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", 20, "Maximum number of runs to show")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}

	opts := history.DefaultOptions()
	opts.CreateIfNotExists = false
	store, err := history.Open(config.XDGDataDir(), opts)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "No report history found.")
		return nil
	}
	defer func() { _ = store.Close() }()

	runs, err := store.List(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to list report runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No report history found.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tPROJECT\tHASH\tDOMAIN\tSERVICES\tFORMAT")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%s\n",
			run.CreatedAt.Local().Format(time.DateTime),
			run.Project,
			run.Hash,
			run.BaseDomain,
			run.ServiceCount,
			run.Format,
		)
	}
	return w.Flush()
}
