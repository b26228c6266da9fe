package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for space.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Local development environment tool for multi-service projects",
		Long: `space manages the identity of a local multi-service project.

It derives a project context from .space.yaml: a project name, a short
directory hash that keeps checkouts from colliding, and per-service DNS
names and URLs. The context is available as a report (services), as
SPACE_* environment variables and stdin JSON for custom commands (run),
and as input for health probing (health).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("workdir", "w", ".", "Project directory (default: current directory)")

	// Add subcommands
	cmd.AddCommand(NewServicesCmd())
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewHealthCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// resolveWorkDir returns the absolute project directory from the --workdir
// flag, defaulting to the current directory.
func resolveWorkDir(cmd *cobra.Command) (string, error) {
	workDir, err := cmd.Flags().GetString("workdir")
	if err != nil {
		workDir, err = cmd.Root().PersistentFlags().GetString("workdir")
		if err != nil {
			return "", err
		}
	}

	if workDir == "" || workDir == "." {
		workDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve working directory: %w", err)
	}
	return abs, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}
