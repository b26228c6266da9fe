package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/space-cli/space/internal/commands"
	"github.com/space-cli/space/internal/log"
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <command> [args...]",
		Short: "Run a project custom command",
		Long: `Run a custom command from the project's .space/commands directory.

The command receives the full project context as JSON on standard input and
as SPACE_* environment variables, so scripts can consume whichever is more
convenient. Arguments after the command name are passed through unchanged.

Examples:
  # Run .space/commands/deploy (or deploy.sh, deploy.py, ...)
  space run deploy

  # Arguments are forwarded to the script
  space run deploy --env staging

  # Show available custom commands
  space run list`,
		Args: cobra.MinimumNArgs(1),
		RunE: runRunCmd,
	}
	// Flags after the command name belong to the script, not to space.
	cmd.Flags().SetInterspersed(false)

	cmd.AddCommand(newRunListCmd())

	return cmd
}

// newRunListCmd creates the run list subcommand.
func newRunListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available custom commands",
		RunE: func(cmd *cobra.Command, _ []string) error {
			workDir, err := resolveWorkDir(cmd)
			if err != nil {
				return err
			}

			names := commands.List(workDir)
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No custom commands found.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

// runRunCmd executes the run command.
func runRunCmd(cmd *cobra.Command, args []string) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)

	workDir, err := resolveWorkDir(cmd)
	if err != nil {
		return err
	}

	name := args[0]
	cmdPath, err := commands.Find(workDir, name)
	if err != nil {
		if available := commands.List(workDir); len(available) > 0 {
			return fmt.Errorf("%w: %s (available: %s)", err, name, strings.Join(available, ", "))
		}
		return fmt.Errorf("%w: %s", err, name)
	}

	pctx, err := buildContext(cmd, logger)
	if err != nil {
		return err
	}
	pctx.Command = name
	pctx.Args = args[1:]

	logger.Debug("running custom command",
		"command", name,
		"path", cmdPath,
		"args", args[1:],
	)

	executor := commands.NewExecutor(workDir,
		commands.WithStdout(cmd.OutOrStdout()),
		commands.WithStderr(cmd.ErrOrStderr()),
	)
	return executor.Run(cmd.Context(), pctx, cmdPath, args[1:])
}
