package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/space-cli/space/internal/config"
	"github.com/space-cli/space/internal/history"
	"github.com/space-cli/space/internal/log"
	"github.com/space-cli/space/internal/model"
	"github.com/space-cli/space/internal/project"
	"github.com/space-cli/space/internal/report"
	"github.com/spf13/cobra"
)

// errConflictingFormats is returned when both --json and --markdown are
// specified. Only one output format can be used at a time.
var errConflictingFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

// NewServicesCmd creates the services command.
func NewServicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "services",
		Short: "Report the project's configured services",
		Long: `Report the project identity and every configured service with its DNS
name, internal port, and URL.

By default the context is built from the project configuration in the work
directory. With --stdin, the context is read as JSON from standard input
instead; this is the same document custom commands receive, so the two
compose:

  space services --json | some-tool
  some-tool | space services --stdin

Examples:
  # Report services from .space.yaml
  space services

  # Machine-readable output
  space services --json

  # Markdown table for documentation
  space services --markdown -o docs/services.md

  # Format a context produced elsewhere
  space services --stdin < context.json`,
		RunE: runServicesCmd,
	}

	cmd.Flags().BoolP("stdin", "s", false,
		"Read the context as JSON from standard input instead of configuration")
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runServicesCmd executes the services command.
func runServicesCmd(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)

	fromStdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return err
	}

	format, err := reportFormat(cmd)
	if err != nil {
		return err
	}

	var pctx *model.ProjectContext
	if fromStdin {
		pctx, err = model.DecodeContext(cmd.InOrStdin())
		if err != nil {
			return err
		}
	} else {
		pctx, err = buildContext(cmd, logger)
		if err != nil {
			return err
		}
	}

	out, closeOut, err := reportOutput(cmd)
	if err != nil {
		return err
	}
	defer closeOut()

	if _, err := newWriter(format, out).Write(pctx); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	// History only tracks contexts built from this machine's configuration.
	if !fromStdin {
		recordRun(cmd.Context(), pctx, format, logger)
	}

	return nil
}

// buildContext loads the configuration and assembles the project context.
func buildContext(cmd *cobra.Command, logger *slog.Logger) (*model.ProjectContext, error) {
	workDir, err := resolveWorkDir(cmd)
	if err != nil {
		return nil, err
	}

	loader, err := config.NewLoader(workDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	logger.Debug("configuration loaded",
		"workDir", workDir,
		"services", len(cfg.Services),
		"baseDomain", cfg.Network.BaseDomain,
	)

	return project.NewBuilder(cfg, workDir).Build(), nil
}

// reportFormat resolves the output format from flags.
func reportFormat(cmd *cobra.Command) (string, error) {
	jsonOut, err := cmd.Flags().GetBool("json")
	if err != nil {
		return "", err
	}
	markdownOut, err := cmd.Flags().GetBool("markdown")
	if err != nil {
		return "", err
	}

	switch {
	case jsonOut && markdownOut:
		return "", errConflictingFormats
	case jsonOut:
		return "json", nil
	case markdownOut:
		return "markdown", nil
	default:
		return "text", nil
	}
}

// newWriter creates the report writer for the resolved format.
func newWriter(format string, out io.Writer) report.Writer {
	switch format {
	case "json":
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case "markdown":
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out)
	}
}

// reportOutput resolves the output destination from the --output flag.
// The returned close function is a no-op when writing to stdout.
func reportOutput(cmd *cobra.Command) (io.Writer, func(), error) {
	path, err := cmd.Flags().GetString("output")
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// recordRun stores the report run in the history database.
// History is best-effort: a failure is logged and never fails the report.
func recordRun(ctx context.Context, pctx *model.ProjectContext, format string, logger *slog.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.Open(config.XDGDataDir(), history.DefaultOptions())
	if err != nil {
		logger.Warn("failed to open history database", "error", err)
		return
	}
	defer func() { _ = store.Close() }()

	run := &history.Run{
		Project:      pctx.ProjectName,
		Hash:         pctx.Hash,
		BaseDomain:   pctx.BaseDomain,
		ServiceCount: len(pctx.Services),
		Format:       format,
	}
	if _, err := store.Record(ctx, run); err != nil {
		logger.Warn("failed to record report run", "error", err)
	}
}
