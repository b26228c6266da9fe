package main

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/space-cli/space/internal/config"
	"github.com/space-cli/space/internal/health"
	"github.com/space-cli/space/internal/log"
	"github.com/space-cli/space/internal/project"
	"github.com/spf13/cobra"
)

// errUnhealthyServices signals at least one service failed its probe.
var errUnhealthyServices = errors.New("one or more services are unhealthy")

// NewHealthCmd creates the health command.
func NewHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Probe the health of configured services",
		Long: `Probe every configured service over HTTP and report its health.

Each service is probed at its configured health check endpoint, or at a
list of common endpoints (/health, /healthz, /api/health, /) when none is
configured. Probes run concurrently. The command exits non-zero when any
service is unhealthy, so it can gate scripts and CI steps.

Examples:
  # Probe all services
  space health

  # Bound each probe to 2 seconds
  space health --timeout 2s`,
		RunE: runHealthCmd,
	}

	cmd.Flags().DurationP("timeout", "t", config.DefaultHealthTimeout,
		"Timeout for each health probe request")
	cmd.Flags().IntP("concurrency", "c", 4,
		"Maximum number of concurrent probes")

	return cmd
}

// runHealthCmd executes the health command.
func runHealthCmd(cmd *cobra.Command, _ []string) error {
	logger := log.NewLogger(cmd.ErrOrStderr(), getVerboseFlag(cmd))
	slog.SetDefault(logger)

	timeout, err := cmd.Flags().GetDuration("timeout")
	if err != nil {
		return err
	}
	concurrency, err := cmd.Flags().GetInt("concurrency")
	if err != nil {
		return err
	}

	workDir, err := resolveWorkDir(cmd)
	if err != nil {
		return err
	}

	loader, err := config.NewLoader(workDir)
	if err != nil {
		return fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return err
	}
	pctx := project.NewBuilder(cfg, workDir).Build()

	checker := health.NewChecker(healthCheckerOptions(cfg, timeout, concurrency, logger)...)
	results, err := checker.Check(cmd.Context(), pctx)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	unhealthy := 0
	for _, r := range results {
		fmt.Fprintln(cmd.OutOrStdout(), r.Summary())
		if !r.Healthy {
			unhealthy++
		}
	}
	if unhealthy > 0 {
		return fmt.Errorf("%w: %d of %d", errUnhealthyServices, unhealthy, len(results))
	}
	return nil
}

// healthCheckerOptions derives checker options from the configuration
// and command flags. Per-service endpoints come from the configuration;
// the flag timeout applies when no service overrides it.
func healthCheckerOptions(cfg *config.Config, timeout time.Duration, concurrency int, logger *slog.Logger) []health.CheckerOption {
	opts := []health.CheckerOption{
		health.WithTimeout(timeout),
		health.WithConcurrency(concurrency),
	}
	if logger != nil {
		opts = append(opts, health.WithLogger(logger))
	}
	for name, svc := range cfg.Services {
		if svc.HealthCheck != nil && svc.HealthCheck.Endpoint != "" {
			opts = append(opts, health.WithEndpoint(name, svc.HealthCheck.Endpoint))
		}
	}
	return opts
}
