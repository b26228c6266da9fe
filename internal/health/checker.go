package health

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/space-cli/space/internal/model"
	"golang.org/x/sync/errgroup"
)

// fallbackEndpoints are tried in order when a service has no configured
// health endpoint.
var fallbackEndpoints = []string{"/health", "/healthz", "/api/health", "/"}

// Result is the outcome of probing a single service.
type Result struct {
	// Service is the service name.
	Service string

	// Healthy reports whether any probed endpoint answered with a status
	// code below 400.
	Healthy bool

	// Endpoint is the endpoint that answered, when Healthy.
	Endpoint string

	// StatusCode is the status of the successful response, when Healthy.
	StatusCode int
}

// Checker probes services concurrently.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
// Each service gets its own goroutine, but only 'concurrency' goroutines
// run simultaneously.
type Checker struct {
	// client issues the probe requests.
	client *http.Client

	// endpoints maps service name to its configured endpoint. Services
	// without an entry use the fallback list.
	endpoints map[string]string

	// concurrency is the maximum number of concurrent probes.
	concurrency int

	// logger is used for per-probe debug logging.
	logger *slog.Logger
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithTimeout bounds each probe request. Default is 5 seconds.
func WithTimeout(d time.Duration) CheckerOption {
	return func(c *Checker) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithEndpoint sets the configured health endpoint for a service.
func WithEndpoint(service, endpoint string) CheckerOption {
	return func(c *Checker) {
		c.endpoints[service] = endpoint
	}
}

// WithConcurrency sets the maximum number of concurrent probes.
// Default is 4.
func WithConcurrency(n int) CheckerOption {
	return func(c *Checker) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(c *Checker) {
		c.logger = logger
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		client:      &http.Client{Timeout: 5 * time.Second},
		endpoints:   make(map[string]string),
		concurrency: 4,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check probes every service in the context and returns one Result per
// service, sorted by service name. The error return reports only context
// cancellation; an unhealthy service is a Result, not an error.
func (c *Checker) Check(ctx context.Context, pctx *model.ProjectContext) ([]Result, error) {
	results := make([]Result, 0, len(pctx.Services))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for _, name := range pctx.SortedServiceNames() {
		svc := pctx.Services[name]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result := c.probe(ctx, svc)
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Service < results[j].Service
	})
	return results, nil
}

// probe tries the service's endpoints until one answers healthily.
func (c *Checker) probe(ctx context.Context, svc model.ServiceInfo) Result {
	endpoints := fallbackEndpoints
	if ep, ok := c.endpoints[svc.Name]; ok && ep != "" {
		endpoints = []string{ep}
	}

	for _, endpoint := range endpoints {
		url := svc.URL + endpoint

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			c.logger.Debug("failed to build probe request", "service", svc.Name, "url", url, "error", err)
			continue
		}

		resp, err := c.client.Do(req)
		if err != nil {
			c.logger.Debug("probe failed", "service", svc.Name, "url", url, "error", err)
			continue
		}
		_ = resp.Body.Close()

		if resp.StatusCode < 400 {
			return Result{
				Service:    svc.Name,
				Healthy:    true,
				Endpoint:   endpoint,
				StatusCode: resp.StatusCode,
			}
		}
		c.logger.Debug("probe answered unhealthy", "service", svc.Name, "url", url, "status", resp.StatusCode)
	}

	return Result{Service: svc.Name}
}

// Summary returns a one-line human summary for a result.
func (r Result) Summary() string {
	if r.Healthy {
		return fmt.Sprintf("%s: healthy (%s -> %d)", r.Service, r.Endpoint, r.StatusCode)
	}
	return fmt.Sprintf("%s: unhealthy or unreachable", r.Service)
}
