package health

import (
	"context"
	"time"

	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/assessrec/internal/logger"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "healthy"
	// Degraded indicates a failing dependency.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

const defaultCheckTimeout = 2 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	checks  map[string]CatalogPinger
	timeout time.Duration
}

// New creates a Service checking the catalog store. catalog can be nil
// when the catalog is served from memory.
func New(catalog CatalogPinger) *Service {
	checks := make(map[string]CatalogPinger, 1)
	if catalog != nil {
		checks["catalog"] = catalog
	}
	return &Service{checks: checks, timeout: defaultCheckTimeout}
}

// Check pings every dependency with a bounded timeout.
func (s *Service) Check(ctx context.Context) Report {
	results := make(map[string]CheckResult, len(s.checks))
	status := Healthy

	for name, p := range s.checks {
		pingCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := p.Ping(pingCtx)
		cancel()

		if err != nil {
			logpkg.FromContext(ctx).Warn("health check failed", zap.String("check", name), zap.Error(err))
			results[name] = CheckError
			status = Degraded
			continue
		}
		results[name] = CheckOK
	}

	return Report{Status: status, Checks: results}
}
