package health

import (
	"context"
	"time"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers but searches will fail.
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

const defaultCheckTimeout = 3 * time.Second

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	omdb    UpstreamChecker
	timeout time.Duration
}

// New creates a Service. omdb can be nil, in which case the check is skipped.
func New(omdb UpstreamChecker) *Service {
	return &Service{omdb: omdb, timeout: defaultCheckTimeout}
}

// Check runs health checks against all components, each bounded by a timeout.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.omdb != nil {
		checkCtx, cancel := context.WithTimeout(ctx, s.timeout)
		err := s.omdb.HealthCheck(checkCtx)
		cancel()
		if err != nil {
			checks["omdb"] = CheckError
		} else {
			checks["omdb"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
