// Package health aggregates component health checks into a single report.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service answers queries but a dependency is failing.
	Degraded Status = "degraded"
	// Unhealthy indicates the service cannot answer queries.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	corpus CorpusPinger
	index  IndexReader
}

// New creates a Service. corpus can be nil.
func New(corpus CorpusPinger, index IndexReader) *Service {
	return &Service{corpus: corpus, index: index}
}

// Check runs health checks. A missing index makes the service Unhealthy
// since queries cannot succeed. A failing corpus store with a serving
// index only degrades: queries still work, rebuilds will not.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	indexed := s.index.Ready()
	if indexed {
		checks["index"] = CheckOK
	} else {
		checks["index"] = CheckError
	}

	if s.corpus != nil {
		if err := s.corpus.Ping(ctx); err != nil {
			checks["corpus"] = CheckError
		} else {
			checks["corpus"] = CheckOK
		}
	}

	status := Healthy
	if checks["corpus"] == CheckError {
		status = Degraded
	}
	if !indexed {
		status = Unhealthy
	}

	return Report{Status: status, Checks: checks}
}
