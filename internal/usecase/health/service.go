// Package health aggregates component liveness for the readiness endpoint.
package health

import "context"

// Status is the aggregated service health.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the store is up but generation is failing; intake
	// and narratives will fail while retrieval still works.
	Degraded Status = "degraded"
	// Unhealthy indicates the vector store is unreachable.
	Unhealthy Status = "error"
)

// CheckResult is an individual component outcome.
type CheckResult string

const (
	// CheckOK indicates a passing check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing check.
	CheckError CheckResult = "error"
)

// Report aggregates component check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	store StorePinger
	gen   GeneratorChecker
}

// New creates a Service. gen can be nil when the provider exposes no
// reachability probe.
func New(store StorePinger, gen GeneratorChecker) *Service {
	return &Service{store: store, gen: gen}
}

// Check probes all components. A store failure dominates: without it no
// operation works, so the report is Unhealthy regardless of the generator.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	storeOK := s.store.Ping(ctx) == nil
	if storeOK {
		checks["store"] = CheckOK
	} else {
		checks["store"] = CheckError
	}

	genOK := true
	if s.gen != nil {
		genOK = s.gen.HealthCheck(ctx) == nil
		if genOK {
			checks["generator"] = CheckOK
		} else {
			checks["generator"] = CheckError
		}
	}

	switch {
	case !storeOK:
		return Report{Status: Unhealthy, Checks: checks}
	case !genOK:
		return Report{Status: Degraded, Checks: checks}
	default:
		return Report{Status: Healthy, Checks: checks}
	}
}
