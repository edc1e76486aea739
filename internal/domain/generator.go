package domain

import "context"

// Generator is the shared text generation contract between layers.
// Implementations wrap an external LLM API; output is not deterministic.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorHealthChecker verifies generation provider availability.
type GeneratorHealthChecker interface {
	HealthCheck(ctx context.Context) error
}
