package health

import "context"

// StorePinger checks vector store availability.
type StorePinger interface {
	Ping(ctx context.Context) error
}

// GeneratorChecker checks generation provider availability.
type GeneratorChecker interface {
	HealthCheck(ctx context.Context) error
}
