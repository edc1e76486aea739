package intake

import (
	"context"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

// Vectorizer turns profile text into an embedding vector.
type Vectorizer interface {
	Vectorize(ctx context.Context, text string) (domain.Vector, error)
}

// Generator produces the intake-time candidate analysis.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ProfileStore is the vector store contract for intake operations.
type ProfileStore interface {
	Upsert(ctx context.Context, id string, vec domain.Vector, metadata map[string]string) error
	Fetch(ctx context.Context, id string) (domain.Vector, map[string]string, error)
	List(ctx context.Context, typeFilter string, offset, limit int) ([]domain.Hit, error)
	Count(ctx context.Context, typeFilter string) (int, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
}
