package match

import (
	"context"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

// ProfileStore is the vector store contract for retrieval.
type ProfileStore interface {
	Fetch(ctx context.Context, id string) (domain.Vector, map[string]string, error)
	Query(ctx context.Context, vec domain.Vector, topK int, typeFilter string) ([]domain.Hit, error)
}

// Generator produces the fit narrative for a (job, candidate) pair.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
