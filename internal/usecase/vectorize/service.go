// Package vectorize turns free text into fixed-dimension embedding vectors.
//
// The vector combines two signals: a content-derived prefix (the UTF-8 bytes
// of a generated analysis of the text, normalized to [0,1]) and a
// deterministic hash-based tail seeded by the original input. Because the
// prefix depends on a live generation call, two vectorizations of identical
// text are NOT guaranteed to be equal; only the tail is reproducible.
// Callers must not assume idempotence.
package vectorize

import (
	"context"
	"fmt"
	"math"
	"unicode/utf16"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	"github.com/kailas-cloud/talentmatch/internal/logger"

	"go.uber.org/zap"
)

// Service implements the vectorizer.
type Service struct {
	gen Generator
}

// New creates a vectorize service.
func New(gen Generator) *Service {
	return &Service{gen: gen}
}

// Vectorize converts text into a domain.Vector of exactly domain.Dimensions
// values in [0, 1]. A generation failure surfaces as
// domain.ErrEmbeddingGeneration with the cause attached; no partial vector
// is ever returned.
func (s *Service) Vectorize(ctx context.Context, text string) (domain.Vector, error) {
	analysis, err := s.gen.Generate(ctx, fmt.Sprintf(analysisPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingGeneration, err)
	}

	logger.FromContext(ctx).Debug("analysis generated for embedding",
		zap.Int("input_len", len(text)),
		zap.Int("analysis_len", len(analysis)),
	)

	return BuildVector(text, analysis), nil
}

// BuildVector assembles the vector from the original text and its analysis.
// Exposed separately so the deterministic part is testable without a
// generator.
func BuildVector(text, analysis string) domain.Vector {
	vec := make(domain.Vector, domain.Dimensions)

	encoded := []byte(analysis)
	n := min(len(encoded), domain.Dimensions)
	for i := 0; i < n; i++ {
		vec[i] = float32(encoded[i]) / 255
	}

	seed := rollingHash(text)
	for i := n; i < domain.Dimensions; i++ {
		vec[i] = float32((math.Sin(float64(seed)+float64(i)) + 1) / 2)
	}

	return vec
}

// rollingHash computes the 32-bit rolling hash h = h*31 + c over the UTF-16
// code units of text, wrapping like a 32-bit signed integer.
func rollingHash(text string) int32 {
	var h int32
	for _, u := range utf16.Encode([]rune(text)) {
		h = h<<5 - h + int32(u)
	}
	return h
}
