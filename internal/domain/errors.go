package domain

import "errors"

var (
	// ErrProfileNotFound signals a missing job or candidate record.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrInvalidVector signals a malformed embedding vector.
	ErrInvalidVector = errors.New("invalid embedding vector")
	// ErrVectorDimMismatch signals a vector dimension mismatch against the index.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrEmbeddingGeneration signals that deriving an embedding failed.
	ErrEmbeddingGeneration = errors.New("embedding generation failed")
	// ErrNarrativeGeneration signals that a fit-narrative call failed.
	ErrNarrativeGeneration = errors.New("narrative generation failed")
	// ErrGenerationProvider signals a text generation provider failure.
	ErrGenerationProvider = errors.New("generation provider error")
)
