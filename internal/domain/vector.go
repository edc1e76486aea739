package domain

import (
	"fmt"
	"math"
)

// Dimensions is the fixed embedding vector length. The vector store index is
// created with this dimension; every stored vector must match it exactly.
const Dimensions = 1536

// Vector is a fixed-length embedding with every component in [0, 1].
type Vector []float32

// Validate checks length and rejects NaN components. Called before any
// store write so a malformed vector never reaches the index.
func (v Vector) Validate() error {
	if len(v) != Dimensions {
		return fmt.Errorf("%w: got %d values, want %d", ErrInvalidVector, len(v), Dimensions)
	}
	for i, f := range v {
		if math.IsNaN(float64(f)) {
			return fmt.Errorf("%w: NaN at position %d", ErrInvalidVector, i)
		}
	}
	return nil
}
