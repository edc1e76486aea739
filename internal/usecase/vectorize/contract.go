package vectorize

import "context"

// Generator produces the analysis passage used as the vector's content
// signal. External call, not deterministic.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
