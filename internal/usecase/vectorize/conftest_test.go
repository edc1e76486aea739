package vectorize

import "context"

// mockGenerator implements the consumer interface for tests.
type mockGenerator struct {
	response string
	err      error
	prompts  []string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}
