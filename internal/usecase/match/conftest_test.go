package match

import (
	"context"
	"sync"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

// mockStore implements the ProfileStore consumer interface for tests.
type mockStore struct {
	fetchVec  domain.Vector
	fetchMeta map[string]string
	fetchErr  error

	queryHits []domain.Hit
	queryErr  error
	queriedK  int
}

func (m *mockStore) Fetch(_ context.Context, _ string) (domain.Vector, map[string]string, error) {
	if m.fetchErr != nil {
		return nil, nil, m.fetchErr
	}
	return m.fetchVec, m.fetchMeta, nil
}

func (m *mockStore) Query(_ context.Context, _ domain.Vector, topK int, _ string) ([]domain.Hit, error) {
	m.queriedK = topK
	if m.queryErr != nil {
		return nil, m.queryErr
	}
	return m.queryHits, nil
}

// mockGenerator answers prompts, optionally per-call via fn.
type mockGenerator struct {
	mu       sync.Mutex
	response string
	err      error
	fn       func(prompt string) (string, error)
	calls    int
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.fn != nil {
		return m.fn(prompt)
	}
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func jobMeta(skills, experience string) map[string]string {
	return map[string]string{
		domain.FieldType:       domain.TypeJob,
		domain.FieldTitle:      "Backend Engineer",
		domain.FieldSkills:     skills,
		domain.FieldExperience: experience,
	}
}

func candMeta(skills, experience string) map[string]string {
	return map[string]string{
		domain.FieldType:       domain.TypeCandidate,
		domain.FieldName:       "Test Candidate",
		domain.FieldSkills:     skills,
		domain.FieldExperience: experience,
		domain.FieldEducation:  "BSc Computer Science",
	}
}
