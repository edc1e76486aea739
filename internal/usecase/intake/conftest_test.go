package intake

import (
	"context"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

type upsertCall struct {
	id       string
	vec      domain.Vector
	metadata map[string]string
}

// mockStore implements the ProfileStore consumer interface for tests.
type mockStore struct {
	upserts   []upsertCall
	upsertErr error

	fetchVec  domain.Vector
	fetchMeta map[string]string
	fetchErr  error

	listHits []domain.Hit
	listErr  error

	counts   map[string]int
	countErr error

	exists    bool
	existsErr error

	deleted   []string
	deleteErr error
}

func (m *mockStore) Upsert(_ context.Context, id string, vec domain.Vector, metadata map[string]string) error {
	if m.upsertErr != nil {
		return m.upsertErr
	}
	m.upserts = append(m.upserts, upsertCall{id: id, vec: vec, metadata: metadata})
	return nil
}

func (m *mockStore) Fetch(_ context.Context, _ string) (domain.Vector, map[string]string, error) {
	if m.fetchErr != nil {
		return nil, nil, m.fetchErr
	}
	return m.fetchVec, m.fetchMeta, nil
}

func (m *mockStore) List(_ context.Context, _ string, _, _ int) ([]domain.Hit, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.listHits, nil
}

func (m *mockStore) Count(_ context.Context, typeFilter string) (int, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.counts[typeFilter], nil
}

func (m *mockStore) Delete(_ context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockStore) Exists(_ context.Context, _ string) (bool, error) {
	return m.exists, m.existsErr
}

// mockVectorizer records inputs and returns a fixed vector.
type mockVectorizer struct {
	vec   domain.Vector
	err   error
	texts []string
}

func (m *mockVectorizer) Vectorize(_ context.Context, text string) (domain.Vector, error) {
	m.texts = append(m.texts, text)
	if m.err != nil {
		return nil, m.err
	}
	return m.vec, nil
}

// mockGenerator answers the intake analysis prompt.
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

func newTestService() (*Service, *mockStore, *mockVectorizer, *mockGenerator) {
	store := &mockStore{}
	vec := &mockVectorizer{vec: make(domain.Vector, domain.Dimensions)}
	gen := &mockGenerator{response: "A solid candidate."}
	return New(store, vec, gen), store, vec, gen
}
