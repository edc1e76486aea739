package chi

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	healthuc "github.com/kailas-cloud/talentmatch/internal/usecase/health"
	intakeuc "github.com/kailas-cloud/talentmatch/internal/usecase/intake"
	matchuc "github.com/kailas-cloud/talentmatch/internal/usecase/match"
)

// fakeStore is an in-memory profile store shared by the intake and match
// services under test. Query answers are scripted, not computed.
type fakeStore struct {
	mu        sync.Mutex
	vecs      map[string]domain.Vector
	metas     map[string]map[string]string
	queryHits []domain.Hit
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		vecs:  make(map[string]domain.Vector),
		metas: make(map[string]map[string]string),
	}
}

func (f *fakeStore) Upsert(_ context.Context, id string, vec domain.Vector, metadata map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.vecs[id] = vec
	f.metas[id] = metadata
	return nil
}

func (f *fakeStore) Fetch(_ context.Context, id string) (domain.Vector, map[string]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	meta, ok := f.metas[id]
	if !ok {
		return nil, nil, fmt.Errorf("profile %s: %w", id, domain.ErrProfileNotFound)
	}
	return f.vecs[id], meta, nil
}

func (f *fakeStore) Query(_ context.Context, _ domain.Vector, _ int, _ string) ([]domain.Hit, error) {
	return f.queryHits, nil
}

func (f *fakeStore) List(_ context.Context, typeFilter string, _, _ int) ([]domain.Hit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var hits []domain.Hit
	for id, meta := range f.metas {
		if meta[domain.FieldType] == typeFilter {
			hits = append(hits, domain.Hit{ID: id, Metadata: meta})
		}
	}
	return hits, nil
}

func (f *fakeStore) Count(_ context.Context, typeFilter string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, meta := range f.metas {
		if meta[domain.FieldType] == typeFilter {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vecs, id)
	delete(f.metas, id)
	return nil
}

func (f *fakeStore) Exists(_ context.Context, id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.metas[id]
	return ok, nil
}

func (f *fakeStore) Ping(_ context.Context) error { return nil }

type fakeVectorizer struct {
	err error
}

func (f *fakeVectorizer) Vectorize(_ context.Context, _ string) (domain.Vector, error) {
	if f.err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrEmbeddingGeneration, f.err)
	}
	return make(domain.Vector, domain.Dimensions), nil
}

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type testEnv struct {
	handler http.Handler
	store   *fakeStore
	vec     *fakeVectorizer
	gen     *fakeGenerator
}

func newTestEnv() *testEnv {
	store := newFakeStore()
	vec := &fakeVectorizer{}
	gen := &fakeGenerator{response: "Generated narrative."}

	intakeSvc := intakeuc.New(store, vec, gen)
	matchSvc := matchuc.New(store, gen)
	healthSvc := healthuc.New(store, nil)
	server := NewServer(intakeSvc, matchSvc, healthSvc, zap.NewNop())

	r := chi.NewRouter()
	server.Routes(r)

	return &testEnv{handler: r, store: store, vec: vec, gen: gen}
}
