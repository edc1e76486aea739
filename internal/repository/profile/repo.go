// Package profile implements the vector store boundary: upsert, fetch,
// top-K query, and delete of (id, vector, metadata) profile records.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kailas-cloud/talentmatch/internal/db"
	"github.com/kailas-cloud/talentmatch/internal/domain"
)

// store is the consumer interface for profile records (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	CreateIndex(ctx context.Context, def *db.IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
	SearchKNN(ctx context.Context, q *db.KNNQuery) (*db.SearchResult, error)
	SearchList(ctx context.Context, q *db.ListQuery) (*db.SearchResult, error)
	SearchCount(ctx context.Context, index, query string) (int, error)
}

// metadataFields are the record fields requested back from FT.SEARCH.
// The vector blob is deliberately not returned on queries.
var metadataFields = []string{
	domain.FieldType,
	domain.FieldTitle,
	domain.FieldCompany,
	domain.FieldDescription,
	domain.FieldRequirements,
	domain.FieldSkills,
	domain.FieldExperience,
	domain.FieldCreatedAt,
	domain.FieldName,
	domain.FieldEmail,
	domain.FieldLinkedinURL,
	domain.FieldEducation,
	domain.FieldResumeText,
	domain.FieldAnalysis,
}

// HNSWConfig holds index build parameters.
type HNSWConfig struct {
	M           int
	EFConstruct int
}

// Repo stores job and candidate profiles in a single FT index.
type Repo struct {
	store     store
	keyPrefix string
	dim       int
	hnsw      HNSWConfig
}

// New creates a profile repository. dim is the configured index dimension;
// EnsureIndex rejects any value other than domain.Dimensions.
func New(s store, keyPrefix string, dim int) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, dim: dim}
}

// WithHNSW configures HNSW build parameters for index creation.
func (r *Repo) WithHNSW(cfg HNSWConfig) *Repo {
	r.hnsw = cfg
	return r
}

// EnsureIndex creates the profile index if it does not exist yet.
// A configured dimension other than the engine's fixed one fails here,
// before any record can be written.
func (r *Repo) EnsureIndex(ctx context.Context) error {
	if r.dim != domain.Dimensions {
		return fmt.Errorf("%w: index configured for %d, engine produces %d",
			domain.ErrVectorDimMismatch, r.dim, domain.Dimensions)
	}

	exists, err := r.store.IndexExists(ctx, r.indexName())
	if err != nil {
		return fmt.Errorf("check index: %w", err)
	}
	if exists {
		return nil
	}

	def := &db.IndexDefinition{
		Name:     r.indexName(),
		Prefixes: []string{r.keyPrefix + "profile:"},
		Fields: []db.IndexField{
			{Name: domain.FieldType, Type: db.IndexFieldTag},
			{
				Name:              domain.FieldVector,
				Type:              db.IndexFieldVector,
				VectorAlgo:        db.VectorHNSW,
				VectorDim:         r.dim,
				VectorDistance:    db.DistanceCosine,
				VectorM:           r.hnsw.M,
				VectorEFConstruct: r.hnsw.EFConstruct,
			},
		},
	}

	if err := r.store.CreateIndex(ctx, def); err != nil && !errors.Is(err, db.ErrIndexExists) {
		return fmt.Errorf("create index: %w", err)
	}
	return nil
}

// Upsert writes a profile record. The vector is validated before the write:
// a partial or malformed record never reaches the store.
func (r *Repo) Upsert(ctx context.Context, id string, vec domain.Vector, metadata map[string]string) error {
	if err := vec.Validate(); err != nil {
		return err
	}

	fields := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		fields[k] = v
	}
	fields[domain.FieldVector] = vectorToBytes(vec)

	if err := r.store.HSet(ctx, r.key(id), fields); err != nil {
		return fmt.Errorf("upsert profile %s: %w", id, err)
	}
	return nil
}

// Fetch returns a profile's vector and metadata by id.
// Returns domain.ErrProfileNotFound for unknown ids and for records with a
// missing or truncated vector.
func (r *Repo) Fetch(ctx context.Context, id string) (domain.Vector, map[string]string, error) {
	rec, err := r.store.HGetAll(ctx, r.key(id))
	if err != nil {
		return nil, nil, fmt.Errorf("fetch profile %s: %w", id, err)
	}
	if len(rec) == 0 {
		return nil, nil, fmt.Errorf("profile %s: %w", id, domain.ErrProfileNotFound)
	}

	vec := bytesToVector(rec[domain.FieldVector])
	if len(vec) != domain.Dimensions {
		return nil, nil, fmt.Errorf("profile %s has no stored vector: %w", id, domain.ErrProfileNotFound)
	}
	delete(rec, domain.FieldVector)

	return vec, rec, nil
}

// Query runs a top-K nearest-neighbor search, pre-filtered by record type.
// Results keep the store's similarity order.
func (r *Repo) Query(ctx context.Context, vec domain.Vector, topK int, typeFilter string) ([]domain.Hit, error) {
	q := &db.KNNQuery{
		IndexName:    r.indexName(),
		Vector:       vec,
		K:            topK,
		ReturnFields: metadataFields,
	}
	if typeFilter != "" {
		q.Filter = db.TagFilter{domain.FieldType: typeFilter}
	}

	sr, err := r.store.SearchKNN(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query profiles: %w", err)
	}

	return r.toHits(sr), nil
}

// List returns profiles of the given type with offset pagination.
func (r *Repo) List(ctx context.Context, typeFilter string, offset, limit int) ([]domain.Hit, error) {
	q := &db.ListQuery{
		IndexName:    r.indexName(),
		Filter:       db.TagFilter{domain.FieldType: typeFilter},
		Offset:       offset,
		Limit:        limit,
		ReturnFields: metadataFields,
	}

	sr, err := r.store.SearchList(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list %s profiles: %w", typeFilter, err)
	}

	return r.toHits(sr), nil
}

// Count returns the number of stored profiles of the given type.
func (r *Repo) Count(ctx context.Context, typeFilter string) (int, error) {
	query := fmt.Sprintf("@%s:{%s}", domain.FieldType, typeFilter)
	n, err := r.store.SearchCount(ctx, r.indexName(), query)
	if err != nil {
		return 0, fmt.Errorf("count %s profiles: %w", typeFilter, err)
	}
	return n, nil
}

// Delete removes a profile record. Deleting an unknown id is not an error.
func (r *Repo) Delete(ctx context.Context, id string) error {
	if err := r.store.Del(ctx, r.key(id)); err != nil {
		return fmt.Errorf("delete profile %s: %w", id, err)
	}
	return nil
}

// Exists reports whether a profile record is stored under the id.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.Exists(ctx, r.key(id))
	if err != nil {
		return false, fmt.Errorf("check profile %s: %w", id, err)
	}
	return ok, nil
}

func (r *Repo) toHits(sr *db.SearchResult) []domain.Hit {
	if sr == nil || sr.Total == 0 {
		return nil
	}

	prefix := r.keyPrefix + "profile:"
	hits := make([]domain.Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		hits = append(hits, domain.Hit{
			ID:       strings.TrimPrefix(entry.Key, prefix),
			Score:    entry.Score,
			Metadata: entry.Fields,
		})
	}
	return hits
}

func (r *Repo) key(id string) string {
	return r.keyPrefix + "profile:" + id
}

func (r *Repo) indexName() string {
	return r.keyPrefix + "profile:idx"
}
