// Package intake owns the write side of the profile pool: job and candidate
// submission, listing, partial updates, and deletes.
package intake

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

const (
	defaultMaxAnalysisLen = 500
	defaultListLimit      = 1000
)

// Job pairs a stored job posting with its id.
type Job struct {
	ID       string
	Metadata domain.JobMetadata
}

// Candidate pairs a stored candidate with its id.
type Candidate struct {
	ID       string
	Metadata domain.CandidateMetadata
}

// CandidatePatch carries the fields of a partial candidate update. Nil
// fields keep their stored values.
type CandidatePatch struct {
	Name        *string
	Email       *string
	LinkedinURL *string
	Skills      *[]string
	Experience  *string
	Education   *string
	ResumeText  *string
}

// Service implements profile intake. All derived values (vector, analysis)
// are computed before the store write, so a failed submission leaves no
// partial record behind.
type Service struct {
	store          ProfileStore
	vec            Vectorizer
	gen            Generator
	maxAnalysisLen int
	listLimit      int

	newID func(kind string) string
	now   func() time.Time
}

// New creates an intake service.
func New(store ProfileStore, vec Vectorizer, gen Generator) *Service {
	return &Service{
		store:          store,
		vec:            vec,
		gen:            gen,
		maxAnalysisLen: defaultMaxAnalysisLen,
		listLimit:      defaultListLimit,
		newID:          defaultID,
		now:            time.Now,
	}
}

// WithMaxAnalysisLen overrides the analysis truncation threshold.
func (s *Service) WithMaxAnalysisLen(n int) *Service {
	if n > 0 {
		s.maxAnalysisLen = n
	}
	return s
}

// WithListLimit caps how many profiles list operations return.
func (s *Service) WithListLimit(n int) *Service {
	if n > 0 {
		s.listLimit = n
	}
	return s
}

func defaultID(kind string) string {
	return kind + "_" + uuid.NewString()
}

// SubmitJob vectorizes the posting text and stores the record. The stored
// createdAt is set at submission time unless the caller provided one.
func (s *Service) SubmitJob(ctx context.Context, meta domain.JobMetadata) (string, error) {
	if meta.CreatedAt.IsZero() {
		meta.CreatedAt = s.now().UTC()
	}

	vec, err := s.vec.Vectorize(ctx, meta.ProfileText())
	if err != nil {
		return "", fmt.Errorf("vectorize job: %w", err)
	}

	id := s.newID(domain.TypeJob)
	if err := s.store.Upsert(ctx, id, vec, meta.Record()); err != nil {
		return "", fmt.Errorf("store job %s: %w", id, err)
	}
	return id, nil
}

// ListJobs returns the stored postings sorted by creation time, newest
// first. Records sharing a timestamp keep store order.
func (s *Service) ListJobs(ctx context.Context) ([]Job, error) {
	hits, err := s.store.List(ctx, domain.TypeJob, 0, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]Job, 0, len(hits))
	for _, h := range hits {
		jobs = append(jobs, Job{ID: h.ID, Metadata: domain.JobFromRecord(h.Metadata)})
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].Metadata.CreatedAt.After(jobs[j].Metadata.CreatedAt)
	})
	return jobs, nil
}

// Stats holds the stored-profile counts per type.
type Stats struct {
	Jobs       int
	Candidates int
}

// Stats counts the stored jobs and candidates.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	jobs, err := s.store.Count(ctx, domain.TypeJob)
	if err != nil {
		return Stats{}, fmt.Errorf("count jobs: %w", err)
	}
	candidates, err := s.store.Count(ctx, domain.TypeCandidate)
	if err != nil {
		return Stats{}, fmt.Errorf("count candidates: %w", err)
	}
	return Stats{Jobs: jobs, Candidates: candidates}, nil
}

// SubmitCandidate vectorizes the profile, generates the intake analysis,
// and stores the record. Either derivation failing aborts the submission
// with nothing written.
func (s *Service) SubmitCandidate(ctx context.Context, meta domain.CandidateMetadata) (string, error) {
	vec, err := s.vec.Vectorize(ctx, meta.ProfileText())
	if err != nil {
		return "", fmt.Errorf("vectorize candidate: %w", err)
	}

	analysis, err := s.gen.Generate(ctx, buildAnalysisPrompt(meta))
	if err != nil {
		return "", fmt.Errorf("%w: analyze candidate: %w", domain.ErrNarrativeGeneration, err)
	}
	meta.Analysis = TruncateAnalysis(analysis, s.maxAnalysisLen)

	id := s.newID(domain.TypeCandidate)
	if err := s.store.Upsert(ctx, id, vec, meta.Record()); err != nil {
		return "", fmt.Errorf("store candidate %s: %w", id, err)
	}
	return id, nil
}

// ListCandidates returns the stored candidate pool in store order.
func (s *Service) ListCandidates(ctx context.Context) ([]Candidate, error) {
	hits, err := s.store.List(ctx, domain.TypeCandidate, 0, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("list candidates: %w", err)
	}

	out := make([]Candidate, 0, len(hits))
	for _, h := range hits {
		out = append(out, Candidate{ID: h.ID, Metadata: domain.CandidateFromRecord(h.Metadata)})
	}
	return out, nil
}

// UpdateCandidate merges the patch over the stored record, recomputes the
// vector and analysis from the merged profile, and re-upserts. An unknown
// id fails with domain.ErrProfileNotFound before any generation work.
func (s *Service) UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) error {
	_, rec, err := s.store.Fetch(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch candidate %s: %w", id, err)
	}

	meta := applyPatch(domain.CandidateFromRecord(rec), patch)

	vec, err := s.vec.Vectorize(ctx, meta.ProfileText())
	if err != nil {
		return fmt.Errorf("vectorize candidate %s: %w", id, err)
	}

	analysis, err := s.gen.Generate(ctx, buildAnalysisPrompt(meta))
	if err != nil {
		return fmt.Errorf("%w: analyze candidate %s: %w", domain.ErrNarrativeGeneration, id, err)
	}
	meta.Analysis = TruncateAnalysis(analysis, s.maxAnalysisLen)

	if err := s.store.Upsert(ctx, id, vec, meta.Record()); err != nil {
		return fmt.Errorf("store candidate %s: %w", id, err)
	}
	return nil
}

// DeleteCandidate removes a candidate record. Deleting an unknown id fails
// with domain.ErrProfileNotFound.
func (s *Service) DeleteCandidate(ctx context.Context, id string) error {
	ok, err := s.store.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check candidate %s: %w", id, err)
	}
	if !ok {
		return fmt.Errorf("candidate %s: %w", id, domain.ErrProfileNotFound)
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete candidate %s: %w", id, err)
	}
	return nil
}

func applyPatch(meta domain.CandidateMetadata, p CandidatePatch) domain.CandidateMetadata {
	if p.Name != nil {
		meta.Name = *p.Name
	}
	if p.Email != nil {
		meta.Email = *p.Email
	}
	if p.LinkedinURL != nil {
		meta.LinkedinURL = *p.LinkedinURL
	}
	if p.Skills != nil {
		meta.Skills = *p.Skills
	}
	if p.Experience != nil {
		meta.Experience = *p.Experience
	}
	if p.Education != nil {
		meta.Education = *p.Education
	}
	if p.ResumeText != nil {
		meta.ResumeText = *p.ResumeText
	}
	return meta
}

// TruncateAnalysis cuts an over-long analysis at the limit, then backs off
// to the last sentence boundary inside the cut when one exists past the
// first rune.
func TruncateAnalysis(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	if i := strings.LastIndex(cut, "."); i > 0 {
		return cut[:i+1]
	}
	return cut
}
