// Package match scores (job, candidate) pairs and ranks candidate batches
// retrieved from the vector store.
package match

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	"github.com/kailas-cloud/talentmatch/internal/logger"
	"github.com/kailas-cloud/talentmatch/internal/metrics"
)

const (
	defaultTopK        = 10
	defaultConcurrency = 4
)

// JobMatches is the ranked outcome of matching one job against the stored
// candidate pool.
type JobMatches struct {
	JobID    string
	Metadata map[string]string
	Matches  []domain.MatchResult
}

// Service composes individual matches and orchestrates batch retrieval.
type Service struct {
	store       ProfileStore
	gen         Generator
	topK        int
	concurrency int
}

// New creates a match service.
func New(store ProfileStore, gen Generator) *Service {
	return &Service{
		store:       store,
		gen:         gen,
		topK:        defaultTopK,
		concurrency: defaultConcurrency,
	}
}

// WithTopK configures how many nearest candidates are retrieved per job.
func (s *Service) WithTopK(k int) *Service {
	if k > 0 {
		s.topK = k
	}
	return s
}

// WithConcurrency bounds the fan-out of per-candidate narrative calls.
func (s *Service) WithConcurrency(n int) *Service {
	if n > 0 {
		s.concurrency = n
	}
	return s
}

// Compose scores a single (job, candidate) pair. It never fails: missing
// metadata and narrative errors both collapse to the degraded result shape
// with the corresponding sentinel strings and zero scores.
func (s *Service) Compose(ctx context.Context, jobMeta, candMeta map[string]string) domain.MatchResult {
	if len(jobMeta) == 0 || len(candMeta) == 0 {
		metrics.MatchCompositionsTotal.WithLabelValues("degraded").Inc()
		return domain.DegradedMatch("", candMeta, domain.MsgNoExperienceData, domain.MsgUnableToAnalyze)
	}

	skills := MatchSkills(jobMeta[domain.FieldSkills], candMeta[domain.FieldSkills])
	expScore := ScoreExperience(jobMeta[domain.FieldExperience], candMeta[domain.FieldExperience])

	narrative, err := s.gen.Generate(ctx, buildMatchPrompt(jobMeta, candMeta))
	if err != nil {
		// Absorbed: a narrative failure degrades one pair, never the batch.
		logger.FromContext(ctx).Warn("fit narrative failed",
			zap.Error(fmt.Errorf("%w: %w", domain.ErrNarrativeGeneration, err)),
		)
		metrics.MatchCompositionsTotal.WithLabelValues("degraded").Inc()
		return domain.DegradedMatch("", candMeta, domain.MsgExperienceError, domain.MsgAnalysisError)
	}

	metrics.MatchCompositionsTotal.WithLabelValues("ok").Inc()
	return domain.MatchResult{
		Metadata:        candMeta,
		SkillsMatch:     skills.Matched,
		MissingSkills:   skills.Missing,
		ExperienceMatch: EvaluateExperience(jobMeta[domain.FieldExperience], candMeta[domain.FieldExperience]),
		OverallFit:      narrative,
		Scores:          domain.NewMatchScores(skills.Score, expScore),
	}
}

// FindMatches retrieves the topK nearest candidates to the job's stored
// vector, composes each pair with bounded concurrency, and returns the
// surviving results sorted by overall score descending. Ties keep the vector
// store's similarity order. A job with zero candidate matches returns an
// empty list, not an error; an unknown job id fails with
// domain.ErrProfileNotFound.
func (s *Service) FindMatches(ctx context.Context, jobID string) (JobMatches, error) {
	vec, jobMeta, err := s.store.Fetch(ctx, jobID)
	if err != nil {
		return JobMatches{}, fmt.Errorf("fetch job %s: %w", jobID, err)
	}

	hits, err := s.store.Query(ctx, vec, s.topK, domain.TypeCandidate)
	if err != nil {
		return JobMatches{}, fmt.Errorf("query candidates for job %s: %w", jobID, err)
	}

	out := JobMatches{
		JobID:    jobID,
		Metadata: jobMeta,
		Matches:  []domain.MatchResult{},
	}
	if len(hits) == 0 {
		return out, nil
	}

	// Fan out composition; slots keep the store's original order so the
	// final ranking depends only on the sort, never on completion order.
	slots := make([]*domain.MatchResult, len(hits))
	sem := make(chan struct{}, s.concurrency)
	var wg sync.WaitGroup

	for i, hit := range hits {
		wg.Add(1)
		go func(i int, hit domain.Hit) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := s.composeHit(ctx, jobMeta, hit)
			if err != nil {
				logger.FromContext(ctx).Warn("candidate dropped from match batch",
					zap.String("candidate_id", hit.ID),
					zap.Error(err),
				)
				metrics.MatchCandidatesDroppedTotal.Inc()
				return
			}
			slots[i] = &res
		}(i, hit)
	}
	wg.Wait()

	for _, r := range slots {
		if r != nil {
			out.Matches = append(out.Matches, *r)
		}
	}

	sort.SliceStable(out.Matches, func(i, j int) bool {
		return out.Matches[i].Scores.Overall > out.Matches[j].Scores.Overall
	})

	return out, nil
}

// composeHit wraps Compose for batch use: panics and context cancellation
// become errors so a single bad candidate is dropped instead of aborting or
// poisoning the batch.
func (s *Service) composeHit(ctx context.Context, jobMeta map[string]string, hit domain.Hit) (res domain.MatchResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("compose match for %s: panic: %v", hit.ID, r)
		}
	}()

	res = s.Compose(ctx, jobMeta, hit.Metadata)
	if ctx.Err() != nil {
		return domain.MatchResult{}, fmt.Errorf("compose match for %s: %w", hit.ID, ctx.Err())
	}

	res.CandidateID = hit.ID
	return res, nil
}

// IsNotFound reports whether err is the missing-job failure, letting
// transports distinguish "job not found" from "no matches found".
func IsNotFound(err error) bool {
	return errors.Is(err, domain.ErrProfileNotFound)
}
