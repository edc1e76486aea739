package match

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

func TestCompose_Success(t *testing.T) {
	gen := &mockGenerator{response: "Solid experience match. Strong overall fit."}
	svc := New(&mockStore{}, gen)

	res := svc.Compose(context.Background(),
		jobMeta("go,redis", "5 years"),
		candMeta("go,python", "3 years"),
	)

	if got, want := res.Scores.Skills, 0.5; got != want {
		t.Errorf("skills score = %v, want %v", got, want)
	}
	if got, want := res.Scores.Experience, 0.6; math.Abs(got-want) > 1e-9 {
		t.Errorf("experience score = %v, want %v", got, want)
	}
	if res.OverallFit != "Solid experience match. Strong overall fit." {
		t.Errorf("unexpected narrative: %q", res.OverallFit)
	}
	if len(res.SkillsMatch) != 1 || res.SkillsMatch[0] != "go" {
		t.Errorf("skillsMatch = %v", res.SkillsMatch)
	}
	if len(res.MissingSkills) != 1 || res.MissingSkills[0] != "redis" {
		t.Errorf("missingSkills = %v", res.MissingSkills)
	}
}

func TestCompose_MissingMetadataDegrades(t *testing.T) {
	gen := &mockGenerator{response: "should not be called"}
	svc := New(&mockStore{}, gen)

	res := svc.Compose(context.Background(), jobMeta("go", "5 years"), nil)

	if res.ExperienceMatch != domain.MsgNoExperienceData {
		t.Errorf("experienceMatch = %q", res.ExperienceMatch)
	}
	if res.OverallFit != domain.MsgUnableToAnalyze {
		t.Errorf("overallFit = %q", res.OverallFit)
	}
	if res.Scores != (domain.MatchScores{}) {
		t.Errorf("expected zero scores, got %+v", res.Scores)
	}
	if len(res.SkillsMatch) != 0 || len(res.MissingSkills) != 0 {
		t.Errorf("expected empty skill sets, got %v / %v", res.SkillsMatch, res.MissingSkills)
	}
	if gen.callCount() != 0 {
		t.Errorf("generator called %d times on degraded path", gen.callCount())
	}
}

func TestCompose_NarrativeErrorDegrades(t *testing.T) {
	gen := &mockGenerator{err: errors.New("provider down")}
	svc := New(&mockStore{}, gen)

	res := svc.Compose(context.Background(),
		jobMeta("go", "5 years"),
		candMeta("go", "5 years"),
	)

	if res.ExperienceMatch != domain.MsgExperienceError {
		t.Errorf("experienceMatch = %q", res.ExperienceMatch)
	}
	if res.OverallFit != domain.MsgAnalysisError {
		t.Errorf("overallFit = %q", res.OverallFit)
	}
	if res.Scores != (domain.MatchScores{}) {
		t.Errorf("expected zero scores, got %+v", res.Scores)
	}
}

func TestCompose_OverallIsMeanOfSubScores(t *testing.T) {
	gen := &mockGenerator{response: "fit"}
	svc := New(&mockStore{}, gen)

	cases := []struct{ jobSkills, candSkills, jobExp, candExp string }{
		{"a,b,c,d", "a", "5 years", "1 year"},
		{"a,b", "a,b", "3 years", "10 years"},
		{"x", "y", "", ""},
		{"", "a", "4 years", "2 years"},
	}
	for _, c := range cases {
		res := svc.Compose(context.Background(),
			jobMeta(c.jobSkills, c.jobExp),
			candMeta(c.candSkills, c.candExp),
		)
		want := (res.Scores.Skills + res.Scores.Experience) / 2
		if math.Abs(res.Scores.Overall-want) > 1e-9 {
			t.Errorf("overall = %v, want mean %v (case %+v)", res.Scores.Overall, want, c)
		}
	}
}

func TestFindMatches_JobNotFound(t *testing.T) {
	store := &mockStore{fetchErr: fmt.Errorf("no record: %w", domain.ErrProfileNotFound)}
	svc := New(store, &mockGenerator{response: "fit"})

	_, err := svc.FindMatches(context.Background(), "job_missing")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestFindMatches_NoCandidatesIsEmptyNotError(t *testing.T) {
	store := &mockStore{
		fetchVec:  make(domain.Vector, domain.Dimensions),
		fetchMeta: jobMeta("go", "5 years"),
	}
	svc := New(store, &mockGenerator{response: "fit"})

	out, err := svc.FindMatches(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Matches == nil || len(out.Matches) != 0 {
		t.Errorf("expected empty non-nil matches, got %v", out.Matches)
	}
}

func TestFindMatches_SortedByOverallDescending(t *testing.T) {
	// Overall scores by construction: low=0.2, high=0.9, mid=0.5.
	store := &mockStore{
		fetchVec:  make(domain.Vector, domain.Dimensions),
		fetchMeta: jobMeta("a,b,c,d,e", "5 years"),
		queryHits: []domain.Hit{
			{ID: "candidate_low", Metadata: candMeta("a,b", "")},
			{ID: "candidate_high", Metadata: candMeta("a,b,c,d", "5 years")},
			{ID: "candidate_mid", Metadata: candMeta("", "5 years")},
		},
	}
	svc := New(store, &mockGenerator{response: "fit"})

	out, err := svc.FindMatches(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(out.Matches))
	}

	wantIDs := []string{"candidate_high", "candidate_mid", "candidate_low"}
	wantScores := []float64{0.9, 0.5, 0.2}
	for i, m := range out.Matches {
		if m.CandidateID != wantIDs[i] {
			t.Errorf("position %d: got %s, want %s", i, m.CandidateID, wantIDs[i])
		}
		if math.Abs(m.Scores.Overall-wantScores[i]) > 1e-9 {
			t.Errorf("position %d: overall = %v, want %v", i, m.Scores.Overall, wantScores[i])
		}
	}
}

func TestFindMatches_TiesKeepStoreOrder(t *testing.T) {
	store := &mockStore{
		fetchVec:  make(domain.Vector, domain.Dimensions),
		fetchMeta: jobMeta("go", "5 years"),
		queryHits: []domain.Hit{
			{ID: "candidate_first", Metadata: candMeta("go", "5 years")},
			{ID: "candidate_second", Metadata: candMeta("go", "7 years")},
		},
	}
	svc := New(store, &mockGenerator{response: "fit"})

	out, err := svc.FindMatches(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Matches[0].CandidateID != "candidate_first" || out.Matches[1].CandidateID != "candidate_second" {
		t.Errorf("tie order changed: %s, %s", out.Matches[0].CandidateID, out.Matches[1].CandidateID)
	}
}

func TestFindMatches_NarrativeFailureDegradesEveryPair(t *testing.T) {
	store := &mockStore{
		fetchVec:  make(domain.Vector, domain.Dimensions),
		fetchMeta: jobMeta("go", "5 years"),
		queryHits: []domain.Hit{
			{ID: "candidate_1", Metadata: candMeta("go", "5 years")},
			{ID: "candidate_2", Metadata: candMeta("go", "3 years")},
		},
	}
	svc := New(store, &mockGenerator{err: errors.New("provider down")})

	out, err := svc.FindMatches(context.Background(), "job_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Matches) != 2 {
		t.Fatalf("expected both candidates kept (degraded), got %d", len(out.Matches))
	}
	for _, m := range out.Matches {
		if m.OverallFit != domain.MsgAnalysisError {
			t.Errorf("candidate %s: overallFit = %q", m.CandidateID, m.OverallFit)
		}
	}
}

func TestFindMatches_UsesConfiguredTopK(t *testing.T) {
	store := &mockStore{
		fetchVec:  make(domain.Vector, domain.Dimensions),
		fetchMeta: jobMeta("go", "5 years"),
	}
	svc := New(store, &mockGenerator{response: "fit"}).WithTopK(3)

	if _, err := svc.FindMatches(context.Background(), "job_1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.queriedK != 3 {
		t.Errorf("queried topK = %d, want 3", store.queriedK)
	}
}
