package domain

// Sentinel strings placed in degraded match results. The exact wording is
// part of the API surface and asserted by clients.
const (
	MsgNoExperienceData      = "No data available for comparison"
	MsgUnableToAnalyze       = "Unable to analyze due to missing data"
	MsgExperienceError       = "Error analyzing experience match"
	MsgAnalysisError         = "Error performing analysis"
	MsgExperienceUnavailable = "Experience information not available"
)

// MatchScores holds the three deterministic sub-scores of a match,
// each in [0, 1]. Overall is always the mean of Skills and Experience.
type MatchScores struct {
	Skills     float64
	Experience float64
	Overall    float64
}

// NewMatchScores computes the overall score from the two sub-scores.
func NewMatchScores(skills, experience float64) MatchScores {
	return MatchScores{
		Skills:     skills,
		Experience: experience,
		Overall:    (skills + experience) / 2,
	}
}

// MatchResult is one scored (job, candidate) pairing. Built per retrieval
// request and never persisted.
type MatchResult struct {
	CandidateID     string
	Metadata        map[string]string
	SkillsMatch     []string
	MissingSkills   []string
	ExperienceMatch string
	OverallFit      string
	Scores          MatchScores
}

// DegradedMatch builds the fallback result shape used both when metadata is
// missing and when composition fails: empty skill sets, zero scores, and the
// given sentinel strings. It is a defined outcome, not an error.
func DegradedMatch(candidateID string, metadata map[string]string, experienceMsg, fitMsg string) MatchResult {
	return MatchResult{
		CandidateID:     candidateID,
		Metadata:        metadata,
		SkillsMatch:     []string{},
		MissingSkills:   []string{},
		ExperienceMatch: experienceMsg,
		OverallFit:      fitMsg,
		Scores:          MatchScores{},
	}
}
