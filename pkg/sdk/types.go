package talentmatch

import "time"

// JobRequest is the payload for job submission.
type JobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
}

// JobMetadata describes a stored job posting.
type JobMetadata struct {
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Job pairs a stored job with its id.
type Job struct {
	ID       string      `json:"id"`
	Metadata JobMetadata `json:"metadata"`
}

// CandidateRequest is the payload for candidate submission.
type CandidateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	LinkedinURL string   `json:"linkedinUrl"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	ResumeText  string   `json:"resumeText"`
}

// CandidatePatch is the payload for a partial candidate update. Nil fields
// keep their stored values.
type CandidatePatch struct {
	Name        *string   `json:"name,omitempty"`
	Email       *string   `json:"email,omitempty"`
	LinkedinURL *string   `json:"linkedinUrl,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Experience  *string   `json:"experience,omitempty"`
	Education   *string   `json:"education,omitempty"`
	ResumeText  *string   `json:"resumeText,omitempty"`
}

// CandidateMetadata describes a stored candidate.
type CandidateMetadata struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	LinkedinURL string   `json:"linkedinUrl"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	ResumeText  string   `json:"resumeText"`
	Analysis    string   `json:"analysis"`
}

// Candidate pairs a stored candidate with its id.
type Candidate struct {
	ID       string            `json:"id"`
	Metadata CandidateMetadata `json:"metadata"`
}

// MatchScores holds the sub-scores of one match, each in [0, 1].
type MatchScores struct {
	SkillsScore     float64 `json:"skillsScore"`
	ExperienceScore float64 `json:"experienceScore"`
	OverallScore    float64 `json:"overallScore"`
}

// Match is one scored candidate for a job.
type Match struct {
	CandidateID     string            `json:"candidateId"`
	Metadata        CandidateMetadata `json:"metadata"`
	SkillsMatch     []string          `json:"skillsMatch"`
	MissingSkills   []string          `json:"missingSkills"`
	ExperienceMatch string            `json:"experienceMatch"`
	OverallFit      string            `json:"overallFit"`
	Scores          MatchScores       `json:"scores"`
}

// MatchReport is the ranked result of matching one job against the
// candidate pool, best match first.
type MatchReport struct {
	Job     Job     `json:"job"`
	Matches []Match `json:"matches"`
}

// Stats holds the stored-profile counts per type.
type Stats struct {
	Jobs       int `json:"jobs"`
	Candidates int `json:"candidates"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"` // "ok", "degraded", "error"
	Checks map[string]string `json:"checks"` // component → "ok"/"error"
}
