package chi

import (
	"time"

	"github.com/kailas-cloud/talentmatch/internal/domain"
	"github.com/kailas-cloud/talentmatch/internal/usecase/intake"
)

// errorCode values returned in the error response body.
type errorCode string

const (
	codeBadRequest       errorCode = "bad_request"
	codeValidationFailed errorCode = "validation_failed"
	codeUnauthorized     errorCode = "unauthorized"
	codeNotFound         errorCode = "profile_not_found"
	codeGenerationFailed errorCode = "generation_provider_error"
	codeInternalError    errorCode = "internal_error"
)

type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

type jobRequest struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Skills       []string `json:"skills"`
	Experience   string   `json:"experience"`
}

type jobMetadataResponse struct {
	Type         string    `json:"type"`
	Title        string    `json:"title"`
	Company      string    `json:"company"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	Skills       []string  `json:"skills"`
	Experience   string    `json:"experience"`
	CreatedAt    time.Time `json:"createdAt"`
}

type jobResponse struct {
	ID       string              `json:"id"`
	Metadata jobMetadataResponse `json:"metadata"`
}

type submitJobResponse struct {
	JobID string `json:"jobId"`
}

type listJobsResponse struct {
	Jobs []jobResponse `json:"jobs"`
}

type candidateRequest struct {
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	LinkedinURL string   `json:"linkedinUrl"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Education   string   `json:"education"`
	ResumeText  string   `json:"resumeText"`
}

// candidatePatchRequest distinguishes absent fields from empty ones.
type candidatePatchRequest struct {
	Name        *string   `json:"name"`
	Email       *string   `json:"email"`
	LinkedinURL *string   `json:"linkedinUrl"`
	Skills      *[]string `json:"skills"`
	Experience  *string   `json:"experience"`
	Education   *string   `json:"education"`
	ResumeText  *string   `json:"resumeText"`
}

type candidateMetadataResponse struct {
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

type candidateResponse struct {
	ID       string                    `json:"id"`
	Metadata candidateMetadataResponse `json:"metadata"`
}

type submitCandidateResponse struct {
	CandidateID string `json:"candidateId"`
}

type listCandidatesResponse struct {
	Candidates []candidateResponse `json:"candidates"`
}

type matchScoresResponse struct {
	SkillsScore     float64 `json:"skillsScore"`
	ExperienceScore float64 `json:"experienceScore"`
	OverallScore    float64 `json:"overallScore"`
}

type matchItemResponse struct {
	CandidateID     string                    `json:"candidateId"`
	Metadata        candidateMetadataResponse `json:"metadata"`
	SkillsMatch     []string                  `json:"skillsMatch"`
	MissingSkills   []string                  `json:"missingSkills"`
	ExperienceMatch string                    `json:"experienceMatch"`
	OverallFit      string                    `json:"overallFit"`
	Scores          matchScoresResponse       `json:"scores"`
}

type matchResponse struct {
	Job     jobResponse         `json:"job"`
	Matches []matchItemResponse `json:"matches"`
}

type statsResponse struct {
	Jobs       int `json:"jobs"`
	Candidates int `json:"candidates"`
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func jobMetadataToDTO(m domain.JobMetadata) jobMetadataResponse {
	return jobMetadataResponse{
		Type:         domain.TypeJob,
		Title:        m.Title,
		Company:      m.Company,
		Description:  m.Description,
		Requirements: emptyIfNil(m.Requirements),
		Skills:       emptyIfNil(m.Skills),
		Experience:   m.Experience,
		CreatedAt:    m.CreatedAt,
	}
}

func candidateMetadataToDTO(m domain.CandidateMetadata) candidateMetadataResponse {
	return candidateMetadataResponse{
		Type:        domain.TypeCandidate,
		Name:        m.Name,
		Email:       m.Email,
		LinkedinURL: m.LinkedinURL,
		Skills:      emptyIfNil(m.Skills),
		Experience:  m.Experience,
		Education:   m.Education,
		ResumeText:  m.ResumeText,
		Analysis:    m.Analysis,
	}
}

func jobFromRequest(req jobRequest) domain.JobMetadata {
	return domain.JobMetadata{
		Title:        req.Title,
		Company:      req.Company,
		Description:  req.Description,
		Requirements: req.Requirements,
		Skills:       req.Skills,
		Experience:   req.Experience,
	}
}

func candidateFromRequest(req candidateRequest) domain.CandidateMetadata {
	return domain.CandidateMetadata{
		Name:        req.Name,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Education:   req.Education,
		ResumeText:  req.ResumeText,
	}
}

func patchFromRequest(req candidatePatchRequest) intake.CandidatePatch {
	return intake.CandidatePatch{
		Name:        req.Name,
		Email:       req.Email,
		LinkedinURL: req.LinkedinURL,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Education:   req.Education,
		ResumeText:  req.ResumeText,
	}
}

func matchItemToDTO(m domain.MatchResult) matchItemResponse {
	return matchItemResponse{
		CandidateID:     m.CandidateID,
		Metadata:        candidateMetadataToDTO(domain.CandidateFromRecord(m.Metadata)),
		SkillsMatch:     emptyIfNil(m.SkillsMatch),
		MissingSkills:   emptyIfNil(m.MissingSkills),
		ExperienceMatch: m.ExperienceMatch,
		OverallFit:      m.OverallFit,
		Scores: matchScoresResponse{
			SkillsScore:     m.Scores.Skills,
			ExperienceScore: m.Scores.Experience,
			OverallScore:    m.Scores.Overall,
		},
	}
}

// emptyIfNil keeps list fields as [] in JSON instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
