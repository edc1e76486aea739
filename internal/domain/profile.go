package domain

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Record type values stored in the "type" metadata field. The value crosses
// the storage boundary: retrieval pre-filters on it.
const (
	TypeJob       = "job"
	TypeCandidate = "candidate"
)

// Metadata field names shared with the vector store. Renaming any of these
// breaks previously stored records.
const (
	FieldType         = "type"
	FieldVector       = "vector"
	FieldTitle        = "title"
	FieldCompany      = "company"
	FieldDescription  = "description"
	FieldRequirements = "requirements"
	FieldSkills       = "skills"
	FieldExperience   = "experience"
	FieldCreatedAt    = "createdAt"
	FieldName         = "name"
	FieldEmail        = "email"
	FieldLinkedinURL  = "linkedinUrl"
	FieldEducation    = "education"
	FieldResumeText   = "resumeText"
	FieldAnalysis     = "analysis"
)

// requirementsSep joins individual requirement lines into a single metadata
// value. Triple pipe survives free text better than a single delimiter.
const requirementsSep = "|||"

// JobMetadata is the metadata bag of a stored job posting.
type JobMetadata struct {
	Title        string
	Company      string
	Description  string
	Requirements []string
	Skills       []string
	Experience   string
	CreatedAt    time.Time
}

// Record flattens the job metadata into the stored string map.
func (m JobMetadata) Record() map[string]string {
	return map[string]string{
		FieldType:         TypeJob,
		FieldTitle:        m.Title,
		FieldCompany:      m.Company,
		FieldDescription:  m.Description,
		FieldRequirements: strings.Join(m.Requirements, requirementsSep),
		FieldSkills:       strings.Join(m.Skills, ","),
		FieldExperience:   m.Experience,
		FieldCreatedAt:    m.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// JobFromRecord reconstructs job metadata from a stored record.
// Missing fields come back zero-valued; timestamps that fail to parse are
// dropped rather than failing the read.
func JobFromRecord(rec map[string]string) JobMetadata {
	m := JobMetadata{
		Title:       rec[FieldTitle],
		Company:     rec[FieldCompany],
		Description: rec[FieldDescription],
		Experience:  rec[FieldExperience],
	}
	if v := rec[FieldRequirements]; v != "" {
		m.Requirements = strings.Split(v, requirementsSep)
	}
	if v := rec[FieldSkills]; v != "" {
		m.Skills = strings.Split(v, ",")
	}
	if ts, err := time.Parse(time.RFC3339, rec[FieldCreatedAt]); err == nil {
		m.CreatedAt = ts
	}
	return m
}

// ProfileText assembles the passage fed to the vectorizer on job submission.
func (m JobMetadata) ProfileText() string {
	return strings.TrimSpace(fmt.Sprintf(
		"Title: %s\nCompany: %s\nDescription: %s\nRequirements: %s\nSkills: %s\nExperience: %s",
		m.Title, m.Company, m.Description,
		strings.Join(m.Requirements, "\n"),
		strings.Join(m.Skills, ", "),
		m.Experience,
	))
}

// CandidateMetadata is the metadata bag of a stored candidate.
type CandidateMetadata struct {
	Name        string
	Email       string
	LinkedinURL string
	Skills      []string
	Experience  string
	Education   string
	ResumeText  string
	Analysis    string
}

// Record flattens the candidate metadata into the stored string map.
func (m CandidateMetadata) Record() map[string]string {
	return map[string]string{
		FieldType:        TypeCandidate,
		FieldName:        m.Name,
		FieldEmail:       m.Email,
		FieldLinkedinURL: m.LinkedinURL,
		FieldSkills:      strings.Join(m.Skills, ","),
		FieldExperience:  m.Experience,
		FieldEducation:   m.Education,
		FieldResumeText:  m.ResumeText,
		FieldAnalysis:    m.Analysis,
	}
}

// CandidateFromRecord reconstructs candidate metadata from a stored record.
func CandidateFromRecord(rec map[string]string) CandidateMetadata {
	m := CandidateMetadata{
		Name:        rec[FieldName],
		Email:       rec[FieldEmail],
		LinkedinURL: rec[FieldLinkedinURL],
		Experience:  rec[FieldExperience],
		Education:   rec[FieldEducation],
		ResumeText:  rec[FieldResumeText],
		Analysis:    rec[FieldAnalysis],
	}
	if v := rec[FieldSkills]; v != "" {
		m.Skills = strings.Split(v, ",")
	}
	return m
}

// ProfileText serializes the candidate to the passage fed to the vectorizer.
// JSON keeps field boundaries intact for arbitrary free-text values.
func (m CandidateMetadata) ProfileText() string {
	b, err := json.Marshal(struct {
		Type        string   `json:"type"`
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		LinkedinURL string   `json:"linkedinUrl"`
		Skills      []string `json:"skills"`
		Experience  string   `json:"experience"`
		Education   string   `json:"education"`
	}{
		Type: TypeCandidate, Name: m.Name, Email: m.Email, LinkedinURL: m.LinkedinURL,
		Skills: m.Skills, Experience: m.Experience, Education: m.Education,
	})
	if err != nil {
		// Struct of strings cannot fail to marshal; fall back to the name.
		return m.Name
	}
	return string(b)
}

// Hit is a single nearest-neighbor result from the vector store.
type Hit struct {
	ID       string
	Score    float64
	Metadata map[string]string
}
