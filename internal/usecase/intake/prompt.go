package intake

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

const analysisPromptTemplate = `Provide a concise analysis of this candidate (maximum 500 words):
%s

Structure the analysis as follows (keep each section brief):
1. Technical Skills Summary (2-3 key points)
2. Experience Overview (2-3 sentences)
3. Education Relevance (1-2 sentences)
4. Key Strengths (2-3 points)
5. Quick Recommendation (1-2 sentences)

Keep the entire analysis under 500 words and focus on the most important points.`

// buildAnalysisPrompt renders the intake-time candidate analysis request.
// The resume text block is omitted entirely when empty.
func buildAnalysisPrompt(m domain.CandidateMetadata) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate Name: %s\n", m.Name)
	fmt.Fprintf(&b, "Email: %s\n", m.Email)
	fmt.Fprintf(&b, "Skills: %s\n", strings.Join(m.Skills, ", "))
	fmt.Fprintf(&b, "Experience: %s\n", m.Experience)
	fmt.Fprintf(&b, "Education: %s", m.Education)
	if m.ResumeText != "" {
		fmt.Fprintf(&b, "\nAdditional Information: %s", m.ResumeText)
	}
	return fmt.Sprintf(analysisPromptTemplate, b.String())
}
