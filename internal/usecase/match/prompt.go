package match

import "fmt"

// matchPrompt is the fixed-structure fit-narrative prompt. The two-point
// instruction keeps responses short enough to return inline.
const matchPrompt = `Analyze this job-candidate match:

Job Requirements:
Title: %s
Required Skills: %s
Required Experience: %s

Candidate Profile:
Skills: %s
Experience: %s
Education: %s

Provide a brief analysis focusing on:
1. Experience match assessment (1-2 sentences)
2. Overall fit evaluation (2-3 sentences)

Keep the response concise and actionable.`

func buildMatchPrompt(jobMeta, candMeta map[string]string) string {
	return fmt.Sprintf(matchPrompt,
		orNotSpecified(jobMeta["title"]),
		orNotSpecified(jobMeta["skills"]),
		orNotSpecified(jobMeta["experience"]),
		orNotSpecified(candMeta["skills"]),
		orNotSpecified(candMeta["experience"]),
		orNotSpecified(candMeta["education"]),
	)
}

func orNotSpecified(s string) string {
	if s == "" {
		return "Not specified"
	}
	return s
}
