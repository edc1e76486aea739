package match

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/kailas-cloud/talentmatch/internal/domain"
)

// yearsRe captures the first integer immediately followed by an optional
// run of whitespace and "year"/"yr" (with optional plural s).
var yearsRe = regexp.MustCompile(`(?i)(\d+)\s*(?:year|yr)s?`)

// ExtractYears returns the first year count mentioned in text, or 0.
func ExtractYears(text string) int {
	m := yearsRe.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// ScoreExperience computes a bounded ratio of candidate to required
// experience, in [0, 1]. Either side being empty scores 0. A candidate
// meeting or exceeding the requirement scores 1; this branch also covers
// a zero-year requirement, so the ratio below never divides by zero.
func ScoreExperience(requiredText, candidateText string) float64 {
	if requiredText == "" || candidateText == "" {
		return 0
	}

	required := ExtractYears(requiredText)
	candidate := ExtractYears(candidateText)

	if candidate >= required {
		return 1
	}
	return float64(candidate) / float64(required)
}

// EvaluateExperience produces the human-readable comparison string for a
// match result. Returns a fixed sentinel when either side is empty.
func EvaluateExperience(requiredText, candidateText string) string {
	if requiredText == "" || candidateText == "" {
		return domain.MsgExperienceUnavailable
	}
	return fmt.Sprintf("Experience evaluation: %s vs Required: %s", candidateText, requiredText)
}
