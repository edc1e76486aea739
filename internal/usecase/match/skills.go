package match

import "strings"

// SkillsMatch is the outcome of comparing two comma-delimited skill lists.
type SkillsMatch struct {
	Matched []string
	Missing []string
	Score   float64
}

// MatchSkills compares required skills against candidate skills.
// Matching is case-insensitive exact string equality; no fuzzy matching.
// An empty required list scores 0, not 1 — a posting without listed skills
// gives no basis to score against (documented policy).
func MatchSkills(requiredCsv, candidateCsv string) SkillsMatch {
	required := parseSkills(requiredCsv)
	candidate := parseSkills(candidateCsv)

	have := make(map[string]struct{}, len(candidate))
	for _, s := range candidate {
		have[s] = struct{}{}
	}

	matched := make([]string, 0, len(required))
	missing := make([]string, 0, len(required))
	for _, s := range required {
		if _, ok := have[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}

	var score float64
	if len(required) > 0 {
		score = float64(len(matched)) / float64(len(required))
	}

	return SkillsMatch{Matched: matched, Missing: missing, Score: score}
}

// parseSkills splits a comma-delimited list into trimmed, lower-cased,
// non-empty entries.
func parseSkills(csv string) []string {
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.ToLower(strings.TrimSpace(p))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
