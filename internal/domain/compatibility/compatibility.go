// Package compatibility scores how well a candidate's skills cover the skills
// an offer requires.
//
// A required skill is satisfied when some candidate skill contains it or is
// contained by it, after trimming and lower-casing both. Containment is
// deliberately loose: "java" satisfies "javascript" and the other way round.
// Callers that want stricter matching need a different rule, not a tweak here.
//
// Every function is pure and safe for concurrent use.
package compatibility

import (
	"math"
	"strings"
)

// Result is the full outcome of comparing one candidate against one offer.
type Result struct {
	Score   float64  `json:"score"`
	Matched []string `json:"matched"`
	Gaps    []string `json:"gaps"`
}

// ParseSkills splits a comma-separated skill list and normalizes each entry.
func ParseSkills(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return NormalizeSkills(strings.Split(text, ","))
}

// NormalizeSkills trims and lower-cases every skill, dropping empty ones.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Score returns the percentage of required skills satisfied by the candidate.
// Both arguments are raw comma-separated lists.
func Score(candidateSkills, requiredSkills string) float64 {
	return score(ParseSkills(candidateSkills), ParseSkills(requiredSkills))
}

// ScoreSkills is Score for already split lists.
func ScoreSkills(candidate, required []string) float64 {
	return score(NormalizeSkills(candidate), NormalizeSkills(required))
}

// SkillGaps lists the normalized required skills no candidate skill satisfies,
// in their original order. Repeated requirements are reported every time.
func SkillGaps(candidateSkills, requiredSkills string) []string {
	return evaluate(ParseSkills(candidateSkills), ParseSkills(requiredSkills)).Gaps
}

// SkillGapsList is SkillGaps for already split lists.
func SkillGapsList(candidate, required []string) []string {
	return evaluate(NormalizeSkills(candidate), NormalizeSkills(required)).Gaps
}

// Evaluate computes score, satisfied requirements and gaps in one pass.
func Evaluate(candidateSkills, requiredSkills string) Result {
	return evaluate(ParseSkills(candidateSkills), ParseSkills(requiredSkills))
}

// Round rounds a score to two decimals, the precision shown to users.
func Round(score float64) float64 {
	return math.Round(score*100) / 100
}

func score(candidate, required []string) float64 {
	return evaluate(candidate, required).Score
}

// evaluate expects normalized input.
func evaluate(candidate, required []string) Result {
	res := Result{Matched: []string{}, Gaps: []string{}}
	for _, req := range required {
		if satisfied(req, candidate) {
			res.Matched = append(res.Matched, req)
		} else {
			res.Gaps = append(res.Gaps, req)
		}
	}
	// No requirements means nothing to match against, not a perfect fit.
	if len(required) == 0 {
		return res
	}
	res.Score = math.Min(float64(len(res.Matched))/float64(len(required))*100, 100)
	return res
}

func satisfied(required string, candidate []string) bool {
	for _, c := range candidate {
		if strings.Contains(c, required) || strings.Contains(required, c) {
			return true
		}
	}
	return false
}
