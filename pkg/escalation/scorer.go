package escalation

import "strings"

// Level is the 3-level urgency classification of a single query.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Fixed reason texts surfaced alongside the level.
const (
	ReasonHigh   = "Immediate human intervention required"
	ReasonMedium = "Consider human handoff"
	ReasonLow    = "Can be handled by automated response"
)

// Rule weights, additive.
const (
	weightKeyword      = 2
	weightComplexTopic = 1
	weightQuestions    = 1
	weightCaps         = 2

	thresholdHigh   = 4
	thresholdMedium = 2
)

// escalationKeywords are direct triggers for human involvement.
var escalationKeywords = []string{
	"complaint", "angry", "frustrated", "terrible", "awful", "horrible",
	"lawsuit", "legal", "attorney", "fraud", "scam", "stolen",
	"emergency", "urgent", "immediate", "crisis", "help me",
	"manager", "supervisor", "speak to human", "representative",
	"cancel account", "close account", "dispute", "error",
}

// complexTopics are subjects the automated flow handles poorly.
var complexTopics = []string{
	"loan application", "mortgage", "investment", "financial planning",
	"tax advice", "business account", "wire transfer", "international",
	"credit report", "bankruptcy", "foreclosure", "refinance",
}

// TermLookup resolves a keyword's form in another language. The second
// return is false when the dictionary has no entry for the pair.
type TermLookup func(term, language string) (string, bool)

// Scorer classifies a single query into an escalation level. It is a
// pure function of its inputs: no state, no I/O, no blocking.
type Scorer struct {
	lookup TermLookup
}

// NewScorer builds a scorer. lookup may be nil, in which case only
// literal (canonical-language) keyword forms are matched.
func NewScorer(lookup TermLookup) *Scorer {
	return &Scorer{lookup: lookup}
}

// Score evaluates the query and returns a level plus a fixed reason
// text. For non-English languages each keyword is matched against both
// its translated form and its literal form; both hits count, so a
// bilingual query can accumulate double weight per keyword. That
// sensitivity bias is intentional: mixed-language frustration is a
// stronger escalation signal, not a parsing bug.
func (s *Scorer) Score(query, language string) (Level, string) {
	lower := strings.ToLower(query)
	score := 0

	score += s.matchTerms(lower, language, escalationKeywords, weightKeyword)
	score += s.matchTerms(lower, language, complexTopics, weightComplexTopic)

	if strings.Count(query, "?") > 2 {
		score += weightQuestions
	}
	if upperRatio(query) > 0.5 {
		score += weightCaps
	}

	switch {
	case score >= thresholdHigh:
		return LevelHigh, ReasonHigh
	case score >= thresholdMedium:
		return LevelMedium, ReasonMedium
	default:
		return LevelLow, ReasonLow
	}
}

func (s *Scorer) matchTerms(lowerQuery, language string, terms []string, weight int) int {
	score := 0
	for _, term := range terms {
		if s.lookup != nil && language != "" && language != "en" {
			if translated, ok := s.lookup(term, language); ok {
				if strings.Contains(lowerQuery, strings.ToLower(translated)) {
					score += weight
				}
			}
		}
		if strings.Contains(lowerQuery, term) {
			score += weight
		}
	}
	return score
}

func upperRatio(query string) float64 {
	if len(query) == 0 {
		return 0
	}
	upper := 0
	for _, r := range query {
		if r >= 'A' && r <= 'Z' {
			upper++
		}
	}
	return float64(upper) / float64(len([]rune(query)))
}
