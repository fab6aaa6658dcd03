package retrieval

import (
	"sort"
	"strings"

	"securebank-assist-be/pkg/index"
)

const (
	// DefaultTopK bounds the number of matches returned per query.
	DefaultTopK = 10
	// DefaultThreshold is the minimum cosine similarity a match must
	// reach to be returned at all.
	DefaultThreshold = 0.15
)

// Relevance buckets derived from the match score.
const (
	RelevanceHigh   = "high"
	RelevanceMedium = "medium"
	RelevanceLow    = "low"
)

// bankingExpansions biases short queries toward richer domain
// vocabulary before vectorization. The expansion is appended to the
// working copy of the query only; the persisted query is untouched.
var bankingExpansions = map[string]string{
	"password": "password reset change login security",
	"account":  "account balance banking services",
	"transfer": "transfer money send wire payment",
	"card":     "card credit debit activate payment",
	"loan":     "loan mortgage credit application",
	"atm":      "atm cash withdraw deposit machine",
}

// expansionOrder keeps the appended phrases deterministic regardless of
// map iteration order.
var expansionOrder = []string{"password", "account", "transfer", "card", "loan", "atm"}

// Match is one scored retrieval result. Produced per query, never
// persisted.
type Match struct {
	Rank      int               `json:"rank"`
	Entry     index.CorpusEntry `json:"entry"`
	Score     float64           `json:"score"`
	Relevance string            `json:"relevance"`
}

// Engine ranks corpus entries against queries. Stateless apart from the
// shared read-only index, so a single Engine serves all conversations.
type Engine struct {
	idx *index.CorpusIndex
}

// NewEngine wraps an index. A nil index is accepted and degrades every
// retrieval to an empty result.
func NewEngine(idx *index.CorpusIndex) *Engine {
	return &Engine{idx: idx}
}

// Retrieve returns at most k matches scored at or above threshold,
// sorted by descending score with corpus insertion order breaking ties.
// An empty result means "no knowledge found", not an error.
func (e *Engine) Retrieve(query string, k int, threshold float64) []Match {
	if e.idx == nil || e.idx.Len() == 0 {
		return nil
	}
	if k <= 0 {
		k = DefaultTopK
	}

	scores := e.idx.Similarities(ExpandQuery(query))

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	matches := make([]Match, 0, k)
	for _, idx := range order {
		if len(matches) == k {
			break
		}
		if scores[idx] < threshold {
			break
		}
		matches = append(matches, Match{
			Rank:      len(matches) + 1,
			Entry:     e.idx.Entry(idx),
			Score:     scores[idx],
			Relevance: BucketFor(scores[idx]),
		})
	}
	return matches
}

// ExpandQuery lower-cases the query and appends the canned expansion
// phrase for every banking trigger term it contains.
func ExpandQuery(query string) string {
	expanded := strings.ToLower(query)
	for _, term := range expansionOrder {
		if strings.Contains(expanded, term) {
			expanded += " " + bankingExpansions[term]
		}
	}
	return expanded
}

// BucketFor classifies a similarity score.
func BucketFor(score float64) string {
	switch {
	case score > 0.5:
		return RelevanceHigh
	case score > 0.3:
		return RelevanceMedium
	default:
		return RelevanceLow
	}
}
