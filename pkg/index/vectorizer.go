package index

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	defaultMaxFeatures = 3000
	ngramMin           = 1
	ngramMax           = 3
)

// Tokens are runs of two or more letters/digits, lower-cased.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]{2,}`)

// sparseVector maps vocabulary index -> weight. All vectors produced by
// the vectorizer are L2-normalized, so cosine similarity reduces to a
// sparse dot product.
type sparseVector map[int]float64

func (a sparseVector) dot(b sparseVector) float64 {
	// Iterate the smaller operand.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, w := range a {
		if bw, ok := b[i]; ok {
			sum += w * bw
		}
	}
	return sum
}

// vectorizer is a term-frequency / inverse-document-frequency vector
// space over word n-grams (1..3), capped at maxFeatures terms. It is
// fitted once over the corpus questions; later queries only project
// into the fitted space, so out-of-vocabulary terms contribute nothing.
type vectorizer struct {
	maxFeatures int
	vocabulary  map[string]int
	idf         []float64
}

func newVectorizer(maxFeatures int) *vectorizer {
	if maxFeatures <= 0 {
		maxFeatures = defaultMaxFeatures
	}
	return &vectorizer{maxFeatures: maxFeatures}
}

// analyze extracts stop-word-filtered word n-grams from text.
func analyze(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	words := raw[:0]
	for _, tok := range raw {
		if !isStopWord(tok) {
			words = append(words, tok)
		}
	}

	var terms []string
	for n := ngramMin; n <= ngramMax; n++ {
		for i := 0; i+n <= len(words); i++ {
			terms = append(terms, strings.Join(words[i:i+n], " "))
		}
	}
	return terms
}

// fit builds the vocabulary and idf weights from the documents and
// returns the fitted document matrix.
func (v *vectorizer) fit(docs []string) []sparseVector {
	analyzed := make([][]string, len(docs))
	termCounts := map[string]int{}
	docFreq := map[string]int{}

	for i, doc := range docs {
		terms := analyze(doc)
		analyzed[i] = terms
		seen := map[string]struct{}{}
		for _, term := range terms {
			termCounts[term]++
			if _, ok := seen[term]; !ok {
				seen[term] = struct{}{}
				docFreq[term]++
			}
		}
	}

	// Keep the maxFeatures most frequent terms; ties break
	// alphabetically so the vocabulary is deterministic.
	candidates := make([]string, 0, len(termCounts))
	for term := range termCounts {
		candidates = append(candidates, term)
	}
	sort.Slice(candidates, func(i, j int) bool {
		if termCounts[candidates[i]] != termCounts[candidates[j]] {
			return termCounts[candidates[i]] > termCounts[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	if len(candidates) > v.maxFeatures {
		candidates = candidates[:v.maxFeatures]
	}
	sort.Strings(candidates)

	v.vocabulary = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	n := float64(len(docs))
	for i, term := range candidates {
		v.vocabulary[term] = i
		// Smoothed idf: ln((1+n)/(1+df)) + 1.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	matrix := make([]sparseVector, len(docs))
	for i, terms := range analyzed {
		matrix[i] = v.project(terms)
	}
	return matrix
}

// transform projects arbitrary text into the fitted space.
func (v *vectorizer) transform(text string) sparseVector {
	return v.project(analyze(text))
}

func (v *vectorizer) project(terms []string) sparseVector {
	vec := sparseVector{}
	for _, term := range terms {
		if idx, ok := v.vocabulary[term]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for idx := range vec {
		vec[idx] *= v.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}
