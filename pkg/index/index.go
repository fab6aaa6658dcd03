package index

import "errors"

// ErrEmptyCorpus is returned by Build when no valid entries survive
// filtering. Callers degrade to empty retrieval rather than failing.
var ErrEmptyCorpus = errors.New("corpus contains no valid entries")

// CorpusIndex owns the entry sequence, the fitted vector space and the
// corpus matrix. Built once per process and shared read-only by every
// query afterwards; entry order is stable and is the position referenced
// by retrieval.
type CorpusIndex struct {
	entries    []CorpusEntry
	vectorizer *vectorizer
	matrix     []sparseVector
}

// Build fits the vector space over the entry questions. Answers are
// payload, not indexed.
func Build(entries []CorpusEntry) (*CorpusIndex, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCorpus
	}

	questions := make([]string, len(entries))
	for i, entry := range entries {
		questions[i] = entry.Question
	}

	v := newVectorizer(defaultMaxFeatures)
	matrix := v.fit(questions)

	return &CorpusIndex{
		entries:    entries,
		vectorizer: v,
		matrix:     matrix,
	}, nil
}

// Len reports the number of indexed entries.
func (ci *CorpusIndex) Len() int {
	return len(ci.entries)
}

// Entry returns the entry at corpus position i.
func (ci *CorpusIndex) Entry(i int) CorpusEntry {
	return ci.entries[i]
}

// Similarities projects the query into the fitted space and returns the
// cosine similarity against every corpus vector, in entry order.
func (ci *CorpusIndex) Similarities(query string) []float64 {
	queryVec := ci.vectorizer.transform(query)
	scores := make([]float64, len(ci.matrix))
	for i, docVec := range ci.matrix {
		scores[i] = queryVec.dot(docVec)
	}
	return scores
}
