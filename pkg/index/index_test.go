package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	records := []map[string]interface{}{
		{"question": "How do I reset my password?", "answer": "Go to settings > security > reset password."},
		{"query": "How can I check my balance?", "response": "Open the mobile app and tap the accounts tab."},
		{"text": "short", "answer": "This answer is long enough to pass the filter."},
		{"question": "Is this a valid question?", "answer": "too short"},
		{"question": "", "answer": ""},
		{"question": "What are the &quot;wire transfer&quot; fees?", "ans": "Domestic wire transfers cost 25 dollars per transaction."},
	}

	entries, skipped := ParseRecords(records)

	require.Len(t, entries, 3)
	assert.Equal(t, 3, skipped)

	// Field-name precedence and entity decoding.
	assert.Equal(t, "How can I check my balance?", entries[1].Question)
	assert.Equal(t, `What are the "wire transfer" fees?`, entries[2].Question)

	// Ids follow insertion order of surviving entries.
	for i, entry := range entries {
		assert.Equal(t, i, entry.Id)
	}
}

func TestBuildEmptyCorpus(t *testing.T) {
	_, err := Build(nil)
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestSimilaritiesSingleEntry(t *testing.T) {
	entries, _ := ParseRecords([]map[string]interface{}{
		{"question": "How do I reset my password?", "answer": "Go to settings > security > reset password."},
	})
	ci, err := Build(entries)
	require.NoError(t, err)

	scores := ci.Similarities("I forgot my password")
	require.Len(t, scores, 1)
	assert.Greater(t, scores[0], 0.15, "shared banking term should score above threshold")
	assert.LessOrEqual(t, scores[0], 1.0)

	// Out-of-vocabulary queries contribute zero weight.
	scores = ci.Similarities("completely unrelated gardening topic")
	assert.Zero(t, scores[0])
}

func TestVectorizerStopWordsAndNgrams(t *testing.T) {
	v := newVectorizer(0)
	v.fit([]string{"reset password", "transfer money abroad"})

	terms := analyze("How do I reset my password?")
	assert.ElementsMatch(t, []string{"reset", "password", "reset password"}, terms)
}

func TestVectorizerVocabularyCap(t *testing.T) {
	v := newVectorizer(2)
	v.fit([]string{"alpha beta", "alpha gamma", "alpha beta"})
	assert.Len(t, v.vocabulary, 2)
	// "alpha" appears in every document, so it survives the cap.
	_, ok := v.vocabulary["alpha"]
	assert.True(t, ok)
}
