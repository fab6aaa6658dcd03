package escalation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLevels(t *testing.T) {
	scorer := NewScorer(nil)

	tests := []struct {
		name  string
		query string
		want  Level
	}{
		{
			name:  "calm informational query",
			query: "How do I check my balance?",
			want:  LevelLow,
		},
		{
			name:  "single keyword",
			query: "I want to file a complaint",
			want:  LevelMedium,
		},
		{
			name:  "angry with manager demand",
			query: "I am SO ANGRY!!! I need a manager now???",
			want:  LevelHigh,
		},
		{
			name:  "fraud report",
			query: "my card was stolen and this is fraud",
			want:  LevelHigh,
		},
		{
			name:  "complex topic only",
			query: "I have a question about my mortgage",
			want:  LevelLow,
		},
		{
			name:  "two complex topics",
			query: "mortgage refinance options please",
			want:  LevelMedium,
		},
		{
			name:  "all caps short query",
			query: "HELP ME NOW",
			want:  LevelHigh, // "help me" keyword + caps ratio
		},
		{
			name:  "empty query",
			query: "",
			want:  LevelLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, reason := scorer.Score(tt.query, "en")
			assert.Equal(t, tt.want, level)
			assert.NotEmpty(t, reason)
		})
	}
}

func TestScoreIsPure(t *testing.T) {
	scorer := NewScorer(nil)
	query := "I am SO ANGRY!!! I need a manager now???"

	firstLevel, firstReason := scorer.Score(query, "en")
	for i := 0; i < 5; i++ {
		level, reason := scorer.Score(query, "en")
		assert.Equal(t, firstLevel, level)
		assert.Equal(t, firstReason, reason)
	}
}

func TestScoreBilingualDoubleCount(t *testing.T) {
	lookup := func(term, language string) (string, bool) {
		if language == "es" && term == "manager" {
			return "gerente", true
		}
		return "", false
	}
	scorer := NewScorer(lookup)

	// Both the translated and the literal form appear, so the keyword
	// counts twice and the query reaches high on its own.
	level, _ := scorer.Score("necesito un gerente, I need a manager", "es")
	assert.Equal(t, LevelHigh, level)

	// Literal only: single hit, medium.
	level, _ = scorer.Score("I need a manager", "es")
	assert.Equal(t, LevelMedium, level)
}

func TestScoreReasonTexts(t *testing.T) {
	scorer := NewScorer(nil)

	_, reason := scorer.Score("my card was stolen and this is fraud", "en")
	assert.Equal(t, ReasonHigh, reason)

	_, reason = scorer.Score("I want to file a complaint", "en")
	assert.Equal(t, ReasonMedium, reason)

	_, reason = scorer.Score("hello", "en")
	assert.Equal(t, ReasonLow, reason)
}
