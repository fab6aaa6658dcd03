package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"securebank-assist-be/pkg/index"
	"securebank-assist-be/pkg/retrieval"
)

func TestBuildIncludesQuestionAndRankedSources(t *testing.T) {
	matches := []retrieval.Match{
		{Rank: 1, Entry: index.CorpusEntry{Question: "How do I reset my password?", Answer: "Use the forgot password link on the login page."}},
		{Rank: 2, Entry: index.CorpusEntry{Question: "How do I unlock my account?", Answer: "Contact support with your account number to unlock it."}},
	}

	out := NewAnswerBuilder("I forgot my password", matches).Build()

	assert.Contains(t, out, "USER QUESTION: I forgot my password")
	assert.Contains(t, out, "1. Q: How do I reset my password?")
	assert.Contains(t, out, "A: Use the forgot password link on the login page.")
	assert.Contains(t, out, "2. Q: How do I unlock my account?")
	assert.Contains(t, out, "INSTRUCTIONS:")
	assert.Contains(t, out, "banking assistant")
}

func TestBuildNoSources(t *testing.T) {
	out := NewAnswerBuilder("hello", nil).Build()

	assert.Contains(t, out, "TOP 10 RELEVANT KNOWLEDGE SOURCES:")
	assert.NotContains(t, out, "1. Q:")
}
