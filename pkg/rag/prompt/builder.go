package prompt

import (
	"fmt"
	"strings"

	"securebank-assist-be/pkg/retrieval"
)

// AnswerBuilder assembles the grounded prompt sent to the language model.
type AnswerBuilder struct {
	query   string
	matches []retrieval.Match
}

// NewAnswerBuilder creates a new answer prompt builder
func NewAnswerBuilder(query string, matches []retrieval.Match) *AnswerBuilder {
	return &AnswerBuilder{
		query:   query,
		matches: matches,
	}
}

// Build creates the prompt: task framing, the user question, the ranked
// knowledge sources, and the response instructions.
func (b *AnswerBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeQuestion(&prompt)
	b.writeSources(&prompt)
	b.writeInstructions(&prompt)

	return prompt.String()
}

func (b *AnswerBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("You are a helpful banking assistant. Answer the user's question using the provided knowledge sources.\n\n")
}

func (b *AnswerBuilder) writeQuestion(prompt *strings.Builder) {
	prompt.WriteString("USER QUESTION: ")
	prompt.WriteString(b.query)
	prompt.WriteString("\n\n")
}

func (b *AnswerBuilder) writeSources(prompt *strings.Builder) {
	prompt.WriteString("TOP 10 RELEVANT KNOWLEDGE SOURCES:\n")
	for _, m := range b.matches {
		fmt.Fprintf(prompt, "%d. Q: %s\nA: %s\n\n", m.Rank, m.Entry.Question, m.Entry.Answer)
	}
}

func (b *AnswerBuilder) writeInstructions(prompt *strings.Builder) {
	prompt.WriteString("INSTRUCTIONS:\n")
	prompt.WriteString("- Use the knowledge sources to provide accurate information\n")
	prompt.WriteString("- Provide complete, step-by-step instructions when appropriate\n")
	prompt.WriteString("- Be conversational and helpful\n\n")
	prompt.WriteString("Response:")
}
