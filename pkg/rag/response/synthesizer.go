package response

import (
	"context"
	"log"
	"strings"
	"time"

	"securebank-assist-be/pkg/llm"
	"securebank-assist-be/pkg/rag/prompt"
	"securebank-assist-be/pkg/retrieval"
	"securebank-assist-be/pkg/textutil"
)

const (
	synthesisTimeout    = 30 * time.Second
	synthesisMaxTokens  = 500
	synthesisTemp       = 0.7
	minUsableAnswerLen  = 10
	knowledgeBasePrefix = "Based on our knowledge base: "
)

// GreetingMessage is returned when the user sends an empty query.
const GreetingMessage = "Hello! How can I help you with your banking needs today?"

// NoResultsMessage is returned when retrieval finds nothing above threshold.
const NoResultsMessage = "I'm sorry, I couldn't find relevant information for your query."

// Synthesizer turns retrieval matches into a final answer, preferring the
// external model and falling back to the top match when it is unavailable
// or returns something too short to be useful.
type Synthesizer struct {
	provider llm.LLMProvider
	logger   *log.Logger
}

// NewSynthesizer creates a new answer synthesizer. The provider may be nil,
// in which case every answer comes from the knowledge base directly.
func NewSynthesizer(provider llm.LLMProvider, logger *log.Logger) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		logger:   logger,
	}
}

// Synthesize produces the answer text for a query given its ranked matches.
// The second return value reports whether the external model produced the
// answer.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, matches []retrieval.Match) (string, bool) {
	if strings.TrimSpace(query) == "" {
		return GreetingMessage, false
	}
	if len(matches) == 0 {
		return NoResultsMessage, false
	}

	promptText := prompt.NewAnswerBuilder(query, matches).Build()

	if answer, ok := s.generate(ctx, promptText); ok {
		return answer, true
	}

	fallback := knowledgeBasePrefix + matches[0].Entry.Answer
	return textutil.DecodeEntities(fallback), false
}

func (s *Synthesizer) generate(ctx context.Context, promptText string) (string, bool) {
	if s.provider == nil {
		return "", false
	}

	ctx, cancel := context.WithTimeout(ctx, synthesisTimeout)
	defer cancel()

	raw, err := s.provider.Generate(ctx, promptText,
		llm.WithMaxTokens(synthesisMaxTokens),
		llm.WithTemperature(synthesisTemp),
	)
	if err != nil {
		if s.logger != nil {
			s.logger.Printf("[SYNTHESIS] external model failed: %v", err)
		}
		return "", false
	}

	answer := strings.TrimSpace(raw)
	if len(answer) <= minUsableAnswerLen {
		return "", false
	}
	return textutil.DecodeEntities(answer), true
}
