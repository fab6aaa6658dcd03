package service

import (
	"context"
	"strings"
	"time"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/document"
	"securebank-assist-be/pkg/escalation"
	"securebank-assist-be/pkg/lang"
	"securebank-assist-be/pkg/rag/response"
	"securebank-assist-be/pkg/retrieval"
	"securebank-assist-be/pkg/session"
	"securebank-assist-be/pkg/textutil"
)

const defaultSessionId = "default"

type IChatbotService interface {
	ProcessQuery(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatbotService struct {
	engine      *retrieval.Engine
	scorer      *escalation.Scorer
	sessions    *session.Store
	documents   *document.Repository
	translator  *lang.Translator
	synthesizer *response.Synthesizer
	logger      logger.ILogger
}

func NewChatbotService(
	engine *retrieval.Engine,
	scorer *escalation.Scorer,
	sessions *session.Store,
	documents *document.Repository,
	translator *lang.Translator,
	synthesizer *response.Synthesizer,
	log logger.ILogger,
) IChatbotService {
	return &chatbotService{
		engine:      engine,
		scorer:      scorer,
		sessions:    sessions,
		documents:   documents,
		translator:  translator,
		synthesizer: synthesizer,
		logger:      log,
	}
}

func (s *chatbotService) ProcessQuery(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	start := time.Now()

	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = defaultSessionId
	}

	// A session with an uploaded document answers from the document.
	if res := s.answerFromDocument(sessionId, req.Query, start); res != nil {
		return res, nil
	}

	if strings.TrimSpace(req.Query) == "" {
		return &dto.ChatResponse{
			Response:        response.GreetingMessage,
			ConfidenceLevel: "MEDIUM",
			ConfidenceScore: 0.5,
			ProcessingTime:  time.Since(start).Seconds(),
		}, nil
	}

	language := s.resolveLanguage(req)

	// Retrieval and generation run against the canonical English form.
	queryEn := req.Query
	if language != lang.English {
		queryEn = s.translator.Translate(ctx, req.Query, language, lang.English)
	}

	matches := s.engine.Retrieve(queryEn, retrieval.DefaultTopK, retrieval.DefaultThreshold)
	level, _ := s.scorer.Score(req.Query, string(language))

	if len(matches) == 0 {
		answer := response.NoResultsMessage
		if language != lang.English {
			answer = s.translator.Translate(ctx, answer, lang.English, language)
		}
		return &dto.ChatResponse{
			Response:        answer,
			Escalated:       level == escalation.LevelHigh,
			ConfidenceLevel: strings.ToUpper(retrieval.RelevanceLow),
			ProcessingTime:  time.Since(start).Seconds(),
		}, nil
	}

	answer, llmUsed := s.synthesizer.Synthesize(ctx, queryEn, matches)
	if language != lang.English {
		answer = s.translator.Translate(ctx, answer, lang.English, language)
	}

	now := time.Now().Unix()
	if err := s.sessions.Append(sessionId,
		session.Message{Role: session.RoleUser, Content: req.Query, Timestamp: now},
		session.Message{Role: session.RoleAssistant, Content: answer, Timestamp: now},
	); err != nil {
		s.logger.Warn("Chatbot", "Failed to persist session turn", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	top := matches[0]
	return &dto.ChatResponse{
		Response:        answer,
		Escalated:       level == escalation.LevelHigh,
		ConfidenceLevel: strings.ToUpper(top.Relevance),
		ConfidenceScore: top.Score,
		ProcessingTime:  time.Since(start).Seconds(),
		LlmMode:         llmUsed,
		RagResults:      len(matches),
	}, nil
}

// answerFromDocument returns nil when the session has no document attached.
func (s *chatbotService) answerFromDocument(sessionId, query string, start time.Time) *dto.ChatResponse {
	state, ok, err := s.documents.Get(sessionId)
	if err != nil {
		s.logger.Warn("Chatbot", "Failed to read document state", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil
	}
	if !ok || state.ExtractedText == "" {
		return nil
	}

	answer, confidence := document.Query(query, state.ExtractedText, state.Filename)
	return &dto.ChatResponse{
		Response:        textutil.DecodeEntities(answer),
		ConfidenceLevel: "HIGH",
		ConfidenceScore: confidence,
		ProcessingTime:  time.Since(start).Seconds(),
		RagResults:      1,
	}
}

func (s *chatbotService) resolveLanguage(req *dto.ChatRequest) lang.Language {
	if req.Language == "" || req.Language == "auto" {
		return lang.Detect(req.Query)
	}
	requested := lang.Language(req.Language)
	if !lang.IsSupported(requested) {
		return lang.Detect(req.Query)
	}
	return requested
}
