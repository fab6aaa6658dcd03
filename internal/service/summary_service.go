package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/pkg/lang"
	"securebank-assist-be/pkg/llm"
)

const (
	summaryMaxTokens   = 200
	summaryTemperature = 0.3
	summaryTimeout     = 30 * time.Second
	minSummaryMsgLen   = 5
	pdfPreviewLen      = 500
)

type ISummaryService interface {
	Generate(ctx context.Context, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error)
}

type summaryService struct {
	provider   llm.LLMProvider
	translator *lang.Translator
	logger     logger.ILogger
}

func NewSummaryService(provider llm.LLMProvider, translator *lang.Translator, log logger.ILogger) ISummaryService {
	return &summaryService{
		provider:   provider,
		translator: translator,
		logger:     log,
	}
}

type normalizedMessage struct {
	role     string
	english  string
	language lang.Language
}

// Generate builds the multi-section agent handoff summary. Chat turns are
// translated to English first; when the external model is unavailable a
// deterministic summary is assembled from the translated turns.
func (s *summaryService) Generate(ctx context.Context, req *dto.GenerateSummaryRequest) (*dto.GenerateSummaryResponse, error) {
	messages, detected := s.normalizeHistory(ctx, req.ChatHistory)

	summary := s.generateExternal(ctx, req, messages, detected)
	if summary == "" {
		summary = fallbackSummary(req, messages, detected)
	}

	return &dto.GenerateSummaryResponse{
		Summary:           summary,
		DetectedLanguages: detected,
		MessageCount:      len(messages),
		HasPdfContent:     req.PdfContent != "",
		GeneratedAt:       time.Now().UnixMilli(),
	}, nil
}

func (s *summaryService) normalizeHistory(ctx context.Context, history []dto.SummaryMessageDTO) ([]normalizedMessage, []string) {
	messages := make([]normalizedMessage, 0, len(history))
	seen := make(map[lang.Language]bool)

	for _, msg := range history {
		content := strings.TrimSpace(msg.Content)
		if len(content) < minSummaryMsgLen {
			continue
		}

		detected := lang.Detect(content)
		seen[detected] = true

		english := content
		if detected != lang.English {
			english = s.translator.Translate(ctx, content, detected, lang.English)
		}

		role := "Assistant"
		if msg.IsUser {
			role = "Customer"
		}
		messages = append(messages, normalizedMessage{role: role, english: english, language: detected})
	}

	detected := make([]string, 0, len(seen))
	for code := range seen {
		detected = append(detected, string(code))
	}
	sort.Strings(detected)
	return messages, detected
}

func (s *summaryService) generateExternal(ctx context.Context, req *dto.GenerateSummaryRequest, messages []normalizedMessage, detected []string) string {
	if s.provider == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, summaryTimeout)
	defer cancel()

	raw, err := s.provider.Generate(ctx, buildSummaryPrompt(req, messages, detected),
		llm.WithMaxTokens(summaryMaxTokens),
		llm.WithTemperature(summaryTemperature),
	)
	if err != nil {
		s.logger.Warn("Summary", "External summary generation failed", map[string]interface{}{
			"request_id": req.RequestId,
			"error":      err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(raw)
}

func buildSummaryPrompt(req *dto.GenerateSummaryRequest, messages []normalizedMessage, detected []string) string {
	var conversation strings.Builder
	for _, msg := range messages {
		fmt.Fprintf(&conversation, "[%s]: %s\n", msg.role, msg.english)
	}

	pdfSection := ""
	if req.PdfContent != "" {
		preview := req.PdfContent
		if len(preview) > pdfPreviewLen {
			preview = preview[:pdfPreviewLen] + "..."
		}
		filename := req.PdfFilename
		if filename == "" {
			filename = "Unknown"
		}
		pdfSection = fmt.Sprintf("\n\n=== PDF DOCUMENT ANALYSIS ===\nFilename: %s\nContent Preview: %s\nDocument Length: %d characters",
			filename, preview, len(req.PdfContent))
	}

	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}
	reason := req.EscalationReason
	if reason == "" {
		reason = "Auto-escalated"
	}

	return fmt.Sprintf(`Create a comprehensive customer service summary in English based on this multilingual conversation:

CUSTOMER INFORMATION:
- Name: %s
- Email: %s
- ID: %s
- Priority: %s
- Escalation Reason: %s

DETECTED LANGUAGES: %s

CONVERSATION (Translated to English):
%s%s

Provide a structured summary with these sections:

=== EXECUTIVE SUMMARY ===
[Brief overview of the interaction]

=== CUSTOMER REQUEST ===
[What the customer wanted/needed]

=== KEY INFORMATION ===
[Important details, account numbers, names, etc.]

=== CONVERSATION ANALYSIS ===
[Summary of the dialogue and customer sentiment]

=== PDF DOCUMENT DETAILS ===
[If PDF was uploaded, summarize its contents and relevance]

=== RESOLUTION STATUS ===
[Current status and next steps]

=== ESCALATION ANALYSIS ===
[Why this was escalated and recommended actions]

Keep each section concise but comprehensive.`,
		orUnknown(req.CustomerInfo.Name),
		orUnknown(req.CustomerInfo.Email),
		orUnknown(req.CustomerInfo.Id),
		priority,
		reason,
		strings.Join(detected, ", "),
		conversation.String(),
		pdfSection,
	)
}

func fallbackSummary(req *dto.GenerateSummaryRequest, messages []normalizedMessage, detected []string) string {
	var firstRequest string
	customerCount, assistantCount := 0, 0
	for _, msg := range messages {
		if msg.role == "Customer" {
			if firstRequest == "" {
				firstRequest = msg.english
			}
			customerCount++
		} else {
			assistantCount++
		}
	}
	if firstRequest == "" {
		firstRequest = "No clear request identified"
	}

	pdfLine := "No"
	if req.PdfContent != "" {
		filename := req.PdfFilename
		if filename == "" {
			filename = "Unknown filename"
		}
		pdfLine = "Yes - " + filename
	}

	priority := req.Priority
	if priority == "" {
		priority = "Medium"
	}
	reason := req.EscalationReason
	if reason == "" {
		reason = "Auto-escalated"
	}

	return fmt.Sprintf(`=== EXECUTIVE SUMMARY ===
Multilingual customer service interaction with %d messages.
Languages detected: %s

=== CUSTOMER REQUEST ===
%s

=== KEY INFORMATION ===
Customer: %s
Priority: %s
PDF Document: %s

=== CONVERSATION ANALYSIS ===
Total messages: %d
Customer messages: %d
Assistant responses: %d

=== RESOLUTION STATUS ===
Escalated to human agent for further assistance.

=== ESCALATION ANALYSIS ===
Reason: %s
Recommended action: Human review required.`,
		len(messages),
		strings.Join(detected, ", "),
		firstRequest,
		orUnknown(req.CustomerInfo.Name),
		priority,
		pdfLine,
		len(messages),
		customerCount,
		assistantCount,
		reason,
	)
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
