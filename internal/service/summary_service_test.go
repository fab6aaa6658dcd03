package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"securebank-assist-be/internal/dto"
	"securebank-assist-be/pkg/lang"
	"securebank-assist-be/pkg/llm"
)

type failingProvider struct{}

func (failingProvider) Chat(ctx context.Context, messages []llm.Message, opts ...llm.Option) (string, error) {
	return "", errors.New("unreachable")
}

func (failingProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return "", errors.New("unreachable")
}

func summaryRequest() *dto.GenerateSummaryRequest {
	return &dto.GenerateSummaryRequest{
		RequestId: "req-1",
		ChatHistory: []dto.SummaryMessageDTO{
			{Content: "I want to dispute a charge on my card", IsUser: true},
			{Content: "I can help with that, could you share the transaction date?", IsUser: false},
			{Content: "ok", IsUser: true},
		},
		CustomerInfo:     dto.CustomerInfoDTO{Id: "c1", Name: "Alice Smith", Email: "alice@example.com"},
		EscalationReason: "Immediate human intervention required",
		Priority:         "high",
	}
}

func TestGenerateUsesExternalSummary(t *testing.T) {
	provider := &cannedProvider{reply: "=== EXECUTIVE SUMMARY ===\nCustomer disputes a card charge."}
	svc := NewSummaryService(provider, lang.NewTranslator(nil, lang.NewDictionary()), nopLogger{})

	res, err := svc.Generate(context.Background(), summaryRequest())
	require.NoError(t, err)

	assert.Equal(t, provider.reply, res.Summary)
	// The two-character turn is skipped.
	assert.Equal(t, 2, res.MessageCount)
	assert.Contains(t, res.DetectedLanguages, "en")
	assert.False(t, res.HasPdfContent)
	assert.NotZero(t, res.GeneratedAt)
}

func TestGenerateFallbackSummary(t *testing.T) {
	svc := NewSummaryService(failingProvider{}, lang.NewTranslator(nil, lang.NewDictionary()), nopLogger{})

	res, err := svc.Generate(context.Background(), summaryRequest())
	require.NoError(t, err)

	assert.Contains(t, res.Summary, "=== EXECUTIVE SUMMARY ===")
	assert.Contains(t, res.Summary, "I want to dispute a charge on my card")
	assert.Contains(t, res.Summary, "Alice Smith")
	assert.Contains(t, res.Summary, "Reason: Immediate human intervention required")
}

func TestGenerateNilProviderFallsBack(t *testing.T) {
	svc := NewSummaryService(nil, lang.NewTranslator(nil, lang.NewDictionary()), nopLogger{})

	res, err := svc.Generate(context.Background(), summaryRequest())
	require.NoError(t, err)

	assert.Contains(t, res.Summary, "=== RESOLUTION STATUS ===")
}

func TestGenerateIncludesPdfSection(t *testing.T) {
	provider := &cannedProvider{reply: "summary text"}
	svc := NewSummaryService(provider, lang.NewTranslator(nil, lang.NewDictionary()), nopLogger{})

	req := summaryRequest()
	req.PdfContent = "Account Number: 12345678"
	req.PdfFilename = "statement.pdf"

	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, res.HasPdfContent)
}

func TestGenerateTranslatesForeignTurns(t *testing.T) {
	svc := NewSummaryService(nil, lang.NewTranslator(nil, lang.NewDictionary()), nopLogger{})

	req := &dto.GenerateSummaryRequest{
		RequestId: "req-2",
		ChatHistory: []dto.SummaryMessageDTO{
			{Content: "¿dónde está mi cuenta?", IsUser: true},
		},
		CustomerInfo: dto.CustomerInfoDTO{Name: "Bob"},
	}

	res, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Contains(t, res.DetectedLanguages, "es")
	assert.Equal(t, 1, res.MessageCount)
}
