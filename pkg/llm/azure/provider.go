package azure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"securebank-assist-be/pkg/llm"
)

const apiVersion = "2024-02-15-preview"

// AzureProvider talks to an Azure OpenAI chat-completions deployment.
type AzureProvider struct {
	Endpoint   string // e.g. https://myresource.openai.azure.com/
	APIKey     string
	Deployment string
	Client     *http.Client
}

var _ llm.LLMProvider = &AzureProvider{}

func NewAzureProvider(endpoint, apiKey, deployment string) *AzureProvider {
	return &AzureProvider{
		Endpoint:   endpoint,
		APIKey:     apiKey,
		Deployment: deployment,
		Client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// --- Request/Response structs (internal to this package) ---

type azureMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type azureChatRequest struct {
	Messages    []azureMessage `json:"messages"`
	MaxTokens   int            `json:"max_tokens,omitempty"`
	Temperature float64        `json:"temperature,omitempty"`
}

type azureChatResponse struct {
	Choices []struct {
		Message azureMessage `json:"message"`
	} `json:"choices"`
}

func (a *AzureProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if a.APIKey == "" || a.Endpoint == "" || a.Deployment == "" {
		return "", fmt.Errorf("azure provider not configured")
	}

	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]azureMessage, len(history))
	for i, msg := range history {
		role := msg.Role
		if role == "model" {
			role = "assistant"
		}
		messages[i] = azureMessage{Role: role, Content: msg.Content}
	}

	reqPayload := azureChatRequest{
		Messages:    messages,
		Temperature: options.Temperature,
	}
	if options.MaxTokens > 0 {
		reqPayload.MaxTokens = options.MaxTokens
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	deployment := a.Deployment
	if options.Model != "" {
		deployment = options.Model
	}
	url := fmt.Sprintf("%sopenai/deployments/%s/chat/completions?api-version=%s",
		a.Endpoint, deployment, apiVersion)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", a.APIKey)

	resp, err := a.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("azure request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("azure error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var azureResp azureChatResponse
	if err := json.Unmarshal(bodyBytes, &azureResp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(azureResp.Choices) == 0 {
		return "", fmt.Errorf("azure response contains no choices")
	}

	return strings.TrimSpace(azureResp.Choices[0].Message.Content), nil
}

func (a *AzureProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return a.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}
