package factory

import (
	"fmt"

	"securebank-assist-be/pkg/llm"
	"securebank-assist-be/pkg/llm/azure"
	"securebank-assist-be/pkg/llm/ollama"
)

// Settings carries the provider-specific credentials from config.
type Settings struct {
	AzureEndpoint   string
	AzureAPIKey     string
	AzureDeployment string
	OllamaBaseURL   string
	OllamaModel     string
}

// NewLLMProvider selects a completion backend by name.
func NewLLMProvider(providerType string, settings Settings) (llm.LLMProvider, error) {
	switch providerType {
	case "azure":
		return azure.NewAzureProvider(
			settings.AzureEndpoint,
			settings.AzureAPIKey,
			settings.AzureDeployment,
		), nil
	case "ollama":
		baseURL := settings.OllamaBaseURL
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, settings.OllamaModel), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
