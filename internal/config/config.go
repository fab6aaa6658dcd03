package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	Paths PathsConfig
	Llm   LlmConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	RelayLogFilePath   string
	CorsAllowedOrigins string
}

type PathsConfig struct {
	CorpusFile          string
	SessionsDir         string
	DocumentsDir        string
	ServiceRequestsFile string
}

type LlmConfig struct {
	Provider        string // "azure" or "ollama"
	AzureEndpoint   string
	AzureAPIKey     string
	AzureDeployment string
	OllamaBaseURL   string
	OllamaModel     string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8093"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			RelayLogFilePath:   getEnv("RELAY_LOG_FILE_PATH", "relay.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:4200,http://localhost:5173"),
		},
		Paths: PathsConfig{
			CorpusFile:          getEnv("CORPUS_FILE", "data/banking_corpus.json"),
			SessionsDir:         getEnv("SESSIONS_DIR", "sessions"),
			DocumentsDir:        getEnv("DOCUMENTS_DIR", "sessions"),
			ServiceRequestsFile: getEnv("SERVICE_REQUESTS_FILE", "service_requests.jsonl"),
		},
		Llm: LlmConfig{
			Provider:        getEnv("LLM_PROVIDER", "azure"),
			AzureEndpoint:   getEnv("AZURE_OPENAI_ENDPOINT", ""),
			AzureAPIKey:     getEnv("AZURE_OPENAI_API_KEY", ""),
			AzureDeployment: getEnv("AZURE_OPENAI_DEPLOYMENT_NAME", "gpt4o"),
			OllamaBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:     getEnv("OLLAMA_MODEL", "llama3"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
