package bootstrap

import (
	"log"

	"securebank-assist-be/internal/config"
	"securebank-assist-be/internal/controller"
	"securebank-assist-be/internal/pkg/logger"
	"securebank-assist-be/internal/service"
	"securebank-assist-be/internal/websocket"
	"securebank-assist-be/pkg/document"
	"securebank-assist-be/pkg/escalation"
	"securebank-assist-be/pkg/index"
	"securebank-assist-be/pkg/lang"
	"securebank-assist-be/pkg/llm/factory"
	"securebank-assist-be/pkg/rag/response"
	"securebank-assist-be/pkg/retrieval"
	"securebank-assist-be/pkg/servicerequest"
	"securebank-assist-be/pkg/session"
)

type Container struct {
	// Controllers
	ChatbotController        controller.IChatbotController
	SessionController        controller.ISessionController
	ServiceRequestController controller.IServiceRequestController
	DocumentController       controller.IDocumentController
	TranslationController    controller.ITranslationController

	// Live chat relay
	RelayBroker *websocket.Broker

	// Exposed for graceful shutdown
	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	relayLogger := logger.NewIsolatedLogger(cfg.App.RelayLogFilePath)

	// 2. Corpus Index
	// A missing or empty corpus degrades retrieval to no-result answers, it
	// never prevents startup.
	var engine *retrieval.Engine
	entries, skipped, err := index.LoadCorpusFile(cfg.Paths.CorpusFile)
	if err != nil {
		sysLogger.Warn("Bootstrap", "Corpus unavailable, retrieval disabled", map[string]interface{}{
			"path":  cfg.Paths.CorpusFile,
			"error": err.Error(),
		})
		engine = retrieval.NewEngine(nil)
	} else {
		idx, err := index.Build(entries)
		if err != nil {
			sysLogger.Warn("Bootstrap", "Corpus index build failed", map[string]interface{}{
				"error": err.Error(),
			})
			engine = retrieval.NewEngine(nil)
		} else {
			sysLogger.Info("Bootstrap", "Corpus index ready", map[string]interface{}{
				"entries": idx.Len(),
				"skipped": skipped,
			})
			engine = retrieval.NewEngine(idx)
		}
	}

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(cfg.Llm.Provider, factory.Settings{
		AzureEndpoint:   cfg.Llm.AzureEndpoint,
		AzureAPIKey:     cfg.Llm.AzureAPIKey,
		AzureDeployment: cfg.Llm.AzureDeployment,
		OllamaBaseURL:   cfg.Llm.OllamaBaseURL,
		OllamaModel:     cfg.Llm.OllamaModel,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s", cfg.Llm.Provider)

	// 4. Stores
	sessions, err := session.NewStore(cfg.Paths.SessionsDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize session store: %v", err)
	}
	documents, err := document.NewRepository(cfg.Paths.DocumentsDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize document repository: %v", err)
	}
	serviceRequests, err := servicerequest.NewStore(cfg.Paths.ServiceRequestsFile)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize service request store: %v", err)
	}

	// 5. Language & Generation
	dict := lang.NewDictionary()
	translator := lang.NewTranslator(llmProvider, dict)
	scorer := escalation.NewScorer(func(term, language string) (string, bool) {
		return dict.LookupTerm(term, lang.English, lang.Language(language))
	})
	synthesizer := response.NewSynthesizer(llmProvider, log.Default())

	// 6. Services
	chatbotService := service.NewChatbotService(engine, scorer, sessions, documents, translator, synthesizer, sysLogger)
	sessionService := service.NewSessionService(sessions, documents, sysLogger)
	serviceRequestService := service.NewServiceRequestService(serviceRequests, sysLogger)
	documentService := service.NewDocumentService(documents, sysLogger)
	translationService := service.NewTranslationService(translator, sysLogger)
	summaryService := service.NewSummaryService(llmProvider, translator, sysLogger)

	// 7. Relay Broker
	broker := websocket.NewBroker(relayLogger)

	return &Container{
		ChatbotController:        controller.NewChatbotController(chatbotService),
		SessionController:        controller.NewSessionController(sessionService),
		ServiceRequestController: controller.NewServiceRequestController(serviceRequestService),
		DocumentController:       controller.NewDocumentController(documentService),
		TranslationController:    controller.NewTranslationController(translationService, summaryService),
		RelayBroker:              broker,
		Logger:                   sysLogger,
	}
}
