package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"business-chat-be/internal/config"
	"business-chat-be/internal/controller"
	"business-chat-be/internal/pkg/logger"
	"business-chat-be/internal/repository/memory"
	"business-chat-be/internal/service"
	"business-chat-be/pkg/embedding"
	"business-chat-be/pkg/llm/factory"
)

type Container struct {
	// Controllers
	ChatController controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Collaborators
	// Initialize Embedding Provider based on Config
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// Initialize LLM Provider based on Config
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Rag.SessionTTLHours) * time.Hour)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.AuditTopic, pubSub)

	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.AuditTopic, auditLogger)

	documentService := service.NewDocumentService(
		sessionRepo,
		embeddingProvider,
		publisherService,
		cfg.Rag,
		sysLogger,
	)
	chatService := service.NewChatService(
		sessionRepo,
		embeddingProvider,
		llmProvider,
		publisherService,
		cfg.Rag,
		sysLogger,
	)

	// 5. Controllers
	chatController := controller.NewChatController(documentService, chatService)

	return &Container{
		ChatController:  chatController,
		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
