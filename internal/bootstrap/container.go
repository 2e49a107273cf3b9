package bootstrap

import (
	"log"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"catalog-assistant-be/internal/config"
	"catalog-assistant-be/internal/controller"
	"catalog-assistant-be/internal/handler"
	"catalog-assistant-be/internal/pkg/logger"
	"catalog-assistant-be/internal/repository/memory"
	"catalog-assistant-be/internal/service"
	"catalog-assistant-be/internal/websocket"
	"catalog-assistant-be/pkg/gateway"
	"catalog-assistant-be/pkg/llm/factory"
	"catalog-assistant-be/pkg/ranking"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	SearchController    controller.ISearchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	ChatHandler  *handler.ChatHandler
	WebSocketHub *websocket.Hub
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

	// 3. External gateways
	catalogGateway := gateway.NewHTTPClient(
		cfg.Gateway.BaseURL,
		time.Duration(cfg.Gateway.TimeoutSeconds)*time.Second,
	)

	llmProvider, err := factory.NewProvider(
		cfg.Assistant.LLMProvider,
		cfg.Assistant.LLMModel,
		cfg.Assistant.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Assistant.LLMProvider, cfg.Assistant.LLMModel)

	// Initialize In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Keys.QueryTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.Keys.QueryTopic, sysLogger)

	assistantService := service.NewAssistantService(
		sessionRepo,
		catalogGateway,
		llmProvider,
		sysLogger,
		time.Duration(cfg.Assistant.CallTimeoutSeconds)*time.Second,
		cfg.Assistant.HistoryCap,
	)

	searchService := service.NewSearchService(
		catalogGateway,
		ranking.NewEngine(),
		publisherService,
		cfg.Search.MinQueryLength,
		sysLogger,
	)

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/chat_socket.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	chatHandler := handler.NewChatHandler(wsHub, assistantService, wsLogger)

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		SearchController:    controller.NewSearchController(searchService, consumerService),
		ConsumerService:     consumerService,
		ChatHandler:         chatHandler,
		WebSocketHub:        wsHub,
	}
}
