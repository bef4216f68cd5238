package bootstrap

import (
	"log"
	"time"

	"campusflow-be/internal/config"
	"campusflow-be/internal/controller"
	"campusflow-be/internal/pkg/logger"
	"campusflow-be/internal/repository/unitofwork"
	"campusflow-be/internal/service"
	"campusflow-be/pkg/chunker"
	"campusflow-be/pkg/embedding"
	"campusflow-be/pkg/llm/gemini"
	"campusflow-be/pkg/rag/classify"

	pktNats "campusflow-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	EventController     controller.IEventController
	DocumentController  controller.IDocumentController
	IndoorMapController controller.IIndoorMapController
	AssistantController controller.IAssistantController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for periodic reprocess sweeps
	DocumentService service.IDocumentService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Chunker configuration is validated up front: a bad window/overlap
	// pair must stop the process, not corrupt every ingested document.
	splitterCfg := chunker.Config{
		ChunkSizeTokens: cfg.Ingestion.ChunkSizeTokens,
		OverlapTokens:   cfg.Ingestion.OverlapTokens,
	}
	if err := splitterCfg.Validate(); err != nil {
		log.Fatalf("[FATAL] Invalid chunker configuration: %v", err)
	}
	splitter := chunker.New(splitterCfg)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	embeddingProvider := embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
	llmProvider := gemini.NewGeminiProvider(cfg.Keys.GoogleGemini)
	classifier := classify.NewClassifier(llmProvider)
	log.Printf("[INFO] Using Gemini for embeddings and generation")

	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		natsPub = nil
	}

	// 4. Services
	publisherService := service.NewPublisherService(cfg.Ingestion.IngestTopic, pubSub)

	ingestionService := service.NewIngestionService(
		uowFactory,
		splitter,
		embeddingProvider,
		llmProvider,
		cfg.Ingestion.EmbedRatePerSec,
		natsPub,
		sysLogger,
	)

	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingestion.IngestTopic,
		ingestionService,
	)

	eventService := service.NewEventService(uowFactory)
	documentService := service.NewDocumentService(uowFactory, publisherService, sysLogger)
	indoorMapService := service.NewIndoorMapService(uowFactory, publisherService, sysLogger)

	assistantService := service.NewAssistantService(
		uowFactory,
		embeddingProvider,
		llmProvider,
		classifier,
		time.Duration(cfg.Retrieval.QueryCacheTTLSec)*time.Second,
		cfg.Retrieval.TopK,
		cfg.Retrieval.SimilarityThreshold,
		natsPub,
		sysLogger,
	)

	// 5. Controllers
	return &Container{
		EventController:     controller.NewEventController(eventService),
		DocumentController:  controller.NewDocumentController(documentService),
		IndoorMapController: controller.NewIndoorMapController(indoorMapService),
		AssistantController: controller.NewAssistantController(assistantService),
		ConsumerService:     consumerService,
		DocumentService:     documentService,
	}
}
