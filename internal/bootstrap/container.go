package bootstrap

import (
	"context"
	"log"

	"plot-editor-be/internal/config"
	"plot-editor-be/internal/controller"
	"plot-editor-be/internal/handler"
	"plot-editor-be/internal/pkg/logger"
	"plot-editor-be/internal/repository/memory"
	"plot-editor-be/internal/repository/unitofwork"
	"plot-editor-be/internal/service"
	"plot-editor-be/internal/websocket"
	"plot-editor-be/pkg/blob"
	"plot-editor-be/pkg/llm/factory"
	"plot-editor-be/pkg/summary"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController      controller.IAuthController
	WorkController      controller.IWorkController
	EpisodeController   controller.IEpisodeController
	PlotController      controller.IPlotController
	CharacterController controller.ICharacterController
	RelationController  controller.IRelationController
	GraphController     controller.IGraphController
	SummaryController   controller.ISummaryController
	EventHandler        *handler.EventHandler

	// Background services, run by main
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// Redis backs the blob cache and the websocket relay. Both degrade
	// gracefully when it is absent.
	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v", err)
		}
	}

	// Blob store
	var blobStore blob.Store = blob.NewGormStore(db)
	if rdb != nil {
		blobStore = blob.NewCachedStore(blobStore, rdb, cfg.Database.BlobCacheTTL)
	}

	// Text generation
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OpenAIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM provider: %v", err)
	}
	log.Printf("[INFO] Using LLM provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// Summarization core
	summaryStore := service.NewSummaryStore(uowFactory, blobStore)
	aggregator := summary.NewAggregator(summaryStore, sysLogger)
	budget := summary.NewBudget(cfg.Ai.Model, cfg.Ai.ContextTokens)
	assembler := summary.NewAssembler(budget)

	// OAuth
	oauthConf := &oauth2.Config{
		ClientID:     cfg.OAuth.GoogleClientID,
		ClientSecret: cfg.OAuth.GoogleClientSecret,
		RedirectURL:  cfg.OAuth.GoogleRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	states := memory.NewStateRepository()

	// WebSocket hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.EventLogFilePath)
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Services
	publisherService := service.NewPublisherService(pubSub, cfg.Topics.PlotContentSaved, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.Topics.PlotContentSaved, uowFactory, wsHub, wsLogger)

	authService := service.NewAuthService(uowFactory, states, oauthConf, sysLogger)
	workService := service.NewWorkService(uowFactory)
	episodeService := service.NewEpisodeService(uowFactory)
	plotService := service.NewPlotService(uowFactory, blobStore, publisherService, sysLogger)
	characterService := service.NewCharacterService(uowFactory, aggregator)
	relationService := service.NewRelationService(uowFactory)
	graphService := service.NewGraphService(uowFactory)
	summaryService := service.NewSummaryService(
		summaryStore,
		aggregator,
		assembler,
		llmProvider,
		cfg.Ai.RequestTimeout,
		sysLogger,
	)

	return &Container{
		AuthController:      controller.NewAuthController(authService),
		WorkController:      controller.NewWorkController(workService),
		EpisodeController:   controller.NewEpisodeController(episodeService),
		PlotController:      controller.NewPlotController(plotService),
		CharacterController: controller.NewCharacterController(characterService),
		RelationController:  controller.NewRelationController(relationService),
		GraphController:     controller.NewGraphController(graphService),
		SummaryController:   controller.NewSummaryController(summaryService),
		EventHandler:        handler.NewEventHandler(wsHub, wsLogger),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
