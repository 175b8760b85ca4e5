package bootstrap

import (
	"context"
	"log"

	"timo-intelligence-be/internal/config"
	"timo-intelligence-be/internal/controller"
	"timo-intelligence-be/internal/pkg/logger"
	"timo-intelligence-be/internal/pkg/mailer"
	"timo-intelligence-be/internal/service"
	"timo-intelligence-be/internal/store/localstore"
	"timo-intelligence-be/internal/store/remotestore"
	"timo-intelligence-be/internal/websocket"
	"timo-intelligence-be/pkg/llm/factory"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	// Controllers
	ContentController controller.IContentController
	AuthController    controller.IAuthController
	ContactController controller.IContactController
	ChatbotController controller.IChatbotController
	StatusController  controller.IStatusController

	// Core services (exposed for main.go lifecycle management)
	ContentService  service.IContentService
	ConsumerService service.IConsumerService

	WebSocketHub *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.InboxEmail,
	)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Optional Redis, used for the local store backend and for
	// websocket fan-out across instances.
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

	// 4. Content stores
	var kv localstore.KV
	if cfg.Storage.Backend == "redis" && rdb != nil {
		kv = localstore.NewRedisKV(rdb)
		log.Println("[INFO] Local store backend: REDIS")
	} else {
		fileKV, err := localstore.NewFileKV(cfg.Storage.DataDir)
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize file storage: %v", err)
		}
		kv = fileKV
		log.Printf("[INFO] Local store backend: FILE (%s)", cfg.Storage.DataDir)
	}
	localStore := localstore.NewStore(kv, sysLogger)
	remoteStore := remotestore.NewClient(cfg.Remote.BaseURL)
	if remoteStore.Configured() {
		log.Printf("[INFO] Remote content store: %s", cfg.Remote.BaseURL)
	} else {
		log.Println("[INFO] Remote content store not configured, local store only")
	}

	// 5. LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GeminiAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 6. WebSocket hub
	wsLogger := logger.NewIsolatedLogger("logs/status.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// 7. Services
	publisherService := service.NewPublisherService(pubSub)
	contentService := service.NewContentService(remoteStore, localStore, publisherService, sysLogger)
	consumerService := service.NewConsumerService(pubSub, wsHub, sysLogger)
	authService := service.NewAuthService(cfg.Admin, sysLogger)
	contactService := service.NewContactService(emailService, sysLogger)
	chatbotService := service.NewChatbotService(llmProvider, emailService, sysLogger)

	// 8. Controllers
	return &Container{
		ContentController: controller.NewContentController(contentService),
		AuthController:    controller.NewAuthController(authService),
		ContactController: controller.NewContactController(contactService),
		ChatbotController: controller.NewChatbotController(chatbotService),
		StatusController:  controller.NewStatusController(wsHub, wsLogger),

		ContentService:  contentService,
		ConsumerService: consumerService,

		WebSocketHub: wsHub,
	}
}
