package routes

import (
	"context"
	"fmt"
	"log"
	_ "sparkle_shine/docs" // This will be auto-generated
	"sparkle_shine/internal/adapter/http/handlers"
	"sparkle_shine/internal/adapter/http/middleware"
	"sparkle_shine/internal/adapter/persistence/repository"
	"sparkle_shine/internal/infrastructure/assistant"
	"sparkle_shine/internal/infrastructure/config"
	"sparkle_shine/internal/infrastructure/database"
	"sparkle_shine/internal/infrastructure/logger"
	"sparkle_shine/internal/usecase"
	"sparkle_shine/internal/usecase/interfaces"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog, err := logger.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = appLog.GinWriter()

	if cfg.Sentry.Enabled() {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		}); err != nil {
			appLog.Warnw("[app] sentry init failed", "error", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	setMiddlewares(cfg, appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := buildApplication(context.Background(), cfg, appLog)
	if err != nil {
		appLog.Fatalw("[app] failed to wire application", "error", err)
	}

	v1 := router.Group("/v1")
	registerRoutes(v1, app)

	appLog.Infow("[app] listening", "port", cfg.Server.Port, "session_store", cfg.Session.Store)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		appLog.Fatalw("Failed to startup the application", "error", err)
	}
}

// application holds the wired handlers for the /v1 routes.
type application struct {
	catalog     *handlers.CatalogHandler
	estimator   *handlers.EstimatorHandler
	chat        *handlers.ChatHandler
	live        *handlers.LiveHandler
	chatLimiter *middleware.RateLimiter
}

func buildApplication(ctx context.Context, cfg *config.Configuration, appLog *logger.Logger) (*application, error) {
	sessionRepo, err := newEstimatorSessionRepository(ctx, cfg, appLog)
	if err != nil {
		return nil, err
	}
	conversationRepo := repository.NewConversationMemoryRepository(cfg.Session.TTL)

	client, err := assistant.NewClient(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}
	if client == nil {
		appLog.Warnw("[app] GEMINI_API_KEY not set; chat answers with the fallback and voice sessions close immediately")
	}

	sugar := appLog.SugaredLogger
	catalogUseCase := usecase.NewCatalogUseCase()
	estimatorUseCase := usecase.NewEstimatorUseCase(sessionRepo, cfg.Business.Location, sugar)
	chatUseCase := usecase.NewChatUseCase(conversationRepo, assistant.NewGeminiTextGateway(client, cfg.Gemini), cfg.Gemini.Timeout, sugar)
	liveUseCase := usecase.NewLiveSessionUseCase(conversationRepo, assistant.NewGeminiLiveGateway(client, cfg.Gemini), sugar)

	return &application{
		catalog:     handlers.NewCatalogHandler(catalogUseCase),
		estimator:   handlers.NewEstimatorHandler(estimatorUseCase),
		chat:        handlers.NewChatHandler(chatUseCase),
		live:        handlers.NewLiveHandler(chatUseCase, liveUseCase, cfg.Server.AllowedOrigins, sugar),
		chatLimiter: middleware.NewRateLimiter(cfg.Chat.RateLimitPerMinute, 10*time.Minute),
	}, nil
}

func newEstimatorSessionRepository(ctx context.Context, cfg *config.Configuration, appLog *logger.Logger) (interfaces.IEstimatorSessionRepository, error) {
	switch cfg.Session.Store {
	case config.SessionStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, fmt.Errorf("estimator session store: %w", err)
		}
		appLog.Infow("[app] estimator sessions stored in dynamodb", "table", cfg.Session.Table, "endpoint", cfg.AWS.DynamoDBEndpoint)
		return repository.NewEstimatorSessionDynamoRepository(ddb, cfg.Session.Table, cfg.Session.TTL), nil
	default:
		return repository.NewEstimatorSessionMemoryRepository(cfg.Session.TTL), nil
	}
}

func registerRoutes(rg *gin.RouterGroup, app *application) {
	addPingRoutes(rg)
	addCatalogRoutes(rg, app.catalog)
	addEstimatorRoutes(rg, app.estimator)
	addChatRoutes(rg, app.chat, app.live, app.chatLimiter)
}

func setMiddlewares(cfg *config.Configuration, appLog *logger.Logger) {
	router.Use(middleware.RecoveryMiddleware(appLog))
	router.Use(middleware.SentryMiddleware(cfg.Sentry))
	router.Use(middleware.LoggingMiddleware(appLog))
	router.Use(cors.New(corsConfig(cfg.Server.AllowedOrigins)))
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 || lo.Contains(origins, "*") {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = origins
	return c
}
