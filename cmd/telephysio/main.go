package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"telephysio/internal/api"
	"telephysio/internal/api/handlers"
	"telephysio/internal/chat"
	"telephysio/internal/exercise"
	"telephysio/internal/repository"
	"telephysio/internal/service"
	"telephysio/pkg/auth"
	"telephysio/pkg/config"
	"telephysio/pkg/emailcheck"
	"telephysio/pkg/logger"
	"telephysio/pkg/mailer"
	"telephysio/pkg/postgres"
	"telephysio/pkg/storage"
	"telephysio/pkg/telemetry"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// @title Telephysio API
// @version 1.0
// @description Tele-physiotherapy backend: accounts, booking, FAQ assistant chat and exercise tracking

// @contact.name API Support
// @contact.email support@telephysio.local

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting telephysio service")

	flush, err := telemetry.Init(&cfg.Sentry)
	if err != nil {
		appLogger.Warn("Sentry disabled", zap.Error(err))
	}
	defer flush()

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(db, cfg.Database.Migrations, 0, appLogger); err != nil {
			appLogger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	appointmentRepo := repository.NewAppointmentRepository(db, appLogger)
	callbackRepo := repository.NewCallbackRepository(db, appLogger)
	faqRepo := repository.NewFAQRepository(db, appLogger)

	// Initialize infrastructure
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	sender, err := mailer.New(&cfg.Mail, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	store, err := storage.New(ctx, &cfg.Storage, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", zap.Error(err))
	}

	var sessions exercise.Store
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			appLogger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		sessions = exercise.NewRedisStore(rdb, cfg.Exercise.SessionTTL)
		appLogger.Info("Exercise sessions stored in redis", zap.String("addr", cfg.Redis.Addr))
	} else {
		sessions = exercise.NewMemoryStore(cfg.Exercise.SessionTTL)
		appLogger.Warn("REDIS_ADDR not set, exercise sessions are kept in memory")
	}

	kb, err := service.LoadKnowledgeBase(ctx, &cfg.Assistant, faqRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to load knowledge base", zap.Error(err))
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, sender, emailcheck.New(), &cfg.JWT, &cfg.Server, appLogger)
	profileService := service.NewProfileService(userRepo, store, cfg.Storage.MaxPhoto, appLogger)
	bookingService := service.NewBookingService(appointmentRepo, callbackRepo, sender, cfg.Mail.NotifyEmail, appLogger)
	assistantService := service.NewAssistantService(kb, cfg.Assistant.TypingDelay, appLogger)
	tracker := exercise.NewTracker(cfg.Exercise.TrackingInterval, cfg.Exercise.MaxPoints)
	exerciseService := service.NewExerciseService(sessions, tracker, logger.Component("exercise"))

	chatLogger := logger.Component("chat")
	hub := chat.NewHub(chatLogger)
	defer hub.Close()
	room := chat.NewRoom(hub, assistantService, chatLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:      handlers.NewAuthHandler(authService, cfg.Server.FrontendURL, appLogger),
		Profile:   handlers.NewProfileHandler(profileService, appLogger),
		Booking:   handlers.NewBookingHandler(bookingService, appLogger),
		Assistant: handlers.NewAssistantHandler(assistantService, appLogger),
		Exercise:  handlers.NewExerciseHandler(exerciseService, appLogger),
		Status:    handlers.NewStatusHandler(db, appLogger),
		Chat:      handlers.NewChatHandler(room, chatLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, cfg, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// SIGHUP reloads the knowledge base; SIGINT and SIGTERM stop the server.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range quit {
		if sig != syscall.SIGHUP {
			break
		}
		kb, err := service.LoadKnowledgeBase(ctx, &cfg.Assistant, faqRepo, appLogger)
		if err != nil {
			appLogger.Error("Knowledge base reload failed", zap.Error(err))
			continue
		}
		assistantService.Reload(kb)
	}

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
