package api

import (
	"errors"

	"telephysio/docs"
	"telephysio/internal/api/handlers"
	"telephysio/pkg/auth"
	"telephysio/pkg/config"
	"telephysio/pkg/metrics"
	"telephysio/pkg/middleware"
	"telephysio/pkg/telemetry"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth      *handlers.AuthHandler
	Profile   *handlers.ProfileHandler
	Booking   *handlers.BookingHandler
	Assistant *handlers.AssistantHandler
	Exercise  *handlers.ExerciseHandler
	Status    *handlers.StatusHandler
	Chat      *handlers.ChatHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Storage.MaxPhoto) + 1<<20,
		ErrorHandler: errorHandler(appLogger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", metrics.Handler())

	if cfg.Storage.Provider == "local" || cfg.Storage.Provider == "" {
		appLogger.Info("Serving uploads", zap.String("path", cfg.Storage.UploadDir))
		app.Static("/uploads", cfg.Storage.UploadDir)
	}

	api := app.Group("/api")

	// Auth routes (public)
	api.Post("/signup", h.Auth.Signup)
	api.Post("/login", h.Auth.Login)
	api.Post("/refresh", h.Auth.RefreshToken)
	api.Get("/verify-email/:token", h.Auth.VerifyEmail)
	api.Post("/resend-verification", h.Auth.ResendVerification)
	api.Post("/forgot-password", h.Auth.ForgotPassword)
	api.Post("/reset-password/:token", h.Auth.ResetPassword)

	// Booking and assistant (public)
	api.Post("/appointment", h.Booking.BookAppointment)
	api.Post("/callback", h.Booking.RequestCallback)
	api.Post("/assistant/ask", h.Assistant.Ask)

	api.Get("/health", h.Status.Health)
	api.Get("/db_status", h.Status.DBStatus)

	authRequired := middleware.AuthMiddleware(jwtManager, appLogger)

	profile := api.Group("/profile", authRequired)
	profile.Get("", h.Profile.GetProfile)
	profile.Patch("", h.Profile.UpdateProfile)
	profile.Post("/photo", h.Profile.UploadPhoto)

	// Protected routes
	protected := api.Group("/v1", authRequired)
	protected.Get("/appointments", h.Booking.ListAppointments)

	exercise := protected.Group("/exercise")
	exercise.Get("/catalogue", h.Exercise.Catalogue)
	exercise.Post("/sessions", h.Exercise.StartSession)
	exercise.Get("/sessions/:id", h.Exercise.GetSession)
	exercise.Post("/sessions/:id/frames", h.Exercise.PostFrame)
	exercise.Get("/sessions/:id/report", h.Exercise.Report)

	// Chat socket
	app.Use("/chat", h.Chat.Upgrade)
	app.Get("/chat", h.Chat.Serve())

	return app
}

func errorHandler(appLogger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			appLogger.Error("Unhandled request error",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
			telemetry.CaptureError(err, c.Method(), c.Route().Path)
		}
		return c.Status(code).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
}
