package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/docuvault/docstore/docs"
	"github.com/docuvault/docstore/internal/api/handler"
	"github.com/docuvault/docstore/internal/api/middleware"
	"github.com/docuvault/docstore/internal/auth"
	"github.com/docuvault/docstore/internal/core/service"
	"github.com/docuvault/docstore/internal/infrastructure/config"
	mongostore "github.com/docuvault/docstore/internal/infrastructure/db/mongo"
	redisstore "github.com/docuvault/docstore/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("docstore"))

	// --- Dependencies ---
	userRepo := mongostore.NewUserRepository(db)
	docRepo := mongostore.NewDocumentRepository(db)
	hasher := auth.NewArgon2Hasher()
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)
	docService := service.NewDocumentService(docRepo, userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	docHandler := handler.NewDocumentHandler(docService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authGuard := middleware.Auth(tokens)
	loginLimiter := middleware.RateLimit(
		redisstore.NewLoginLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow), log)

	// --- Auth routes (no guard; login is rate limited) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login, loginLimiter)

	// --- Account routes ---
	users := e.Group("/users", authGuard)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Document routes ---
	docs := e.Group("/documents", authGuard)
	docs.POST("", docHandler.Create)
	docs.GET("", docHandler.List)
	docs.GET("/:id", docHandler.Get)
	docs.PUT("/:id", docHandler.Update)
	docs.DELETE("/:id", docHandler.Delete)

	// --- Probes, metrics, API docs (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
