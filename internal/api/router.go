package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gradefresh/quality-api/internal/api/handler"
	"github.com/gradefresh/quality-api/internal/api/middleware"
	"github.com/gradefresh/quality-api/internal/core/domain"
	"github.com/gradefresh/quality-api/internal/core/ports"
	"github.com/gradefresh/quality-api/internal/core/service"
	"github.com/gradefresh/quality-api/internal/infrastructure/config"
	mongodb "github.com/gradefresh/quality-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gradefresh/quality-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, model ports.Classifier, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.CORSOrigin},
	}))
	e.Use(echoprometheus.NewMiddleware("gradefresh"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	newsRepo := mongodb.NewNewsRepository(db)
	verdictCache := redisdb.NewVerdictCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, log)
	adminService := service.NewAdminService(userRepo, log)
	newsService := service.NewNewsService(newsRepo, log)
	gradingService := service.NewGradingService(model, verdictCache, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(adminService)
	newsHandler := handler.NewNewsHandler(newsService)
	predictHandler := handler.NewPredictHandler(gradingService)

	authRequired := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	g := e.Group("/api")
	g.POST("/register", authHandler.Register)
	g.POST("/login", authHandler.Login)
	g.GET("/admin/check", authHandler.CheckAdmin)
	g.POST("/admin/login", authHandler.AdminLogin)
	g.GET("/news", newsHandler.ListPublished)
	g.POST("/predict", predictHandler.Predict)
	g.POST("/predict-batch", predictHandler.PredictBatch)
	g.GET("/classes", predictHandler.Classes)
	g.GET("/model-info", predictHandler.ModelInfo)

	// --- Admin routes (token + admin role) ---
	admin := g.Group("/admin", authRequired, adminOnly)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/news", newsHandler.List)
	admin.POST("/news", newsHandler.Create)
	admin.GET("/news/:id", newsHandler.Get)
	admin.PUT("/news/:id", newsHandler.Update)
	admin.DELETE("/news/:id", newsHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb, model)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
