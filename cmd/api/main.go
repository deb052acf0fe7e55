package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/gradefresh/quality-api/docs" // swagger docs

	"github.com/gradefresh/quality-api/internal/api"
	"github.com/gradefresh/quality-api/internal/infrastructure/config"
	mongodb "github.com/gradefresh/quality-api/internal/infrastructure/db/mongo"
	redisdb "github.com/gradefresh/quality-api/internal/infrastructure/db/redis"
	"github.com/gradefresh/quality-api/internal/infrastructure/inference"
	"github.com/gradefresh/quality-api/pkg/logger"
)

// @title GradeFresh API
// @version 1.0
// @description Produce quality grading backend: auth, admin management, news CMS, and image classification.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongodb index setup failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	// --- Model ---
	// Warm-up runs in the background so the HTTP surface comes up immediately;
	// classification endpoints answer 503 until it completes.
	model := inference.NewClient(inference.Config{
		URL:     cfg.Model.URL,
		Timeout: cfg.Model.Timeout,
	}, log)
	go func() {
		if err := model.WarmUp(ctx); err != nil {
			log.Error().Err(err).Msg("model warm-up failed, classification unavailable")
		}
	}()

	e := api.NewRouter(db, rdb, model, cfg, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
