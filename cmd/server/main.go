package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/dayplan-app/planner-api/docs"
	"github.com/dayplan-app/planner-api/internal/api"
	"github.com/dayplan-app/planner-api/internal/core/token"
	"github.com/dayplan-app/planner-api/internal/infrastructure/config"
	mongodb "github.com/dayplan-app/planner-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dayplan-app/planner-api/internal/infrastructure/db/redis"
	"github.com/dayplan-app/planner-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Planner API
// @version         1.0
// @description     Personal productivity backend: accounts, calendars, events and tasks.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// A process that cannot sign tokens must not come up at all.
	codec, err := token.NewCodec(cfg.SecretKey, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Redis only backs the login limiter; running without it degrades to
	// unlimited login attempts rather than refusing to start.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, login limiter disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	e, dispatcher := api.NewRouter(db, rdb, codec, cfg.ActivityWorkers, log)
	dispatcher.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
