package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/obrasys/backoffice/internal/api"
	"github.com/obrasys/backoffice/internal/core/service"
	"github.com/obrasys/backoffice/internal/infrastructure/config"
	mongodb "github.com/obrasys/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/obrasys/backoffice/internal/infrastructure/db/redis"
	"github.com/obrasys/backoffice/internal/infrastructure/queue"
	"github.com/obrasys/backoffice/pkg/logger"
	"github.com/obrasys/backoffice/pkg/token"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "backoffice",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	userRepo := mongodb.NewUserRepository(db)
	notificationRepo := mongodb.NewNotificationRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := notificationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("notification indexes failed")
	}

	notificationService := service.NewNotificationService(notificationRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Workers, notificationService, log)
	dispatcher.Start(ctx)

	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(api.RouterDeps{
		DB:       db,
		Redis:    rdb,
		Codec:    codec,
		Notifier: dispatcher,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}
