package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/novafin/finance-system/internal/api"
	"github.com/novafin/finance-system/internal/infrastructure/config"
	"github.com/novafin/finance-system/internal/infrastructure/db/memory"
	mongodb "github.com/novafin/finance-system/internal/infrastructure/db/mongo"
	redisdb "github.com/novafin/finance-system/internal/infrastructure/db/redis"
	"github.com/novafin/finance-system/pkg/logger"
)

// @title        NovaFin Finance API
// @version      1.0
// @description  Local-first personal finance ledger: users, sessions, categorized transactions and derived statistics.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := newStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open blob store")
	}
	defer closeStore()

	log.Info().Str("backend", cfg.StoreBackend).Msg("blob store ready")

	e := api.NewRouter(store, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newStore opens the blob store backend selected by configuration and returns
// it together with its close function.
func newStore(ctx context.Context, cfg *config.Config) (api.Store, func(), error) {
	switch cfg.StoreBackend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		return redisdb.NewBlobStore(client), func() { _ = client.Close() }, nil

	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		return mongodb.NewBlobStore(db), func() { _ = client.Disconnect(context.Background()) }, nil

	case "memory":
		return memory.NewBlobStore(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
