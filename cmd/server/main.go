package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gototop/admin-api/internal/api"
	"github.com/gototop/admin-api/internal/core/service"
	"github.com/gototop/admin-api/internal/infrastructure/config"
	mongoinfra "github.com/gototop/admin-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/gototop/admin-api/internal/infrastructure/db/redis"
	"github.com/gototop/admin-api/internal/infrastructure/queue"
	"github.com/gototop/admin-api/pkg/logger"
)

// @title           Go to Top Admin API
// @version         1.0
// @description     Backend for the Go to Top admin panel: authentication, RBAC, leads, content and site configuration.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not up yet; stderr is all we have.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongoinfra.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisinfra.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongoinfra.NewUserRepository(db)
	leadRepo := mongoinfra.NewLeadRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := leadRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create lead indexes")
	}

	// First boot on an empty database gets a usable main admin account.
	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	if err := service.EnsureDefaultAdmin(ctx, userRepo, hasher, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("failed to seed default admin")
	}

	recorder := queue.NewRecorder(0, mongoinfra.NewActivityRepository(db), log)
	recorder.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, recorder)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Str("port", cfg.Port).Msg("admin api listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
