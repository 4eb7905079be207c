package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/artistpay/payout-portal/internal/api"
	"github.com/artistpay/payout-portal/internal/infrastructure/db/postgres"
	redisinfra "github.com/artistpay/payout-portal/internal/infrastructure/db/redis"
	"github.com/artistpay/payout-portal/internal/infrastructure/mailer"
	"github.com/artistpay/payout-portal/internal/infrastructure/queue"
	"github.com/artistpay/payout-portal/internal/pkg/config"
	"github.com/artistpay/payout-portal/pkg/logger"
)

// @title        Payout Portal API
// @version      1.0
// @description  Withdrawal management portal for artists and their managing admins.
func main() {
	// .env is optional; existing environment variables win.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("database migrations failed")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	notifier, err := mailer.New(mailer.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mailer setup failed")
	}

	dispatcher := queue.NewDispatcher(0, notifier, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(pool, rdb, cfg, dispatcher)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("payout portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		os.Exit(1)
	}
}
