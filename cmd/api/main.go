package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadtracker_backend/internal/catalog"
	"leadtracker_backend/internal/embed"
	"leadtracker_backend/internal/events"
	apphttp "leadtracker_backend/internal/http"
	"leadtracker_backend/internal/leads"
	"leadtracker_backend/internal/notify"
	"leadtracker_backend/internal/visitors"
	"leadtracker_backend/migrations"
	"leadtracker_backend/platform/config"
	"leadtracker_backend/platform/db"
	"leadtracker_backend/platform/logger"
	"leadtracker_backend/platform/validator"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := db.RunMigrations(ctx, cfg, migrations.FS); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	// Redis backs the verification cache and the notification queue. The
	// service stays functional without it: lookups run uncached and hot
	// lead notifications are skipped.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	var asynqClient *asynq.Client
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("redis unavailable, verification cache and notifications disabled", "error", err)
		redisClient = nil
	} else {
		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer asynqClient.Close()
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		log.Error("failed to load form catalog", "error", err)
		panic("failed to load form catalog: " + err.Error())
	}
	log.Info("form catalog loaded", "services", len(cat.Services))

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	leadsModule := leads.NewModule(pool, redisClient, eventBus, val, cat, cfg, log)
	visitorsModule := visitors.NewModule(pool, eventBus, val, cfg, log)
	embedModule := embed.NewModule(cfg, val)

	notify.NewEnqueuer(asynqClient, log).Subscribe(eventBus)

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   pool,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			visitorsModule,
			embedModule,
		},
	}

	// ========================================================================
	// HTTP Server
	// ========================================================================

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()
	log.Info("http server listening", "addr", cfg.HTTPAddr)

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
