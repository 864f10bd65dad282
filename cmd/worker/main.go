// The worker consumes background tasks: currently hot-lead notifications.
package main

import (
	"leadtracker_backend/internal/notify"
	"leadtracker_backend/platform/config"
	"leadtracker_backend/platform/logger"

	"github.com/hibiken/asynq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env)

	sender, err := notify.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}
	if !sender.Enabled() {
		log.Warn("email disabled, hot lead notifications will be dropped")
	}

	server := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		},
		asynq.Config{
			Concurrency: 5,
		},
	)

	mux := asynq.NewServeMux()
	notify.NewProcessor(sender, log).Register(mux)

	if err := server.Run(mux); err != nil {
		log.Error("worker stopped", "error", err)
		panic("worker stopped: " + err.Error())
	}
}
