package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/RoostiqueTheMan/homework-bot/internal/app"
	"github.com/RoostiqueTheMan/homework-bot/internal/infra/config"
	"github.com/RoostiqueTheMan/homework-bot/internal/infra/logger"
	"github.com/RoostiqueTheMan/homework-bot/internal/infra/practicum"
	"github.com/RoostiqueTheMan/homework-bot/internal/infra/scheduler"
	"github.com/RoostiqueTheMan/homework-bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The loop must not start without a complete credential set.
		logger.Log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	logger.Init(cfg)
	log := logger.Get()
	log.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Chat ID: %d, Poll interval: %s",
		cfg.LogLevel, cfg.Environment, cfg.TelegramChatID, cfg.PollInterval)

	// Initialize Telegram Bot. No Poller is configured: this bot only sends.
	bot, err := telebot.NewBot(telebot.Settings{Token: cfg.TelegramToken})
	if err != nil {
		log.Fatalf("FATAL: Could not create Telegram bot: %v", err)
	}
	tgClient := telegram.NewTelebotAdapter(bot)
	log.Info("Telegram client initialized.")

	endpoint := cfg.PracticumEndpoint
	if endpoint == "" {
		endpoint = practicum.DefaultEndpoint
	}
	// nil selects an http.Client with no request timeout; pass a configured
	// client here to harden.
	apiClient := practicum.NewClient(nil, endpoint, cfg.PracticumToken)
	log.Infof("Practicum API client initialized. Endpoint: %s", endpoint)

	poller := app.NewPoller(apiClient, tgClient, cfg.TelegramChatID, log, cfg.PollInterval)

	heartbeat := scheduler.NewHeartbeat(poller.Stats(), log, cfg.HeartbeatCronSpec)
	if err := heartbeat.Start(); err != nil {
		log.Fatalf("FATAL: Could not start heartbeat scheduler: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("Application setup complete. Poller is starting...")
	runErr := poller.Run(ctx)

	heartbeat.Stop()
	if runErr != nil {
		log.Fatalf("FATAL: Poller terminated: %v", runErr)
	}
	log.Info("Application shut down gracefully.")
}
