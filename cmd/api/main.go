package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-intake/config"
	_ "task-intake/docs" // Swagger docs
	"task-intake/internal/httpserver"
	intakeHTTP "task-intake/internal/intake/delivery/http"
	tgDelivery "task-intake/internal/intake/delivery/telegram"
	"task-intake/internal/intake/usecase"
	"task-intake/internal/middleware"
	"task-intake/pkg/datemath"
	"task-intake/pkg/log"
	"task-intake/pkg/taskparse"
	"task-intake/pkg/telegram"
)

// @title       Task Intake API
// @description Parses one-line Vietnamese/English task descriptions into structured tasks.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intake...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.Intake.Timezone)

	// 3. Intake domain
	calendar, err := datemath.NewCalendar(cfg.Intake.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone %q: %v", cfg.Intake.Timezone, err)
		return
	}

	parser := taskparse.NewParser(taskparse.DefaultLexicon(), calendar)
	formatter := taskparse.NewFormatter(taskparse.DefaultLocale(), calendar)

	intakeUC := usecase.New(logger, parser, formatter, calendar, usecase.Config{
		MaxInputLength: cfg.Intake.MaxInputLength,
		CacheSize:      cfg.Intake.CacheSize,
		CacheTTL:       cfg.Intake.CacheTTL,
	})

	// 4. Telegram delivery (optional)
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, intakeUC, telegramBot)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.RateLimit.PerMin),
		IntakeHandler:   intakeHTTP.New(logger, intakeUC),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
