package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chatmate-assistant/config"
	_ "chatmate-assistant/docs" // Swagger docs
	chatDelivery "chatmate-assistant/internal/chat/delivery/http"
	"chatmate-assistant/internal/chat/pending"
	"chatmate-assistant/internal/chat/usecase"
	"chatmate-assistant/internal/detect"
	"chatmate-assistant/internal/httpserver"
	"chatmate-assistant/internal/middleware"
	"chatmate-assistant/internal/scheduler"
	schedDelivery "chatmate-assistant/internal/scheduler/delivery/http"
	"chatmate-assistant/pkg/datemath"
	"chatmate-assistant/pkg/gcalendar"
	"chatmate-assistant/pkg/gemini"
	"chatmate-assistant/pkg/log"
	"chatmate-assistant/pkg/taskapi"
	"chatmate-assistant/pkg/whatsapp"
)

// @title       ChatMate Assistant API
// @description Personal AI assistant with persona chat, meeting scheduling, Google Calendar, and WhatsApp message scheduling.
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

	logger.Info(ctx, "Starting ChatMate Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Backend URL: %s", cfg.Backend.URL)

	// 3. Gemini LLM client
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	if cfg.Gemini.Model != "" {
		geminiClient.SetModel(cfg.Gemini.Model)
	}

	// DateMath parser
	timezone := cfg.Gemini.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Task backend client
	backendClient := taskapi.NewClient(cfg.Backend.URL)

	// Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "✅ Google Calendar initialized")
		}
	}

	// 5. Chat domain
	detector := detect.New(geminiClient, logger)
	pendingStore := pending.NewStore(
		time.Duration(cfg.Chat.PendingTTLMinutes)*time.Minute,
		pending.DefaultCapacity,
	)
	chatUC := usecase.New(logger, geminiClient, detector, backendClient, calendarClient, pendingStore, dateMathParser)
	chatHandler := chatDelivery.New(logger, chatUC)

	// 6. WhatsApp scheduler (optional, requires Unipile credentials)
	var schedulerHandler schedDelivery.Handler
	if cfg.WhatsApp.APIKey != "" && cfg.WhatsApp.AccountID != "" {
		waClient := whatsapp.NewClient(cfg.WhatsApp.BaseURL, cfg.WhatsApp.APIKey, cfg.WhatsApp.AccountID)

		storage, stErr := scheduler.NewSQLiteStorage(cfg.Scheduler.DBPath)
		if stErr != nil {
			logger.Error(ctx, "Failed to open scheduler storage: ", stErr)
			return
		}
		defer storage.Close()

		sched := scheduler.New(storage, waClient, logger)
		if err := sched.Start(ctx); err != nil {
			logger.Error(ctx, "Failed to start scheduler: ", err)
			return
		}
		defer sched.Stop()

		schedulerHandler = schedDelivery.New(logger, sched)
		logger.Info(ctx, "✅ WhatsApp scheduler initialized")
	} else {
		logger.Warn(ctx, "WhatsApp scheduling skipped: WHATSAPP_API_KEY or account ID is missing")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		Middleware:       middleware.New(logger, cfg.Chat.RateLimitPerMin),
		ChatHandler:      chatHandler,
		SchedulerHandler: schedulerHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
