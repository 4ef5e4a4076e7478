package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-quick-add/config"
	_ "task-quick-add/docs" // Swagger docs
	"task-quick-add/internal/httpserver"
	"task-quick-add/internal/middleware"
	"task-quick-add/internal/task/usecase"
	"task-quick-add/pkg/datemath"
	"task-quick-add/pkg/gcalendar"
	"task-quick-add/pkg/log"
)

// @title       Task Quick-Add API
// @description Creates tasks from free-form titles, extracting natural-language due dates and optionally scheduling them on Google Calendar.
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

	logger.Info(ctx, "Starting Task Quick-Add...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date parser
	dateParser, err := datemath.NewParser(
		cfg.DateParser.Timezone,
		datemath.WithNearestHour(datemath.SlotHours(cfg.DateParser.DefaultHours)),
	)
	if err != nil {
		logger.Error(ctx, "Failed to initialize date parser: ", err)
		return
	}
	logger.Infof(ctx, "Date parser timezone: %s", dateParser.Location())

	// 4. Google Calendar client (optional)
	var calendar usecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `go run ./scripts/gcal-auth` to generate token.json")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 5. Task UseCase
	taskUC := usecase.New(
		logger,
		dateParser,
		calendar,
		cfg.GoogleCalendar.CalendarID,
		time.Duration(cfg.GoogleCalendar.EventDurationMinutes)*time.Minute,
	)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, middleware.RateLimitConfig{
			Enabled:        cfg.RateLimit.Enabled,
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		}),
		TaskUseCase: taskUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
