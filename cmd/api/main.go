package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventhub/config"
	"eventhub/internal/adapters/auth"
	"eventhub/internal/adapters/email"
	delivery "eventhub/internal/delivery/http"
	"eventhub/internal/delivery/http/controllers"
	"eventhub/internal/delivery/http/middleware"
	"eventhub/internal/repository/postgres"
	"eventhub/internal/services"
	"eventhub/internal/worker"
)

const serviceTimeout = 5 * time.Second

// @title Event Management API
// @version 1.0
// @description REST API for managing events, categories, and attendees.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := postgres.Open(cfg.DBUrl)
	if err != nil {
		logger.Error("failed to connect to database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.EnsureSchema(ctx, db); err != nil {
		logger.Error("failed to ensure schema", "err", err)
		os.Exit(1)
	}
	logger.Info("database connected")

	eventRepo := postgres.NewEventRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)

	eventService := services.NewEventService(eventRepo, serviceTimeout)
	categoryService := services.NewCategoryService(categoryRepo, serviceTimeout)
	attendeeService := services.NewAttendeeService(attendeeRepo, serviceTimeout)

	verifier := auth.NewJWTVerifier(cfg.JWTSecret)
	mailer := email.NewMailer(cfg.Mailer, logger)
	renderer := email.NewTemplateRenderer()

	scheduler := worker.NewStatusScheduler(
		eventService,
		attendeeService,
		mailer,
		renderer,
		logger,
		cfg.Scheduler.CompletionInterval,
		cfg.Scheduler.DailyInterval,
	)
	if cfg.Scheduler.Enabled {
		scheduler.Start(ctx)
	}

	eventController := controllers.NewEventController(logger, eventService)
	categoryController := controllers.NewCategoryController(logger, categoryService)
	attendeeController := controllers.NewAttendeeController(logger, attendeeService)

	mux := delivery.NewRouter(eventController, categoryController, attendeeController, verifier)
	handler := middleware.CORS(cfg.CORSAllowedOrigins,
		middleware.RequestID(
			middleware.Logging(logger, mux),
		),
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	}

	if cfg.Scheduler.Enabled {
		scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
