package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"vehicle-lookup-api/internal/client"
	"vehicle-lookup-api/internal/config"
	"vehicle-lookup-api/internal/database"
	"vehicle-lookup-api/internal/extractor"
	"vehicle-lookup-api/internal/handler"
	"vehicle-lookup-api/internal/notify"
	"vehicle-lookup-api/internal/repository"
	"vehicle-lookup-api/internal/service"
)

func main() {
	// Config
	cfg := config.Load()

	// Structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	slog.Info("starting vehicle-lookup-api")

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Database (optional)
	var db *pgxpool.Pool
	if cfg.Database.Enabled() {
		slog.Info("connecting to database", "host", cfg.Database.Host, "database", cfg.Database.Name)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		pool, err := database.Connect(ctx, cfg.Database)
		if err == nil {
			err = database.RunMigrations(ctx, pool)
		}
		cancel()
		if err != nil {
			slog.Error("failed to initialize database", "error", err)
			os.Exit(1)
		}
		db = pool
		defer db.Close()
		slog.Info("database connection established")
	} else {
		slog.Info("DB_HOST not set, persistence disabled")
	}

	// Lookup
	source := client.NewSourceClient(
		client.WithTimeout(cfg.Source.Timeout),
		client.WithUserAgent(cfg.Source.UserAgent),
		client.WithRateLimit(cfg.Source.RateLimit),
		client.WithLogger(logger),
	)
	lookupSvc := service.NewLookupService(source, extractor.New(extractor.WithLogger(logger)), cfg.Source.URL, logger)

	handlers := handler.Handlers{
		VehicleInfo: handler.NewVehicleInfoHandler(lookupSvc),
	}

	// Repositories
	var inquiryStore service.InquiryStore
	if db != nil {
		handlers.Health = handler.NewHealthHandler(db)
		inquiryStore = repository.NewInquiryRepo(db)
		handlers.Vehicles = handler.NewVehicleHandler(repository.NewVehicleRepo(db), inquiryStore)
	} else {
		handlers.Health = handler.NewHealthHandler(nil)
	}

	// Notifications
	var notifier service.Notifier
	switch cfg.Notify.Provider {
	case config.NotifyResend:
		notifier = notify.NewResendSender(cfg.Notify.ResendAPIURL, cfg.Notify.ResendAPIKey, cfg.Notify.From, cfg.Notify.To)
	case config.NotifySMTP:
		opts := []notify.SMTPOption{notify.WithSMTPLogger(logger)}
		if cfg.Notify.SMTPAllowNoAuth {
			opts = append(opts, notify.WithUnauthenticatedFallback())
		}
		notifier = notify.NewSMTPSender(cfg.Notify.SMTPHost, cfg.Notify.SMTPPort,
			cfg.Notify.SMTPUsername, cfg.Notify.SMTPPassword, cfg.Notify.From, cfg.Notify.To, opts...)
	}
	if notifier != nil {
		handlers.Inquiries = handler.NewInquiryHandler(service.NewInquiryService(inquiryStore, notifier, logger))
	} else {
		slog.Info("notifications disabled, inquiry endpoint not mounted")
	}

	// Server
	srv := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      handler.NewRouter(handlers),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		slog.Info("server started", "port", cfg.APIPort, "source", cfg.Source.URL)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
