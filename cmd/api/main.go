package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voltly/internal/booking"
	"voltly/internal/cart"
	"voltly/internal/catalog"
	"voltly/internal/config"
	"voltly/internal/crm"
	"voltly/internal/database"
	"voltly/internal/handler"
	"voltly/internal/notify"
	"voltly/internal/repository"
	"voltly/internal/router"
	"voltly/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting voltly API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		return fmt.Errorf("failed to ensure database schema: %w", err)
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Initialize cart storage: postgres shares the pool, file keeps a
	// local JSON file for single-tenant deployments
	var cartStorage cart.Storage
	if cfg.Cart.Backend == "file" {
		cartStorage = cart.NewFileStorage(cfg.Cart.FilePath, logger)
		logger.Info().Str("path", cfg.Cart.FilePath).Msg("using file-backed cart storage")
	} else {
		cartStorage = repository.NewCartStorage(pool, cfg.Cart.Key, logger)
	}

	cartStore := cart.NewStore(ctx, cartStorage, logger)
	productCatalog := catalog.New()
	addressCache := booking.NewAddressCache()

	// Optional integrations: nil clients disable them
	var crmClient crm.Client
	if cfg.CRM.BaseURL != "" {
		crmClient = crm.NewServiceFusionClient(crm.ServiceFusionConfig{
			BaseURL:      cfg.CRM.BaseURL,
			ClientID:     cfg.CRM.ClientID,
			ClientSecret: cfg.CRM.ClientSecret,
			Timeout:      cfg.CRM.Timeout,
		}, logger)
		logger.Info().Str("base_url", cfg.CRM.BaseURL).Msg("CRM integration enabled")
	} else {
		logger.Info().Msg("CRM integration disabled")
	}

	var confirmationSender notify.Sender
	if cfg.Notify.WebhookURL != "" {
		confirmationSender = notify.NewWebhookSender(notify.WebhookConfig{
			URL:     cfg.Notify.WebhookURL,
			ToEmail: cfg.Notify.ToEmail,
			Timeout: cfg.Notify.Timeout,
		}, logger)
		logger.Info().Msg("booking confirmations enabled")
	} else {
		logger.Info().Msg("booking confirmations disabled")
	}

	// Initialize services
	cartService := service.NewCartService(cartStore, productCatalog, crmClient, orderRepo, logger)
	bookingService := service.NewBookingService(addressCache, cartStore, crmClient, confirmationSender, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productCatalog, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	bookingHandler := handler.NewBookingHandler(bookingService, logger)
	orderHandler := handler.NewOrderHandler(orderRepo, logger)

	// Initialize router
	mux := router.New(productHandler, cartHandler, bookingHandler, orderHandler, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
