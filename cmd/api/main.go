package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/model"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"
	"storefront/internal/storage"
	"storefront/internal/validation"
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
	logger.Info().Msg("starting storefront catalogue API server")

	// Load the persisted catalogue, or fall back to the seed set. A corrupt
	// state file is fatal: starting with partial data would silently drop
	// products.
	store := storage.NewFileStore(cfg.Store.DataFile, logger)
	products, err := store.Load()
	switch {
	case errors.Is(err, storage.ErrNoState):
		if cfg.Store.Seed {
			products = storage.Seed()
			logger.Info().Int("products", len(products)).Msg("no persisted state, starting from seed catalogue")
		} else {
			products = nil
			logger.Info().Msg("no persisted state, starting with an empty catalogue")
		}
	case errors.Is(err, model.ErrCorruptState):
		return fmt.Errorf("refusing to start: %w", err)
	case err != nil:
		return fmt.Errorf("failed to load catalogue state: %w", err)
	}

	// Wire the catalogue stack
	repo := repository.NewMemoryCatalogRepository(products, store, logger)
	catalogService := service.NewCatalogService(repo, validation.New(), logger)
	productHandler := handler.NewProductHandler(catalogService, logger)
	mux := router.New(productHandler, cfg.RateLimit, logger)

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

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		// Final flush so a seeded-but-unmutated catalogue also lands on disk
		if err := repo.Flush(); err != nil {
			logger.Warn().Err(err).Msg("failed to flush catalogue state on shutdown")
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
