package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/KOFI-GYIMAH/uc-orb/docs"
	"github.com/KOFI-GYIMAH/uc-orb/internal/config"
	"github.com/KOFI-GYIMAH/uc-orb/internal/db"
	"github.com/KOFI-GYIMAH/uc-orb/internal/handler"
	"github.com/KOFI-GYIMAH/uc-orb/internal/models"
	"github.com/KOFI-GYIMAH/uc-orb/internal/service"
	"github.com/KOFI-GYIMAH/uc-orb/internal/store"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"golang.org/x/sync/errgroup"
)

// @title UC ORB API
// @version 0.1.0
// @description API for the University of California Open Source Repository Browser
// @BasePath /
func main() {
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.LevelDebug)
	}

	// * Load configuration
	cfg, err := config.LoadConfiguration()
	if err != nil {
		logger.Error("‼️ Failed to load config: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// * Pick the catalog source
	var source models.Source
	if cfg.DataSource == config.DataSourcePostgres {
		database, err := db.NewPostgresDB(cfg.DBURL)
		if err != nil {
			logger.Error("Failed to initialize database: %v", err)
			os.Exit(1)
		}
		defer database.Close()
		source = database
	} else {
		source, err = store.New(ctx, cfg.DataSource)
		if err != nil {
			logger.Error("Failed to initialize data source: %v", err)
			os.Exit(1)
		}
	}
	logger.Info("Serving repositories from %s", cfg.DataSource)

	// * Create API server
	repoService := service.NewRepositoryService(source)
	apiHandler := handler.NewRepositoryHandler(repoService)

	server := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           handler.NewServerHandler(apiHandler, cfg.AllowedOrigins),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting API server on %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// * Wait for termination signal
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("API server error: %v", err)
		os.Exit(1)
	}
}
