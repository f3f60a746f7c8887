package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-catalog-admin/config"
	_ "menu-catalog-admin/docs" // Swagger docs
	catalogHTTP "menu-catalog-admin/internal/catalog/delivery/http"
	"menu-catalog-admin/internal/catalog/notify"
	"menu-catalog-admin/internal/catalog/preview"
	"menu-catalog-admin/internal/catalog/repository/remote"
	"menu-catalog-admin/internal/catalog/store"
	"menu-catalog-admin/internal/catalog/usecase"
	"menu-catalog-admin/internal/catalog/view"
	"menu-catalog-admin/internal/httpserver"
	"menu-catalog-admin/pkg/log"
)

// @title       Menu Catalog Admin API
// @description Admin console for the restaurant menu catalog: search, paginate, create, edit, and delete menu items against the remote catalog API.
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
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxBackups:   cfg.Logger.MaxBackups,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Menu Catalog Admin...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Catalog API: %s", cfg.Catalog.BaseURL)

	// 3. Remote catalog repository
	client := remote.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.AccessToken, cfg.Catalog.RateLimitPerMin)
	repo := remote.New(client, logger)

	// 4. Catalog state engine
	categories := store.NewCategories(repo, logger)
	collection := store.NewCollection(repo, logger)
	viewState := view.NewState(cfg.View.ItemsPerPage)
	previews := preview.NewManager(logger, cfg.Catalog.PreviewDir,
		time.Duration(cfg.Catalog.PreviewTTLMinutes)*time.Minute)
	notifier := notify.NewLog(logger)

	workflow := usecase.New(logger, repo, collection, categories, previews, notifier, viewState)

	// Initial population. The two stores load independently; a failure keeps
	// the previous (empty) value and the operator can refresh later.
	if err := categories.Fetch(ctx); err != nil {
		logger.Warnf(ctx, "Initial category fetch failed: %v", err)
	}
	if err := collection.FetchAll(ctx); err != nil {
		logger.Warnf(ctx, "Initial menu item fetch failed: %v", err)
	}

	// 5. HTTP facade
	handler := catalogHTTP.New(logger, workflow, collection, categories, viewState)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		CatalogHandler: handler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
