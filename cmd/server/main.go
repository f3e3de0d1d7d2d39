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

	"club-mareva-site/internal/api"
	"club-mareva-site/internal/cache"
	"club-mareva-site/internal/config"
	"club-mareva-site/internal/fsstore"
	"club-mareva-site/internal/handler"
	"club-mareva-site/internal/logger"
	"club-mareva-site/internal/middleware"
	"club-mareva-site/internal/service"
)

func main() {
	// --- Configuration Loading ---
	cfg, err := config.LoadConfig()
	if err != nil {
		// Use fmt.Printf here because the logger is not yet initialized.
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Initialization ---
	log := logger.New(cfg.Log, os.Stdout)

	// --- Cache Initialization ---
	contentCache, err := cache.New(cfg.Cache)
	if err != nil {
		log.Fatal(err, "Failed to initialize cache")
	}
	defer contentCache.Close()
	log.Info(fmt.Sprintf("Cache initialized (%s backend).", cfg.Cache.Backend))

	// --- Content Sources ---
	mode := service.ParseMode(cfg.Content.Source)
	apiClient := api.NewClient(cfg.API.BaseURL, cfg.API.Timeout())
	fileStore := fsstore.New(cfg.Content.DataDir, log)
	log.Info(fmt.Sprintf("Content source mode: %s (data dir %s).", mode, cfg.Content.DataDir))

	// --- Dependency Injection and Handler Initialization ---
	// Initialize the application layers, injecting dependencies from top to bottom.
	ttls := service.TTLs{
		News:   time.Duration(cfg.Cache.NewsTTL) * time.Second,
		Events: time.Duration(cfg.Cache.EventsTTL) * time.Second,
		Brands: time.Duration(cfg.Cache.BrandsTTL) * time.Second,
	}
	contentService := service.NewContentService(mode, apiClient, fileStore, contentCache, ttls, log)
	contentHandler := handler.NewContentHandler(contentService, log)
	formsHandler := handler.NewFormsHandler(contentService, log)
	errorMiddleware := middleware.Error(log)

	// --- Router Setup ---
	// The router is the central hub that directs incoming requests to the correct handlers.
	router := handler.NewRouter(contentHandler, formsHandler, errorMiddleware)

	// --- Server Initialization and Graceful Shutdown ---
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}
	go func() {
		log.Info(fmt.Sprintf("Starting HTTP server on %s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, "Could not start HTTP server")
		}
	}()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Warn("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Fatal(err, "Server forced to shutdown")
	}
	log.Info("Server exiting")
}
