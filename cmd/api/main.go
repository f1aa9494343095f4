// ABOUTME: Main entry point for the Full Feed API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fullfeed-api/api"
	"fullfeed-api/api/handlers"
	"fullfeed-api/api/middleware"
	"fullfeed-api/core/content"
	"fullfeed-api/core/feed"
	"fullfeed-api/core/interfaces"
	"fullfeed-api/core/reader"
	"fullfeed-api/infrastructure/cache/memory"
	"fullfeed-api/infrastructure/cache/redis"
	"fullfeed-api/infrastructure/cache/sqlite"
	stdhttp "fullfeed-api/infrastructure/http/standard"
	"fullfeed-api/infrastructure/logger/structured"
	"fullfeed-api/pkg/config"
	"fullfeed-api/pkg/featureflags"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := structured.New(structured.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	logger.Info("Starting Full Feed API", map[string]interface{}{
		"port":        cfg.Server.Port,
		"cache_type":  cfg.Cache.Type,
		"content_ttl": cfg.ContentTTL().String(),
	})

	cache := newCache(cfg, logger)

	httpClient := stdhttp.NewStandardHTTPClient(
		cfg.HTTPTimeout(),
		stdhttp.WithMaxRetries(cfg.HTTP.MaxRetries),
		stdhttp.WithRateLimit(cfg.HTTP.RequestsPerSecond),
		stdhttp.WithTransport(&middleware.LoggingRoundTripper{
			Transport: http.DefaultTransport,
			Logger:    logger,
		}),
	)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Info("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})

	contentService := content.NewService(deps, reader.NewTransformer(),
		content.WithTTL(cfg.ContentTTL()),
		content.WithFeatureFlags(flags),
	)
	processor := feed.NewProcessor(contentService, logger)
	feedService := feed.NewFeedService(deps, processor)

	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{Logger: logger})

	handlers.NewFeedHandler(feedService, flags).RegisterRoutes(humaAPI)
	handlers.NewContentHandler(contentService).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(cache).RegisterRoutes(humaAPI)

	// A full feed is up to ten sequential article downloads
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if closer, ok := cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			logger.Warn("Failed to close cache", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// newCache opens the configured backend, falling back to memory when it is unreachable
func newCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, cfg.MemoryCleanupInterval())
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return sqliteCache
		}
		logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCache(cfg.MemoryCleanupInterval())
}

func init() {
	fmt.Println(`
    ______      ____   ______              __
   / ____/_  __/ / /  / ____/__  ___  ____/ /
  / /_  / / / / / /  / /_  / _ \/ _ \/ __  / 
 / __/ / /_/ / / /  / __/ /  __/  __/ /_/ /  
/_/    \__,_/_/_/  /_/    \___/\___/\__,_/   
	`)
}
