package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/poi-browser/docs"
	"github.com/poi-browser/internal/config"
	httpDelivery "github.com/poi-browser/internal/delivery/http"
	"github.com/poi-browser/internal/delivery/http/handler"
	"github.com/poi-browser/internal/infrastructure/nominatim"
	"github.com/poi-browser/internal/infrastructure/overpass"
	"github.com/poi-browser/internal/pkg/logger"
	"github.com/poi-browser/internal/repository/cache"
	"github.com/poi-browser/internal/repository/postgres"
	"github.com/poi-browser/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting POI Browser")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostGIS
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostGIS", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostGIS connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostGIS health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	log.Info("All connections healthy")

	// 6. Initialize repositories and external clients
	poiRepo := postgres.NewPOIRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)
	overpassRepo := overpass.NewClient(&cfg.Overpass, log)
	geocodeRepo := nominatim.NewClient(&cfg.Nominatim, log)
	log.Info("Repositories initialized")

	// 7. Initialize use cases
	osmUC := usecase.NewOSMUseCase(overpassRepo, log)
	poiUC := usecase.NewPOIUseCase(poiRepo, log)
	geocodeUC := usecase.NewGeocodeUseCase(geocodeRepo, cacheRepo, log, cfg.Cache.GeocodeCacheTTL)
	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	osmHandler := handler.NewOSMHandler(osmUC, log)
	poiHandler := handler.NewPOIHandler(poiUC, log)
	geocodeHandler := handler.NewGeocodeHandler(geocodeUC, log)
	categoryHandler := handler.NewCategoryHandler()
	log.Info("HTTP handlers initialized")

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		osmHandler,
		poiHandler,
		geocodeHandler,
		categoryHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
