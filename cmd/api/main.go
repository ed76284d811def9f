package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nabe7855/FindMe/internal/adapters/cache"
	"github.com/nabe7855/FindMe/internal/adapters/catalog"
	"github.com/nabe7855/FindMe/internal/adapters/search"
	"github.com/nabe7855/FindMe/internal/api/handlers"
	"github.com/nabe7855/FindMe/internal/api/middleware"
	"github.com/nabe7855/FindMe/internal/api/routes"
	"github.com/nabe7855/FindMe/internal/application/services"
	"github.com/nabe7855/FindMe/internal/domain/providers"
	"github.com/nabe7855/FindMe/internal/domain/repositories"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/gemini"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/postgres"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/redis"
	"github.com/nabe7855/FindMe/internal/infrastructure/clients/typesense"
	"github.com/nabe7855/FindMe/internal/infrastructure/observability"
	"github.com/nabe7855/FindMe/pkg/config"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger("findme-api", os.Getenv("APP_ENV"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// OpenTelemetry tracing is opt-in
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Catalog source: postgres when enabled, otherwise the seeded
	// in-memory catalog. Both serve the same repository contract.
	var storeRepo repositories.StoreRepository
	if cfg.Database.Enabled {
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
		}
		defer pgClient.Close()
		storeRepo = catalog.NewPostgresAdapter(pgClient)
		log.Info().Msg("catalog served from PostgreSQL")
	} else {
		storeRepo = catalog.NewSeededAdapter()
		log.Info().Msg("catalog served from the in-memory seed")
	}

	// Redis is optional; without it reads hit the catalog source directly
	var cacheProvider providers.CacheProvider
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("running without Redis cache")
	} else {
		defer redisClient.Close()
		cacheProvider = cache.NewRedisAdapter(redisClient)
		storeRepo = catalog.NewCachedAdapter(storeRepo, cacheProvider)
		log.Info().Msg("catalog reads cached in Redis")
	}

	// Typesense keyword index is optional; search degrades to catalog scans
	var searchRepo repositories.StoreSearchRepository
	if cfg.Typesense.URL != "" {
		typesenseClient, err := typesense.NewClient(&cfg.Typesense)
		if err != nil {
			log.Warn().Err(err).Msg("running without the keyword index")
		} else {
			adapter := search.NewTypesenseAdapter(typesenseClient)
			if err := adapter.InitSchema(ctx); err != nil {
				log.Warn().Err(err).Msg("failed to init Typesense schema")
			} else {
				searchRepo = adapter
			}
		}
	}

	// Gemini credential is optional. Without it the concierge serves the
	// fixed fallback batch; nothing else is degraded.
	var recommendationProvider providers.RecommendationProvider
	if cfg.Gemini.APIKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set; concierge runs in fallback mode")
	} else {
		geminiClient, err := gemini.NewClient(&cfg.Gemini)
		if err != nil {
			log.Warn().Err(err).Msg("failed to initialize Gemini client; concierge runs in fallback mode")
		} else {
			defer geminiClient.Close()
			recommendationProvider = geminiClient
		}
	}

	storeService := services.NewStoreService(storeRepo, searchRepo)
	reviewService := services.NewReviewService(storeRepo)

	if searchRepo != nil {
		if err := storeService.Reindex(ctx); err != nil {
			log.Warn().Err(err).Msg("initial catalog reindex failed")
		}
	}

	storeHandler := handlers.NewStoreHandler(storeService)
	conciergeHandler := handlers.NewConciergeHandler(recommendationProvider)
	reviewHandler := handlers.NewReviewHandler(reviewService)

	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider, metrics)
	}

	router := routes.NewRouter(
		storeHandler,
		conciergeHandler,
		reviewHandler,
		cacheMiddleware,
		cfg.Server.AllowedOrigins,
		metrics,
	)
	handler := router.SetupRoutes()

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	log.Info().Msg("server stopped")
}
