package routes

import (
	"net/http"

	"github.com/nabe7855/FindMe/internal/api/handlers"
	"github.com/nabe7855/FindMe/internal/api/middleware"
	"github.com/nabe7855/FindMe/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	storeHandler     *handlers.StoreHandler
	conciergeHandler *handlers.ConciergeHandler
	reviewHandler    *handlers.ReviewHandler

	cacheMiddleware *middleware.CacheMiddleware
	allowedOrigins  []string
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	storeHandler *handlers.StoreHandler,
	conciergeHandler *handlers.ConciergeHandler,
	reviewHandler *handlers.ReviewHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	allowedOrigins []string,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		storeHandler:     storeHandler,
		conciergeHandler: conciergeHandler,
		reviewHandler:    reviewHandler,
		cacheMiddleware:  cacheMiddleware,
		allowedOrigins:   allowedOrigins,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Store catalog endpoints. /search must be registered before /{id}
	// only by convention; ServeMux resolves the more specific pattern.
	r.mux.HandleFunc("GET /api/stores", r.storeHandler.ListStores)
	r.mux.HandleFunc("GET /api/stores/search", r.storeHandler.SearchStores)
	r.mux.HandleFunc("GET /api/stores/{id}", r.storeHandler.GetStore)

	// Review feed
	r.mux.HandleFunc("GET /api/reviews/latest", r.reviewHandler.LatestReviews)

	// AI concierge
	r.mux.HandleFunc("POST /api/concierge", r.conciergeHandler.Recommend)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	if r.metrics != nil {
		handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	}

	// HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(r.allowedOrigins)(handler)

	return handler
}
