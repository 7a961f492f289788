package router

import (
	"net/http"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(productHandler *handler.ProductHandler, rateLimitCfg config.RateLimitConfig, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware in order: Recovery -> Logging -> CORS -> RateLimit
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)
	if rateLimitCfg.Enabled {
		rl := middleware.NewRateLimiter(rateLimitCfg.RPS, rateLimitCfg.Burst, logger)
		r.Use(rl.Middleware)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.List)
		r.Post("/", productHandler.Create)
		r.Get("/{id}", productHandler.GetByID)
		r.Put("/{id}", productHandler.Replace)
		r.Patch("/{id}", productHandler.Patch)
		r.Delete("/{id}", productHandler.Delete)
	})

	r.Get("/api/categories", productHandler.Categories)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error": "route not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error": "method not allowed"}`))
	})

	return r
}
