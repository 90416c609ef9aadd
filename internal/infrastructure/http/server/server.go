// Package server provides the HTTP server for the REST API
package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fridgechef/v1/internal/infrastructure/config"
	"github.com/fridgechef/v1/internal/infrastructure/http/handlers"
	"github.com/fridgechef/v1/internal/infrastructure/http/middleware"
	"github.com/fridgechef/v1/internal/ports/inbound"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"
)

// Server represents the HTTP server
type Server struct {
	config           *config.Config
	logger           *zap.Logger
	router           *chi.Mux
	server           *http.Server
	inventoryService inbound.InventoryService
	recipeService    inbound.RecipeService
}

// NewServer creates a new HTTP server instance
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	inventoryService inbound.InventoryService,
	recipeService inbound.RecipeService,
) *Server {
	s := &Server{
		config:           cfg,
		logger:           logger,
		inventoryService: inventoryService,
		recipeService:    recipeService,
	}

	s.router = s.setupRouter()

	s.server = &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           s.router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		MaxHeaderBytes:    1 << 20,
	}

	return s
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS())
	}
	r.Use(chimiddleware.Timeout(s.config.Server.RequestTimeout))
	r.Use(chimiddleware.Compress(5))
	r.Use(metrics.Handler())

	// Generated dish photos
	imageHandler := http.FileServer(http.Dir(s.config.Storage.LocalPath))
	r.Handle(s.config.Storage.PublicURL+"/*", http.StripPrefix(s.config.Storage.PublicURL+"/", imageHandler))

	// Prometheus scrape endpoint
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api", func(r chi.Router) {
		s.setupAPIRoutes(r)
	})

	return r
}

// setupAPIRoutes configures REST API routes
func (s *Server) setupAPIRoutes(r chi.Router) {
	inventoryHandlers := handlers.NewInventoryHandlers(s.inventoryService, s.logger)
	recipeHandlers := handlers.NewRecipeHandlers(s.recipeService, s.logger)

	// The suggestion and image endpoints fan out to the AI provider, so
	// they share a token bucket instead of the global limits.
	aiLimiter := rate.NewLimiter(
		rate.Limit(s.config.AI.SuggestionRate),
		s.config.AI.SuggestionBurst,
	)

	r.Route("/ingredients", func(r chi.Router) {
		r.Get("/", inventoryHandlers.ListIngredients)
		r.Post("/", inventoryHandlers.AddIngredient)
		r.Get("/expiring", inventoryHandlers.ExpiringIngredients)
		r.Get("/{id}", inventoryHandlers.GetIngredient)
		r.Patch("/{id}", inventoryHandlers.UpdateIngredient)
		r.Delete("/{id}", inventoryHandlers.RemoveIngredient)
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Get("/", recipeHandlers.ListRecipes)
		r.Get("/{id}", recipeHandlers.GetRecipe)
		r.Post("/{id}/cook", recipeHandlers.CookRecipe)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(aiLimiter))
			r.Post("/suggest", recipeHandlers.SuggestRecipes)
			r.Post("/{id}/generate-image", recipeHandlers.GenerateImage)
		})
	})

	r.Get("/history", recipeHandlers.History)
	r.Get("/stats", inventoryHandlers.Stats)
	r.Get("/health", recipeHandlers.HealthCheck)
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server",
		zap.String("address", s.server.Addr),
		zap.String("environment", s.config.App.Environment),
	)

	// Enable HTTP/2
	if err := http2.ConfigureServer(s.server, nil); err != nil {
		s.logger.Error("Failed to configure HTTP/2", zap.Error(err))
	}

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}
