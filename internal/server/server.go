package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"kingdom/internal/config"
	"kingdom/internal/core"
	"kingdom/internal/hashtags"
	"kingdom/internal/intelligence"
	"kingdom/internal/logger"
	"kingdom/internal/metrics"
	"kingdom/internal/store"
	"kingdom/internal/strategy"
)

// Deps are the services the API exposes. Store is optional; history routes
// answer 503 without it.
type Deps struct {
	Hashtags     *hashtags.Service
	Strategy     *strategy.Composer
	Intelligence *intelligence.Service
	Store        *store.Store
	Recorder     *metrics.Recorder
	Mode         core.Mode
}

// Server represents the HTTP server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	deps       Deps
	config     config.Server
}

// New creates a new HTTP server instance
func New(deps Deps, cfg config.Server) *Server {
	if deps.Mode == "" {
		deps.Mode = core.ModeFaith
	}

	s := &Server{
		router: chi.NewRouter(),
		deps:   deps,
		config: cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.httpServer = &http.Server{
		Addr:              cfg.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      90 * time.Second,
	}

	return s
}

// setupMiddleware configures middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger)
	s.router.Use(s.recordMetrics)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))
	s.router.Use(securityHeaders)

	if len(s.config.CORSOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.config.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}
}

// setupRoutes configures routes for the server
func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)
	s.router.Method(http.MethodGet, "/metrics", s.deps.Recorder.Handler())

	s.router.Route("/api", func(r chi.Router) {
		r.Route("/hashtags", func(r chi.Router) {
			r.Post("/", s.handlePersonalizedHashtags)
			r.Get("/trending", s.handleTrendingHashtags)
			r.Post("/analyze", s.handleAnalyzeHashtags)
		})

		r.Route("/content", func(r chi.Router) {
			r.Post("/ideas", s.handleContentIdeas)
			r.Post("/strategy", s.handleContentStrategy)
			r.Post("/analyze", s.handleAnalyzeContent)
			r.Post("/viral", s.handleViralPrediction)
			r.Post("/viral-ideas", s.handleViralIdeas)
			r.Post("/variations", s.handleVariations)
		})

		r.Route("/abtests", func(r chi.Router) {
			r.Get("/", s.handleListABTests)
			r.Post("/", s.handleCreateABTest)
			r.Get("/{id}", s.handleGetABTest)
			r.Post("/{id}/metrics", s.handleRecordABMetrics)
			r.Get("/{id}/result", s.handleABTestResult)
		})

		r.Route("/history/{userID}", func(r chi.Router) {
			r.Use(s.requireStore)
			r.Post("/posts", s.handleRecordPost)
			r.Get("/posts", s.handleListPosts)
			r.Get("/hashtags", s.handleListPerformance)
			r.Get("/report", s.handleHistoryReport)
		})
	})
}

// Start starts the HTTP server
func (s *Server) Start() error {
	logger.Info("Starting HTTP server", "addr", s.httpServer.Addr, "mode", string(s.deps.Mode), "store", s.deps.Store != nil)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed to start: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down HTTP server gracefully...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("HTTP server stopped")
	return nil
}

// Router returns the chi router instance (useful for testing)
func (s *Server) Router() *chi.Mux {
	return s.router
}
