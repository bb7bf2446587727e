// Package server provides the HTTP REST API over the analysis core. It is a
// thin adapter: requests carry text and structured inputs, responses carry the
// profiles, scores, and reports the core computes in-process.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jmorgan/talentmatch/internal/extract"
	"github.com/jmorgan/talentmatch/internal/match"
	"github.com/jmorgan/talentmatch/internal/speech"
	"github.com/jmorgan/talentmatch/internal/taxonomy"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *taxonomy.Store
	extractor  *extract.Extractor
	analyzer   *speech.Analyzer
	scorer     *match.Scorer
	validate   *validator.Validate
	log        *zap.Logger
}

// Config holds server configuration
type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Store        *taxonomy.Store
	Extractor    *extract.Extractor
	Logger       *zap.Logger
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("taxonomy store is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	extractor := cfg.Extractor
	if extractor == nil {
		extractor = extract.New(cfg.Store)
	}

	s := &Server{
		store:     cfg.Store,
		extractor: extractor,
		analyzer:  speech.New(cfg.Store),
		scorer:    match.New(cfg.Store),
		validate:  validator.New(),
		log:       cfg.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/analyze/resume", s.handleAnalyzeResume)
	mux.HandleFunc("POST /v1/analyze/communication", s.handleAnalyzeCommunication)
	mux.HandleFunc("POST /v1/match", s.handleMatch)
	mux.HandleFunc("POST /v1/match/batch", s.handleMatchBatch)

	mux.HandleFunc("GET /v1/taxonomy/industries", s.handleListIndustries)
	mux.HandleFunc("GET /v1/taxonomy/stats", s.handleTaxonomyStats)
	mux.HandleFunc("POST /v1/taxonomy/skills", s.handleAddSkills)
	mux.HandleFunc("POST /v1/taxonomy/job-titles", s.handleAddJobTitles)
	mux.HandleFunc("POST /v1/taxonomy/certifications", s.handleAddCertifications)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests and blocks until an interrupt or
// termination signal triggers graceful shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.log.Info("server stopped")
	return nil
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging logs each request with its duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
