// Package server wires the analysis pipelines, the kifu validator and the
// detection flow into the HTTP surface.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tatsujin/kifu-api/internal/analysis"
	"github.com/tatsujin/kifu-api/internal/config"
	"github.com/tatsujin/kifu-api/internal/engine"
	"github.com/tatsujin/kifu-api/internal/vision"
)

// maxBodyBytes limits the size of incoming JSON request bodies.
const maxBodyBytes = 10 * 1024 * 1024 // 10 MB

// Server is the main HTTP server. Collaborator fields are exported so
// tests can swap in stubs.
type Server struct {
	Config   *config.ServerConfig
	Analyzer *analysis.Analyzer
	Detector vision.Detector

	httpServer *http.Server
}

// New creates a server with its collaborators wired to the configured
// sidecars and all routes registered.
func New(cfg *config.ServerConfig) *Server {
	runtime := engine.NewClient(cfg.RuntimeURL, cfg.Verbose)
	s := &Server{
		Config:   cfg,
		Analyzer: &analysis.Analyzer{Calc: runtime, Solver: runtime},
		Detector: vision.NewClient(cfg.DetectorURL, cfg.Verbose),
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	return s
}

// Handler builds the route tree. Handlers read the collaborator fields at
// request time, so stubbing after New still takes effect.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Use(requestIDMiddleware)
	r.Use(verboseMiddleware(s.Config))

	r.Get("/health", s.handleHealth)
	r.Get("/kifu/sample", s.handleKifuSample)
	r.Post("/kifu/validate", s.handleValidateKifu)
	r.Post("/analysis/hand", s.handleAnalyzeHand)
	r.Post("/analysis/tenpai", s.handleAnalyzeTenpai)
	r.Post("/analysis/tiles-from-image", s.handleTilesFromImage)
	r.Post("/api/capture", s.handleCapture)

	return r
}

// ListenAndServe starts the server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
