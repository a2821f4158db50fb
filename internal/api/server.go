// Package api provides the JSON HTTP transport over the RAG core.
//
// The transport owns request validation, history sanitization, and the
// mapping of pipeline failures to structured error responses; the core
// packages stay transport-agnostic.
package api

import (
	"errors"
	"log/slog"
	"net/http"
)

// ServerConfig contains configuration for creating the API server.
type ServerConfig struct {
	Logger          *slog.Logger
	Pipeline        Answerer   // Required
	Seeder          SeedRunner // Optional: nil disables the ingestion endpoint
	MaxHistoryTurns int        // Turns kept per request (0 = default 10)
	CORSOrigins     []string   // Allowed origins for CORS
	TrustProxy      bool       // Trust X-Real-IP/X-Forwarded-For headers
	RateBurst       int        // Rate limiter burst size per IP (0 = default 60)
}

// Server is the JSON API HTTP server.
type Server struct {
	handler http.Handler
}

// NewServer creates a new API server with all routes configured.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Pipeline == nil {
		return nil, errors.New("pipeline is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	maxTurns := cfg.MaxHistoryTurns
	if maxTurns <= 0 {
		maxTurns = 10
	}

	ch := &chatHandler{
		pipeline:        cfg.Pipeline,
		maxHistoryTurns: maxTurns,
		logger:          logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", health)
	mux.HandleFunc("POST /api/chat", ch.send)

	if cfg.Seeder != nil {
		ih := &ingestHandler{seeder: cfg.Seeder, logger: logger}
		mux.HandleFunc("POST /api/ingest-docs", ih.run)
	} else {
		logger.Warn("seeder not configured, ingestion endpoint disabled")
	}

	burst := cfg.RateBurst
	if burst <= 0 {
		burst = 60
	}
	rl := newRateLimiter(1.0, burst)

	// Middleware stack (outermost first):
	//   Recovery → RequestID → Logging → CORS → RateLimit → Routes
	// RequestID must be before Logging so request_id is available in log
	// attributes. CORS must be before RateLimit so preflight OPTIONS gets
	// proper CORS headers.
	var handler http.Handler = mux
	handler = rateLimitMiddleware(rl, cfg.TrustProxy, logger)(handler)
	handler = corsMiddleware(cfg.CORSOrigins)(handler)
	handler = loggingMiddleware(logger)(handler)
	handler = requestIDMiddleware()(handler)
	handler = recoveryMiddleware(logger)(handler)

	return &Server{handler: handler}, nil
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}
