package api

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// SeedRunner reseeds the knowledge base and reports how many documents were
// ingested.
type SeedRunner interface {
	Seed(ctx context.Context) (int, error)
}

// ingestHandler serves the knowledge base reseeding endpoint.
// Single-flight: only one ingestion may run at a time.
type ingestHandler struct {
	seeder  SeedRunner
	running atomic.Bool
	logger  *slog.Logger
}

// ingestResponse is the POST /api/ingest-docs success body.
type ingestResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// run handles POST /api/ingest-docs.
func (h *ingestHandler) run(w http.ResponseWriter, r *http.Request) {
	if !h.running.CompareAndSwap(false, true) {
		WriteError(w, http.StatusConflict, "ingestion_in_progress", "an ingestion is already running")
		return
	}
	defer h.running.Store(false)

	logger := h.logger.With("request_id", requestIDFromContext(r.Context()))

	count, err := h.seeder.Seed(r.Context())
	if err != nil {
		logger.Error("ingestion failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "ingestion_failed", "failed to ingest documents")
		return
	}

	WriteJSON(w, http.StatusOK, ingestResponse{Message: "Ingestion complete", Count: count})
}
