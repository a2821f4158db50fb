package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kavishdk/Customer-support-chatbot/internal/chat"
	"github.com/Kavishdk/Customer-support-chatbot/internal/rag"
)

// maxRequestBody bounds chat request bodies at 1MB.
const maxRequestBody = 1 << 20

// Answerer runs one query through the RAG pipeline.
type Answerer interface {
	Answer(ctx context.Context, query string, history []rag.Turn) (*rag.Response, error)
}

// chatRequest is the POST /api/chat body.
type chatRequest struct {
	Query   string     `json:"query"`
	History []rag.Turn `json:"history"`
}

// chatHandler serves the chat endpoint.
type chatHandler struct {
	pipeline        Answerer
	maxHistoryTurns int
	logger          *slog.Logger
}

// send handles POST /api/chat.
func (h *chatHandler) send(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		WriteError(w, http.StatusBadRequest, "missing_query", "query is required")
		return
	}

	history := sanitizeHistory(req.History, h.maxHistoryTurns)

	resp, err := h.pipeline.Answer(r.Context(), req.Query, history)
	if err != nil {
		h.writeAnswerError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// writeAnswerError maps pipeline failures to structured error responses.
// Generation failures carry a classified kind and a user-safe message; any
// other failure (embedding, retrieval) surfaces as a generic 500.
func (h *chatHandler) writeAnswerError(w http.ResponseWriter, r *http.Request, err error) {
	logger := h.logger.With("request_id", requestIDFromContext(r.Context()))

	var genErr *chat.GenerationError
	if errors.As(err, &genErr) {
		logger.Error("answer generation failed",
			"kind", genErr.Kind,
			"attempts", genErr.Attempts,
			"error", err,
		)
		WriteError(w, statusForKind(genErr.Kind), genErr.Kind.String(), genErr.UserMessage())
		return
	}

	logger.Error("chat request failed", "error", err)
	WriteError(w, http.StatusInternalServerError, "internal_error", "failed to process chat request")
}

// statusForKind maps a generation failure category to an HTTP status.
func statusForKind(kind chat.ErrorKind) int {
	switch kind {
	case chat.KindRateLimited:
		return http.StatusTooManyRequests
	case chat.KindPermission:
		return http.StatusForbidden
	case chat.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// sanitizeHistory drops turns with roles the core does not accept (system
// turns included) and truncates to the last maxTurns. The core never
// truncates; that is this boundary's job.
func sanitizeHistory(history []rag.Turn, maxTurns int) []rag.Turn {
	filtered := make([]rag.Turn, 0, len(history))
	for _, turn := range history {
		if turn.Role != rag.RoleUser && turn.Role != rag.RoleAssistant {
			continue
		}
		filtered = append(filtered, turn)
	}
	if maxTurns > 0 && len(filtered) > maxTurns {
		filtered = filtered[len(filtered)-maxTurns:]
	}
	return filtered
}
