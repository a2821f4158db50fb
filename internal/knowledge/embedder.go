package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/ai"
)

// Embedder converts text into fixed-dimension vectors using a Genkit
// ai.Embedder. Each call is one network request to the embedding model; there
// is no caching here.
//
// Embedder is safe for concurrent use.
type Embedder struct {
	embedder ai.Embedder
	dim      int
	logger   *slog.Logger
}

// NewEmbedder creates an Embedder that validates every returned vector
// against the expected dimension.
func NewEmbedder(embedder ai.Embedder, dim int, logger *slog.Logger) *Embedder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Embedder{embedder: embedder, dim: dim, logger: logger}
}

// Dimension returns the configured vector dimension.
func (e *Embedder) Dimension() int { return e.dim }

// Embed converts text into a vector of the configured dimension.
// A provider response without a vector is an error, never a zero vector.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.embedder.Embed(ctx, &ai.EmbedRequest{
		Input: []*ai.Document{ai.DocumentFromText(text, nil)},
	})
	if err != nil {
		return nil, fmt.Errorf("embed failed: %w", err)
	}

	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Embedding) == 0 {
		return nil, ErrNoEmbedding
	}

	vec := resp.Embeddings[0].Embedding
	if len(vec) != e.dim {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), e.dim)
	}

	e.logger.Debug("generated embedding", "text_length", len(text), "dimension", len(vec))
	return vec, nil
}
