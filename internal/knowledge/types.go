package knowledge

import (
	"errors"
	"time"
)

var (
	// ErrNoEmbedding indicates the embedding provider returned no vector.
	ErrNoEmbedding = errors.New("no embedding returned")

	// ErrDimensionMismatch indicates a vector's dimension does not match the
	// store's configured dimension.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// Document is a knowledge base entry with its precomputed embedding.
type Document struct {
	ID        string
	Content   string
	Category  string
	Embedding []float32
	CreatedAt time.Time
}

// Result is a single search hit.
type Result struct {
	Content string
	Score   float32 // cosine similarity, higher is more similar
}

// SearchOption configures search behavior using the functional options pattern.
type SearchOption func(*searchConfig)

type searchConfig struct {
	topK          int
	candidatePool int
}

// WithTopK sets the maximum number of results to return. Default is 3.
func WithTopK(k int) SearchOption {
	return func(c *searchConfig) {
		c.topK = k
	}
}

// WithCandidatePool sets the wider pool of nearest neighbors considered
// before final ranking. Default is 100. The pool approximates true top-k
// over the ivfflat index; it is a recall/latency tradeoff, not an exactness
// guarantee.
func WithCandidatePool(n int) SearchOption {
	return func(c *searchConfig) {
		c.candidatePool = n
	}
}

func buildSearchConfig(opts []SearchOption) *searchConfig {
	cfg := &searchConfig{
		topK:          3,
		candidatePool: 100,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.candidatePool < cfg.topK {
		cfg.candidatePool = cfg.topK
	}
	return cfg
}
