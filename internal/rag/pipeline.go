package rag

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
)

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever performs nearest-neighbor search over the knowledge base.
type Retriever interface {
	Search(ctx context.Context, queryVector []float32, opts ...knowledge.SearchOption) ([]knowledge.Result, error)
}

// Generator produces an answer from an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Response is the pipeline's sole output: the generated answer plus the
// retrieved documents for provenance display.
type Response struct {
	Answer  string   `json:"answer"`
	Context []string `json:"context"`
}

// Config contains the pipeline's injected dependencies.
type Config struct {
	Embedder  Embedder
	Retriever Retriever
	Generator Generator
	Logger    *slog.Logger
	TopK      int // Documents retrieved per query (default 3)
}

// Pipeline sequences embed → retrieve → assemble → generate.
//
// Pipeline is stateless per request and safe for concurrent use; the only
// shared collaborator is the read-mostly knowledge store behind Retriever.
type Pipeline struct {
	embedder  Embedder
	retriever Retriever
	generator Generator
	logger    *slog.Logger
	topK      int
}

// New creates a Pipeline. All three stage dependencies are required.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if cfg.Retriever == nil {
		return nil, fmt.Errorf("retriever is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	topK := cfg.TopK
	if topK <= 0 {
		topK = 3
	}

	return &Pipeline{
		embedder:  cfg.Embedder,
		retriever: cfg.Retriever,
		generator: cfg.Generator,
		logger:    logger,
		topK:      topK,
	}, nil
}

// Answer runs one query through the pipeline. Every stage respects ctx, so a
// caller-supplied timeout or cancellation interrupts the request at any
// suspension point, including retry backoff inside the generator.
//
// Zero retrieval results are not an error: the pipeline proceeds with an
// empty context block and the model is expected to say it cannot find the
// information.
func (p *Pipeline) Answer(ctx context.Context, query string, history []Turn) (*Response, error) {
	start := time.Now()

	queryVector, err := p.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	results, err := p.retriever.Search(ctx, queryVector, knowledge.WithTopK(p.topK))
	if err != nil {
		return nil, fmt.Errorf("retrieving context: %w", err)
	}

	contextDocuments := make([]string, len(results))
	for i, r := range results {
		contextDocuments[i] = r.Content
	}

	prompt := BuildPrompt(query, contextDocuments, history)

	answer, err := p.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	p.logger.Debug("pipeline completed",
		"retrieved", len(results),
		"history_turns", len(history),
		"duration", time.Since(start),
	)

	return &Response{Answer: answer, Context: contextDocuments}, nil
}
