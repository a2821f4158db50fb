// Package ingest seeds the knowledge base: it embeds the bundled FAQ corpus
// and atomically replaces the store contents.
//
// Seeding is not latency-sensitive; embedding calls are paced to respect the
// provider's rate limits. The pacing lives here, in the ingestion
// collaborator, not in the core pipeline.
package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
)

// embedInterval is the pacing between embedding calls during seeding.
const embedInterval = 200 * time.Millisecond

// Embedder converts text into a fixed-dimension vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Store replaces the knowledge base contents atomically.
type Store interface {
	Replace(ctx context.Context, docs []knowledge.Document) error
}

// Seeder embeds a FAQ corpus and loads it into the knowledge store.
type Seeder struct {
	embedder Embedder
	store    Store
	limiter  *rate.Limiter
	logger   *slog.Logger
	faqs     []FAQ
}

// Config contains the seeder's dependencies.
type Config struct {
	Embedder Embedder
	Store    Store
	Logger   *slog.Logger
	FAQs     []FAQ         // Corpus to seed (nil = DefaultFAQs)
	Limiter  *rate.Limiter // Embedding pacing (nil = one call per 200ms)
}

// New creates a Seeder.
func New(cfg Config) (*Seeder, error) {
	if cfg.Embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	faqs := cfg.FAQs
	if faqs == nil {
		faqs = DefaultFAQs
	}
	limiter := cfg.Limiter
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Every(embedInterval), 1)
	}

	return &Seeder{
		embedder: cfg.Embedder,
		store:    cfg.Store,
		limiter:  limiter,
		logger:   logger,
		faqs:     faqs,
	}, nil
}

// Seed embeds every FAQ (paced) and swaps the store contents in one
// transaction. Returns the number of documents ingested.
//
// Cancellation during embedding aborts before the store is touched, leaving
// the previous contents intact.
func (s *Seeder) Seed(ctx context.Context) (int, error) {
	s.logger.Info("starting knowledge base ingestion", "documents", len(s.faqs))
	start := time.Now()

	docs := make([]knowledge.Document, 0, len(s.faqs))
	for _, faq := range s.faqs {
		if err := s.limiter.Wait(ctx); err != nil {
			return 0, fmt.Errorf("waiting for embedding slot: %w", err)
		}

		vec, err := s.embedder.Embed(ctx, faq.Content)
		if err != nil {
			return 0, fmt.Errorf("embedding %q document: %w", faq.Category, err)
		}

		docs = append(docs, knowledge.Document{
			ID:        uuid.NewString(),
			Content:   faq.Content,
			Category:  faq.Category,
			Embedding: vec,
		})
	}

	if err := s.store.Replace(ctx, docs); err != nil {
		return 0, fmt.Errorf("replacing knowledge base: %w", err)
	}

	s.logger.Info("ingestion complete", "documents", len(docs), "duration", time.Since(start))
	return len(docs), nil
}
