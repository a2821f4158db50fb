package ingest

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
)

type stubEmbedder struct {
	calls int
	err   error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return []float32{1, 0, 0}, nil
}

type stubStore struct {
	replaceCalls int
	gotDocs      []knowledge.Document
	err          error
}

func (s *stubStore) Replace(_ context.Context, docs []knowledge.Document) error {
	s.replaceCalls++
	s.gotDocs = docs
	return s.err
}

// fastLimiter removes pacing so unit tests run instantly.
func fastLimiter() *rate.Limiter {
	return rate.NewLimiter(rate.Inf, 1)
}

func TestSeedDefaultCorpus(t *testing.T) {
	t.Parallel()

	embedder := &stubEmbedder{}
	store := &stubStore{}
	s, err := New(Config{Embedder: embedder, Store: store, Limiter: fastLimiter()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	count, err := s.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	if count != len(DefaultFAQs) {
		t.Errorf("count = %d, want %d", count, len(DefaultFAQs))
	}
	if embedder.calls != len(DefaultFAQs) {
		t.Errorf("embed calls = %d, want one per FAQ", embedder.calls)
	}
	if store.replaceCalls != 1 {
		t.Errorf("Replace calls = %d, want exactly 1 (atomic swap)", store.replaceCalls)
	}
	if len(store.gotDocs) != len(DefaultFAQs) {
		t.Fatalf("documents passed to Replace = %d, want %d", len(store.gotDocs), len(DefaultFAQs))
	}

	seen := make(map[string]bool)
	for i, doc := range store.gotDocs {
		if doc.ID == "" {
			t.Errorf("doc %d has empty ID", i)
		}
		if seen[doc.ID] {
			t.Errorf("duplicate document ID %q", doc.ID)
		}
		seen[doc.ID] = true
		if doc.Content != DefaultFAQs[i].Content {
			t.Errorf("doc %d content mismatch", i)
		}
		if doc.Category != DefaultFAQs[i].Category {
			t.Errorf("doc %d category mismatch", i)
		}
		if len(doc.Embedding) == 0 {
			t.Errorf("doc %d missing embedding", i)
		}
	}
}

func TestSeedCustomCorpus(t *testing.T) {
	t.Parallel()

	faqs := []FAQ{
		{Category: "Test", Content: "first"},
		{Category: "Test", Content: "second"},
	}

	store := &stubStore{}
	s, err := New(Config{Embedder: &stubEmbedder{}, Store: store, FAQs: faqs, Limiter: fastLimiter()})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	count, err := s.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestSeedEmbeddingFailureLeavesStoreUntouched(t *testing.T) {
	t.Parallel()

	embedErr := errors.New("quota exceeded")
	store := &stubStore{}
	s, err := New(Config{
		Embedder: &stubEmbedder{err: embedErr},
		Store:    store,
		Limiter:  fastLimiter(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := s.Seed(context.Background()); !errors.Is(err, embedErr) {
		t.Fatalf("Seed() error = %v, want wrapped embed error", err)
	}
	if store.replaceCalls != 0 {
		t.Errorf("Replace called %d times after embed failure, want 0", store.replaceCalls)
	}
}

func TestSeedReplaceFailure(t *testing.T) {
	t.Parallel()

	storeErr := errors.New("db down")
	s, err := New(Config{
		Embedder: &stubEmbedder{},
		Store:    &stubStore{err: storeErr},
		Limiter:  fastLimiter(),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if _, err := s.Seed(context.Background()); !errors.Is(err, storeErr) {
		t.Errorf("Seed() error = %v, want wrapped store error", err)
	}
}

func TestSeedPacesEmbeddingCalls(t *testing.T) {
	t.Parallel()

	faqs := []FAQ{
		{Category: "Test", Content: "one"},
		{Category: "Test", Content: "two"},
		{Category: "Test", Content: "three"},
	}

	const interval = 20 * time.Millisecond
	s, err := New(Config{
		Embedder: &stubEmbedder{},
		Store:    &stubStore{},
		FAQs:     faqs,
		Limiter:  rate.NewLimiter(rate.Every(interval), 1),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	start := time.Now()
	if _, err := s.Seed(context.Background()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	elapsed := time.Since(start)

	// First call is immediate, the remaining two wait one interval each.
	if elapsed < 2*interval {
		t.Errorf("elapsed = %v, want at least %v of pacing", elapsed, 2*interval)
	}
}

func TestSeedCanceled(t *testing.T) {
	t.Parallel()

	store := &stubStore{}
	s, err := New(Config{
		Embedder: &stubEmbedder{},
		Store:    store,
		Limiter:  rate.NewLimiter(rate.Every(time.Minute), 1),
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	if _, err := s.Seed(ctx); err == nil {
		t.Fatal("Seed() succeeded despite cancellation")
	}
	if store.replaceCalls != 0 {
		t.Errorf("Replace called after cancellation, want untouched store")
	}
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	if _, err := New(Config{Store: &stubStore{}}); err == nil {
		t.Error("New() without embedder succeeded")
	}
	if _, err := New(Config{Embedder: &stubEmbedder{}}); err == nil {
		t.Error("New() without store succeeded")
	}
}
