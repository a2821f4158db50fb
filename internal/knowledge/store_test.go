package knowledge

import (
	"context"
	"errors"
	"testing"
)

func TestBuildSearchConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := buildSearchConfig(nil)
	if cfg.topK != 3 {
		t.Errorf("topK = %d, want 3", cfg.topK)
	}
	if cfg.candidatePool != 100 {
		t.Errorf("candidatePool = %d, want 100", cfg.candidatePool)
	}
}

func TestBuildSearchConfigOptions(t *testing.T) {
	t.Parallel()

	cfg := buildSearchConfig([]SearchOption{WithTopK(5), WithCandidatePool(50)})
	if cfg.topK != 5 {
		t.Errorf("topK = %d, want 5", cfg.topK)
	}
	if cfg.candidatePool != 50 {
		t.Errorf("candidatePool = %d, want 50", cfg.candidatePool)
	}
}

func TestBuildSearchConfigPoolClampedToTopK(t *testing.T) {
	t.Parallel()

	// The pool is a superset of the final result set; a pool smaller than
	// top-k would silently shrink results.
	cfg := buildSearchConfig([]SearchOption{WithTopK(10), WithCandidatePool(2)})
	if cfg.candidatePool != 10 {
		t.Errorf("candidatePool = %d, want clamped to 10", cfg.candidatePool)
	}
}

func TestSearchRejectsWrongDimension(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 768, nil)
	_, err := s.Search(context.Background(), []float32{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("Search() error = %v, want ErrDimensionMismatch", err)
	}
}

func TestValidateDocument(t *testing.T) {
	t.Parallel()

	s := NewStore(nil, 4, nil)
	goodVec := []float32{1, 2, 3, 4}

	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{"valid", Document{ID: "d1", Content: "text", Embedding: goodVec}, false},
		{"empty id", Document{Content: "text", Embedding: goodVec}, true},
		{"empty content", Document{ID: "d1", Embedding: goodVec}, true},
		{"wrong dimension", Document{ID: "d1", Content: "text", Embedding: []float32{1, 2}}, true},
		{"no embedding", Document{ID: "d1", Content: "text"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := s.validate(tt.doc)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestReplaceValidatesBeforeTransaction(t *testing.T) {
	t.Parallel()

	// An invalid document must fail before Begin is ever called; with a nil
	// DB a reached transaction would panic.
	s := NewStore(nil, 4, nil)
	err := s.Replace(context.Background(), []Document{
		{ID: "d1", Content: "ok", Embedding: []float32{1, 2, 3, 4}},
		{ID: "", Content: "bad", Embedding: []float32{1, 2, 3, 4}},
	})
	if err == nil {
		t.Fatal("Replace() succeeded with invalid document")
	}
}
