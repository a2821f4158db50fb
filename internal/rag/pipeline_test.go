package rag

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
)

type stubEmbedder struct {
	vec []float32
	err error
}

func (s *stubEmbedder) Embed(_ context.Context, _ string) ([]float32, error) {
	return s.vec, s.err
}

type stubRetriever struct {
	results  []knowledge.Result
	err      error
	gotQuery []float32
}

func (s *stubRetriever) Search(_ context.Context, queryVector []float32, _ ...knowledge.SearchOption) ([]knowledge.Result, error) {
	s.gotQuery = queryVector
	return s.results, s.err
}

type stubGenerator struct {
	answer    string
	err       error
	gotPrompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.gotPrompt = prompt
	return s.answer, s.err
}

func newTestPipeline(t *testing.T, e Embedder, r Retriever, g Generator) *Pipeline {
	t.Helper()
	p, err := New(Config{Embedder: e, Retriever: r, Generator: g})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNewRequiresDependencies(t *testing.T) {
	t.Parallel()

	e := &stubEmbedder{}
	r := &stubRetriever{}
	g := &stubGenerator{}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing embedder", Config{Retriever: r, Generator: g}},
		{"missing retriever", Config{Embedder: e, Generator: g}},
		{"missing generator", Config{Embedder: e, Retriever: r}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := New(tt.cfg); err == nil {
				t.Error("New() succeeded, want error")
			}
		})
	}
}

func TestAnswerFlowsContextIntoPrompt(t *testing.T) {
	t.Parallel()

	embedder := &stubEmbedder{vec: []float32{0.1, 0.2, 0.3}}
	retriever := &stubRetriever{results: []knowledge.Result{
		{Content: "Cimba.AI is an AI-powered analytics platform.", Score: 0.92},
		{Content: "The Starter plan costs $49 per month.", Score: 0.81},
	}}
	generator := &stubGenerator{answer: "Cimba.AI is an analytics platform."}

	p := newTestPipeline(t, embedder, retriever, generator)

	resp, err := p.Answer(context.Background(), "What is Cimba?", nil)
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if resp.Answer != "Cimba.AI is an analytics platform." {
		t.Errorf("Answer = %q", resp.Answer)
	}
	if len(resp.Context) != 2 {
		t.Fatalf("Context length = %d, want 2", len(resp.Context))
	}
	if resp.Context[0] != "Cimba.AI is an AI-powered analytics platform." {
		t.Errorf("Context[0] = %q", resp.Context[0])
	}

	if len(retriever.gotQuery) != 3 {
		t.Errorf("retriever received %d-dim vector, want 3", len(retriever.gotQuery))
	}
	if !strings.Contains(generator.gotPrompt, "The Starter plan costs $49 per month.") {
		t.Error("retrieved document missing from prompt")
	}
	if !strings.Contains(generator.gotPrompt, "USER QUERY:\nWhat is Cimba?") {
		t.Error("query missing from prompt")
	}
}

func TestAnswerHistoryReachesPrompt(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{answer: "$49 per month."}
	p := newTestPipeline(t,
		&stubEmbedder{vec: []float32{1}},
		&stubRetriever{},
		generator,
	)

	history := []Turn{
		{Role: RoleUser, Content: "Tell me about the Starter plan"},
		{Role: RoleAssistant, Content: "The Starter plan covers basic analytics."},
	}

	if _, err := p.Answer(context.Background(), "how much is it?", history); err != nil {
		t.Fatalf("Answer() error = %v", err)
	}

	if !strings.Contains(generator.gotPrompt, "ASSISTANT: The Starter plan covers basic analytics.") {
		t.Error("history turn missing from prompt")
	}
}

func TestAnswerEmptyRetrievalProceeds(t *testing.T) {
	t.Parallel()

	generator := &stubGenerator{answer: "I cannot find that information in the current documentation."}
	p := newTestPipeline(t,
		&stubEmbedder{vec: []float32{1}},
		&stubRetriever{results: nil},
		generator,
	)

	resp, err := p.Answer(context.Background(), "Do you support quantum widgets?", nil)
	if err != nil {
		t.Fatalf("Answer() error = %v, want success on empty retrieval", err)
	}
	if len(resp.Context) != 0 {
		t.Errorf("Context length = %d, want 0", len(resp.Context))
	}
	if generator.gotPrompt == "" {
		t.Error("generator was not called")
	}
}

func TestAnswerStageErrors(t *testing.T) {
	t.Parallel()

	embedErr := errors.New("embed boom")
	searchErr := errors.New("search boom")
	genErr := errors.New("generate boom")

	tests := []struct {
		name      string
		embedder  Embedder
		retriever Retriever
		generator Generator
		wantErr   error
		wantMsg   string
	}{
		{
			name:      "embedding failure",
			embedder:  &stubEmbedder{err: embedErr},
			retriever: &stubRetriever{},
			generator: &stubGenerator{},
			wantErr:   embedErr,
			wantMsg:   "embedding query",
		},
		{
			name:      "retrieval failure",
			embedder:  &stubEmbedder{vec: []float32{1}},
			retriever: &stubRetriever{err: searchErr},
			generator: &stubGenerator{},
			wantErr:   searchErr,
			wantMsg:   "retrieving context",
		},
		{
			name:      "generation failure",
			embedder:  &stubEmbedder{vec: []float32{1}},
			retriever: &stubRetriever{},
			generator: &stubGenerator{err: genErr},
			wantErr:   genErr,
			wantMsg:   "generating answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := newTestPipeline(t, tt.embedder, tt.retriever, tt.generator)
			_, err := p.Answer(context.Background(), "q", nil)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Answer() error = %v, want wrapped %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q missing stage prefix %q", err, tt.wantMsg)
			}
		})
	}
}
