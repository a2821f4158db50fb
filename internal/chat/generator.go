// Package chat implements resilient answer generation: a Genkit model call
// wrapped in a bounded-retry state machine with an error taxonomy mapped to
// user-safe messages.
package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
)

// fallbackMessage is returned when the model produces an empty response.
// An empty success is not a failure, so it gets apologetic text rather than
// an error.
const fallbackMessage = "I'm sorry, I couldn't generate a response."

// generateFunc is the single model call underneath the retry machinery.
// Factored out so tests can drive the state machine with stubs.
type generateFunc func(ctx context.Context, prompt string) (string, error)

// Config contains the required parameters for a Generator.
type Config struct {
	Genkit    *genkit.Genkit
	ModelName string      // Provider-qualified or bare (bare names get the googleai/ prefix)
	Logger    *slog.Logger
	Retry     RetryConfig // Zero value uses DefaultRetryConfig
}

// Generator produces answers from assembled prompts.
//
// Generator is stateless per call and safe for concurrent use.
type Generator struct {
	generate generateFunc
	retry    RetryConfig
	logger   *slog.Logger
}

// New creates a Generator backed by genkit.Generate.
func New(cfg Config) (*Generator, error) {
	if cfg.Genkit == nil {
		return nil, errors.New("genkit instance is required")
	}
	if strings.TrimSpace(cfg.ModelName) == "" {
		return nil, errors.New("model name is required")
	}

	modelName := cfg.ModelName
	if !strings.Contains(modelName, "/") {
		modelName = "googleai/" + modelName
	}

	fn := func(ctx context.Context, prompt string) (string, error) {
		resp, err := genkit.Generate(ctx, cfg.Genkit,
			ai.WithPrompt(prompt),
			ai.WithModelName(modelName),
		)
		if err != nil {
			return "", err
		}
		text := resp.Text()
		if strings.TrimSpace(text) == "" {
			return fallbackMessage, nil
		}
		return text, nil
	}

	return newGenerator(fn, cfg.Retry, cfg.Logger), nil
}

// newGenerator wires a generate function into the retry machinery.
// Split from New so tests can inject failing stubs.
func newGenerator(fn generateFunc, retry RetryConfig, logger *slog.Logger) *Generator {
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig()
	}
	if retry.BackoffUnit <= 0 {
		retry.BackoffUnit = DefaultRetryConfig().BackoffUnit
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{generate: fn, retry: retry, logger: logger}
}

// Generate invokes the model with the assembled prompt under the retry
// policy. On terminal failure the returned error is a *GenerationError
// carrying the classified kind and a user-safe message.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.generateWithRetry(ctx, prompt)
}
