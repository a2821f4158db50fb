package config

import (
	"fmt"
	"os"
	"strings"
)

// Valid PostgreSQL SSL modes.
var validSSLModes = map[string]struct{}{
	"disable":     {},
	"allow":       {},
	"prefer":      {},
	"require":     {},
	"verify-ca":   {},
	"verify-full": {},
}

// Validate checks all configuration values and fails fast with a sentinel
// error wrapped with context.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ModelName) == "" {
		return fmt.Errorf("%w: model name must not be empty", ErrInvalidModelName)
	}
	if strings.TrimSpace(c.EmbedderModel) == "" {
		return fmt.Errorf("%w: embedder model must not be empty", ErrInvalidEmbedderModel)
	}
	if c.EmbedderDim <= 0 || c.EmbedderDim > 8192 {
		return fmt.Errorf("%w: got %d, want 1-8192", ErrInvalidEmbedderDimension, c.EmbedderDim)
	}

	if c.TopK < 1 || c.TopK > 100 {
		return fmt.Errorf("%w: got %d, want 1-100", ErrInvalidTopK, c.TopK)
	}
	if c.CandidatePool < c.TopK {
		return fmt.Errorf("%w: got %d, want >= top_k (%d)", ErrInvalidCandidatePool, c.CandidatePool, c.TopK)
	}
	if c.MaxHistoryTurns < 0 || c.MaxHistoryTurns > 1000 {
		return fmt.Errorf("%w: got %d, want 0-1000", ErrInvalidHistoryTurns, c.MaxHistoryTurns)
	}

	if strings.TrimSpace(c.PostgresHost) == "" {
		return fmt.Errorf("%w: host must not be empty", ErrInvalidPostgresHost)
	}
	if c.PostgresPort < 1 || c.PostgresPort > 65535 {
		return fmt.Errorf("%w: got %d, want 1-65535", ErrInvalidPostgresPort, c.PostgresPort)
	}
	if strings.TrimSpace(c.PostgresDBName) == "" {
		return fmt.Errorf("%w: database name must not be empty", ErrInvalidPostgresDBName)
	}
	if _, ok := validSSLModes[c.PostgresSSLMode]; !ok {
		return fmt.Errorf("%w: got %q", ErrInvalidPostgresSSLMode, c.PostgresSSLMode)
	}

	return nil
}

// ValidateServe performs the additional checks serve and ingest modes need.
// The Gemini API key is consumed by the Genkit plugin directly, so only its
// presence is verified here.
func (c *Config) ValidateServe() error {
	if os.Getenv("GEMINI_API_KEY") == "" {
		return fmt.Errorf("%w: GEMINI_API_KEY environment variable is required", ErrMissingAPIKey)
	}
	return nil
}
