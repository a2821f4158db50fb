package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"

	"github.com/Kavishdk/Customer-support-chatbot/db"
	"github.com/Kavishdk/Customer-support-chatbot/internal/chat"
	"github.com/Kavishdk/Customer-support-chatbot/internal/config"
	"github.com/Kavishdk/Customer-support-chatbot/internal/database"
	"github.com/Kavishdk/Customer-support-chatbot/internal/ingest"
	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
	"github.com/Kavishdk/Customer-support-chatbot/internal/rag"
)

// Setup creates and initializes the application.
// Returns an App with embedded cleanup; call Close() to release.
func Setup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (_ *App, retErr error) {
	if logger == nil {
		logger = slog.Default()
	}
	a := &App{Config: cfg, logger: logger}

	// On error, clean up everything already initialized.
	defer func() {
		if retErr != nil {
			if err := a.Close(); err != nil {
				logger.Warn("cleanup during setup failure", "error", err)
			}
		}
	}()

	if err := db.Migrate(cfg.PostgresURL()); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.PostgresURL())
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	a.DBPool = pool

	// GEMINI_API_KEY is read by the plugin directly.
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	a.Genkit = g

	aiEmbedder := googlegenai.GoogleAIEmbedder(g, cfg.EmbedderModel)
	if aiEmbedder == nil {
		return nil, fmt.Errorf("embedder %q not found", cfg.EmbedderModel)
	}
	a.Embedder = knowledge.NewEmbedder(aiEmbedder, cfg.EmbedderDim, logger.With("component", "embedder"))

	a.Store = knowledge.NewStore(pool, cfg.EmbedderDim, logger.With("component", "store"))

	generator, err := chat.New(chat.Config{
		Genkit:    g,
		ModelName: cfg.ModelName,
		Logger:    logger.With("component", "generator"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating generator: %w", err)
	}
	a.Generator = generator

	pipeline, err := rag.New(rag.Config{
		Embedder:  a.Embedder,
		Retriever: a.Store,
		Generator: a.Generator,
		Logger:    logger.With("component", "pipeline"),
		TopK:      cfg.TopK,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}
	a.Pipeline = pipeline

	seeder, err := ingest.New(ingest.Config{
		Embedder: a.Embedder,
		Store:    a.Store,
		Logger:   logger.With("component", "seeder"),
	})
	if err != nil {
		return nil, fmt.Errorf("creating seeder: %w", err)
	}
	a.Seeder = seeder

	logger.Info("application initialized",
		"model", cfg.ModelName,
		"embedder", cfg.EmbedderModel,
		"dimension", cfg.EmbedderDim,
	)

	return a, nil
}
