// Package app provides application initialization and dependency injection.
//
// App is the container that wires Genkit, the database pool, the knowledge
// store, and the RAG pipeline together. Every dependency is explicitly
// constructed and injected; there are no process-wide singletons, so each
// component can be substituted with a test double.
package app

import (
	"log/slog"

	"github.com/firebase/genkit/go/genkit"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Kavishdk/Customer-support-chatbot/internal/chat"
	"github.com/Kavishdk/Customer-support-chatbot/internal/config"
	"github.com/Kavishdk/Customer-support-chatbot/internal/ingest"
	"github.com/Kavishdk/Customer-support-chatbot/internal/knowledge"
	"github.com/Kavishdk/Customer-support-chatbot/internal/rag"
)

// App is the core application container.
type App struct {
	Config *config.Config

	Genkit    *genkit.Genkit
	DBPool    *pgxpool.Pool
	Embedder  *knowledge.Embedder
	Store     *knowledge.Store
	Generator *chat.Generator
	Pipeline  *rag.Pipeline
	Seeder    *ingest.Seeder

	logger *slog.Logger
}

// Close gracefully releases all resources.
func (a *App) Close() error {
	a.logger.Info("shutting down application")

	if a.DBPool != nil {
		a.DBPool.Close()
		a.logger.Debug("database pool closed")
	}

	return nil
}
