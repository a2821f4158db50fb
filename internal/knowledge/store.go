package knowledge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pgvector/pgvector-go"
)

// DB is the subset of pgxpool.Pool the store needs.
// Defined by the consumer so tests can substitute implementations.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// searchTimeout bounds vector search queries so a slow index scan cannot
// block a request indefinitely.
const searchTimeout = 10 * time.Second

// Store manages FAQ documents with vector similarity search over
// PostgreSQL + pgvector.
//
// Store is safe for concurrent use. Reads never lock; Replace serializes
// ingestion against readers via a single transaction.
type Store struct {
	db     DB
	dim    int
	logger *slog.Logger
}

// NewStore creates a Store. dim is the embedding dimension every document
// and query vector must match; it mirrors the vector(N) column in the schema.
func NewStore(db DB, dim int, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{db: db, dim: dim, logger: logger}
}

// Search returns up to top-k documents ordered by cosine similarity
// descending. A wider candidate pool is ranked first to approximate true
// top-k over the approximate index. An empty store yields an empty slice,
// not an error.
func (s *Store) Search(ctx context.Context, queryVector []float32, opts ...SearchOption) ([]Result, error) {
	if len(queryVector) != s.dim {
		return nil, fmt.Errorf("%w: query vector has %d dimensions, store expects %d",
			ErrDimensionMismatch, len(queryVector), s.dim)
	}

	cfg := buildSearchConfig(opts)

	queryCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	vec := pgvector.NewVector(queryVector)
	rows, err := s.db.Query(queryCtx, `
		SELECT content, 1 - (embedding <=> $1) AS score
		FROM (
			SELECT content, embedding
			FROM faq_documents
			ORDER BY embedding <=> $1
			LIMIT $2
		) candidates
		ORDER BY embedding <=> $1
		LIMIT $3`,
		vec, cfg.candidatePool, cfg.topK)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("search query timeout: %w", err)
		}
		return nil, fmt.Errorf("search failed: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0, cfg.topK)
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Content, &r.Score); err != nil {
			return nil, fmt.Errorf("scanning search row: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading search rows: %w", err)
	}

	s.logger.Debug("vector search completed", "results", len(results), "top_k", cfg.topK)
	return results, nil
}

// Ingest inserts a single pre-embedded document.
// The embedding dimension is validated before touching the database.
func (s *Store) Ingest(ctx context.Context, doc Document) error {
	if err := s.validate(doc); err != nil {
		return err
	}

	vec := pgvector.NewVector(doc.Embedding)
	_, err := s.db.Exec(ctx, `
		INSERT INTO faq_documents (id, content, category, embedding)
		VALUES ($1, $2, $3, $4)`,
		doc.ID, doc.Content, doc.Category, vec)
	if err != nil {
		return fmt.Errorf("ingesting document %q: %w", doc.ID, err)
	}

	s.logger.Debug("ingested document", "id", doc.ID, "category", doc.Category)
	return nil
}

// Clear removes all documents from the store.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM faq_documents`); err != nil {
		return fmt.Errorf("clearing knowledge base: %w", err)
	}
	s.logger.Debug("cleared knowledge base")
	return nil
}

// Replace atomically swaps the store contents for docs: clear plus bulk
// insert inside one transaction. Concurrent readers keep seeing the previous
// snapshot until commit, so the store is never observably empty mid-ingest.
func (s *Store) Replace(ctx context.Context, docs []Document) (err error) {
	for _, doc := range docs {
		if err := s.validate(doc); err != nil {
			return err
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning ingestion transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
				s.logger.Warn("rolling back ingestion", "error", rbErr)
			}
		}
	}()

	if _, err = tx.Exec(ctx, `DELETE FROM faq_documents`); err != nil {
		return fmt.Errorf("clearing knowledge base: %w", err)
	}

	for _, doc := range docs {
		vec := pgvector.NewVector(doc.Embedding)
		if _, err = tx.Exec(ctx, `
			INSERT INTO faq_documents (id, content, category, embedding)
			VALUES ($1, $2, $3, $4)`,
			doc.ID, doc.Content, doc.Category, vec); err != nil {
			return fmt.Errorf("inserting document %q: %w", doc.ID, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing ingestion: %w", err)
	}

	s.logger.Info("knowledge base replaced", "documents", len(docs))
	return nil
}

// Count returns the number of documents in the store.
func (s *Store) Count(ctx context.Context) (int, error) {
	rows, err := s.db.Query(ctx, `SELECT count(*) FROM faq_documents`)
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	defer rows.Close()

	var count int64
	if rows.Next() {
		if err := rows.Scan(&count); err != nil {
			return 0, fmt.Errorf("scanning count: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("reading count: %w", err)
	}
	return int(count), nil
}

func (s *Store) validate(doc Document) error {
	if doc.ID == "" {
		return fmt.Errorf("document ID must not be empty")
	}
	if doc.Content == "" {
		return fmt.Errorf("document %q: content must not be empty", doc.ID)
	}
	if len(doc.Embedding) != s.dim {
		return fmt.Errorf("%w: document %q has %d dimensions, store expects %d",
			ErrDimensionMismatch, doc.ID, len(doc.Embedding), s.dim)
	}
	return nil
}
