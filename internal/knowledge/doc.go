// Package knowledge implements the FAQ knowledge base: embedding generation
// via a Genkit embedder and vector similarity search over PostgreSQL with
// pgvector.
//
// Documents are immutable once ingested. Re-ingestion replaces the store
// contents inside a single transaction, so concurrent readers never observe
// a transiently empty store.
package knowledge
