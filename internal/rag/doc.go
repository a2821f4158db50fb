// Package rag orchestrates the retrieval-augmented generation pipeline:
// embed the query, retrieve the most similar knowledge base documents,
// assemble the prompt, and generate an answer.
//
// The pipeline holds no per-request state; any number of requests can run
// concurrently, each a strictly sequential embed → retrieve → assemble →
// generate chain.
package rag
