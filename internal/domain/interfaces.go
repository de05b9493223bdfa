package domain

import (
	"context"
	"errors"
)

// ErrNoCredentials indicates that no LLM provider credential was found in
// the environment. This is fatal at startup and never retried.
var ErrNoCredentials = errors.New("no LLM API key configured")

// ErrLengthMismatch indicates that the parallel slices passed to a vector
// store write are not of equal length.
var ErrLengthMismatch = errors.New("ids, texts, metadatas and embeddings must have equal length")

// Document is a raw text loaded from a file. It exists only during
// ingestion; only its chunks are persisted.
type Document struct {
	Content  string
	Metadata map[string]string
}

// SearchResult is a retrieved chunk with its distance to the query vector.
// Smaller distance means closer.
type SearchResult struct {
	ID       string
	Text     string
	Metadata map[string]string
	Distance float64
}

// Embedder converts text into fixed-dimension numeric vectors. The same
// instance must be used for indexing and querying, since vectors from
// different models are not comparable.
type Embedder interface {
	Name() string
	Dimension() int
	EmbedDocuments(ctx context.Context, texts []string) ([][]float64, error)
	EmbedQuery(ctx context.Context, text string) ([]float64, error)
}

// Chunker splits document content into bounded, overlapping substrings.
type Chunker interface {
	Chunk(content string) []string
}

// VectorStore persists chunk records and supports nearest-neighbor search.
type VectorStore interface {
	// Add appends records. The four slices are parallel; a length mismatch
	// returns ErrLengthMismatch. A duplicate ID overwrites the prior record.
	Add(ctx context.Context, ids, texts []string, metadatas []map[string]string, embeddings [][]float64) error

	// Search returns the topK nearest records by cosine distance,
	// nearest-first. An empty store yields an empty slice, not an error.
	Search(ctx context.Context, embedding []float64, topK int) ([]SearchResult, error)

	// Count reports the number of stored records.
	Count(ctx context.Context) (int64, error)

	Close() error
}

// Summarizer produces a brief summary of the provided text.
type Summarizer interface {
	Summarize(text string, maxSentences int) (string, error)
}

// Assistant defines the operations exposed by the application core.
type Assistant interface {
	AddDocuments(ctx context.Context, docs []Document) (int, error)
	Retrieve(ctx context.Context, question string, topK int) ([]SearchResult, error)
	Answer(ctx context.Context, question string, topK int) (string, error)
}
