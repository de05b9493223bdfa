// Package assistant wires the chunker, embedder, vector store and LLM
// client into the two operations the application exposes: ingesting
// documents and answering questions.
package assistant

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"rag-assistant/internal/domain"
	"rag-assistant/internal/llm"
)

// DefaultTopK is the number of chunks retrieved per question when the
// caller does not specify one.
const DefaultTopK = 3

// Ensure Assistant implements the interface.
var _ domain.Assistant = (*Assistant)(nil)

// IDFunc derives a chunk ID from its parent document, chunk index and
// chunk text.
type IDFunc func(doc domain.Document, index int, text string) string

// ContentHashID derives the ID from the document source and the chunk's
// index and text. Re-ingesting an unchanged document therefore reproduces
// the same IDs, and with the store's overwrite-on-conflict semantics
// ingestion is idempotent.
func ContentHashID(doc domain.Document, index int, text string) string {
	h := sha256.New()
	h.Write([]byte(doc.Metadata["source"]))
	fmt.Fprintf(h, "#%d#", index)
	h.Write([]byte(text))
	return "chunk_" + hex.EncodeToString(h.Sum(nil))[:16]
}

// Assistant orchestrates the write path (chunk, embed, store) and the
// query path (embed, search, prompt, complete). All components are
// constructed once and reused for the process lifetime.
type Assistant struct {
	chunker  domain.Chunker
	embedder domain.Embedder
	store    domain.VectorStore
	client   llm.Client
	idFn     IDFunc
}

// Option configures the assistant.
type Option func(*Assistant)

// WithIDFunc overrides the chunk ID generation strategy.
func WithIDFunc(fn IDFunc) Option {
	return func(a *Assistant) {
		if fn != nil {
			a.idFn = fn
		}
	}
}

func New(chunker domain.Chunker, embedder domain.Embedder, store domain.VectorStore, client llm.Client, opts ...Option) *Assistant {
	a := &Assistant{
		chunker:  chunker,
		embedder: embedder,
		store:    store,
		client:   client,
		idFn:     ContentHashID,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AddDocuments chunks each document, embeds all of its chunks in a single
// batch and stores the records. It grows the store and never removes
// existing records. Returns the number of chunks written.
func (a *Assistant) AddDocuments(ctx context.Context, docs []domain.Document) (int, error) {
	total := 0
	for _, doc := range docs {
		chunks := a.chunker.Chunk(doc.Content)
		if len(chunks) == 0 {
			continue
		}

		embeddings, err := a.embedder.EmbedDocuments(ctx, chunks)
		if err != nil {
			return total, fmt.Errorf("embed chunks: %w", err)
		}

		ids := make([]string, len(chunks))
		metadatas := make([]map[string]string, len(chunks))
		for i, text := range chunks {
			ids[i] = a.idFn(doc, i, text)
			metadatas[i] = doc.Metadata
		}

		if err := a.store.Add(ctx, ids, chunks, metadatas, embeddings); err != nil {
			return total, fmt.Errorf("store chunks: %w", err)
		}
		total += len(chunks)
	}
	return total, nil
}

// Retrieve embeds the question and returns the topK nearest chunks.
func (a *Assistant) Retrieve(ctx context.Context, question string, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}
	vec, err := a.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	results, err := a.store.Search(ctx, vec, topK)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return results, nil
}

// Answer retrieves context for the question, renders the prompt and
// returns the model's completion verbatim.
func (a *Assistant) Answer(ctx context.Context, question string, topK int) (string, error) {
	results, err := a.Retrieve(ctx, question, topK)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(results))
	for i, r := range results {
		texts[i] = r.Text
	}
	prompt := renderPrompt(strings.Join(texts, "\n"), question)

	answer, err := a.client.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}
	return answer, nil
}
