// Package hashing implements an offline feature-hashing embedder. Tokens
// are hashed into a fixed-dimension vector, so unlike a corpus-fitted
// vocabulary the mapping is stable across processes — vectors written to a
// persistent store remain comparable with query vectors from later runs.
package hashing

import (
	"context"
	"hash/fnv"
	"math"

	"rag-assistant/internal/domain"
	"rag-assistant/internal/text"
)

// Ensure Embedder implements the interface.
var _ domain.Embedder = (*Embedder)(nil)

// DefaultDimension is the vector dimensionality when none is configured.
const DefaultDimension = 384

// Embedder maps text to L2-normalized hashed bag-of-words vectors.
type Embedder struct {
	dimension int
}

func NewEmbedder(dimension int) *Embedder {
	if dimension <= 0 {
		dimension = DefaultDimension
	}
	return &Embedder{dimension: dimension}
}

// Name returns the identifier of this embedder implementation.
func (e *Embedder) Name() string { return "hashing" }

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// EmbedDocuments embeds each text, preserving input order.
func (e *Embedder) EmbedDocuments(_ context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, len(texts))
	for i, t := range texts {
		out[i] = e.embed(t)
	}
	return out, nil
}

// EmbedQuery embeds a single query string.
func (e *Embedder) EmbedQuery(_ context.Context, t string) ([]float64, error) {
	return e.embed(t), nil
}

func (e *Embedder) embed(t string) []float64 {
	vec := make([]float64, e.dimension)
	for _, tok := range text.Tokenize(t) {
		if text.IsStopword(tok) {
			continue
		}
		idx, sign := e.hash(tok)
		vec[idx] += sign
	}
	// L2 normalize
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// hash maps a token to a bucket index and a ±1 sign. The sign bit keeps
// colliding tokens from always reinforcing each other.
func (e *Embedder) hash(tok string) (int, float64) {
	h := fnv.New64a()
	_, _ = h.Write([]byte(tok))
	sum := h.Sum64()
	idx := int(sum % uint64(e.dimension))
	if sum&(1<<63) != 0 {
		return idx, -1
	}
	return idx, 1
}
