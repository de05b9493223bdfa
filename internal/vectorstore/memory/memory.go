// Package memory implements an in-memory vector store using brute-force
// cosine search. State does not survive the process; it backs tests and
// throwaway runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"rag-assistant/internal/domain"
	"rag-assistant/internal/vectorstore"
)

// Ensure Store implements the interface.
var _ domain.VectorStore = (*Store)(nil)

type record struct {
	id        string
	text      string
	metadata  map[string]string
	embedding []float64
}

// Store keeps records in insertion order; adding an existing ID overwrites
// the prior record in place.
type Store struct {
	mu      sync.RWMutex
	byID    map[string]int
	records []record
}

func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// Add appends records from the four parallel slices.
func (s *Store) Add(_ context.Context, ids, texts []string, metadatas []map[string]string, embeddings [][]float64) error {
	if len(ids) != len(texts) || len(ids) != len(metadatas) || len(ids) != len(embeddings) {
		return domain.ErrLengthMismatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range ids {
		rec := record{id: id, text: texts[i], metadata: metadatas[i], embedding: embeddings[i]}
		if at, ok := s.byID[id]; ok {
			s.records[at] = rec
			continue
		}
		s.byID[id] = len(s.records)
		s.records = append(s.records, rec)
	}
	return nil
}

// Search returns the topK nearest records by cosine distance.
func (s *Store) Search(_ context.Context, embedding []float64, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		topK = 5
	}
	results := make([]domain.SearchResult, 0, len(s.records))
	for _, rec := range s.records {
		results = append(results, domain.SearchResult{
			ID:       rec.id,
			Text:     rec.text,
			Metadata: rec.metadata,
			Distance: vectorstore.CosineDistance(embedding, rec.embedding),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// Count reports the number of stored records.
func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error { return nil }
