// Package sqlite implements a persistent vector store backed by a local
// SQLite database. One collection maps to one table; search is an exact
// brute-force cosine scan, which is adequate at this corpus scale.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	_ "modernc.org/sqlite" // SQLite driver

	"rag-assistant/internal/domain"
	"rag-assistant/internal/vectorstore"
)

// Ensure Store implements the interface.
var _ domain.VectorStore = (*Store)(nil)

var collectionNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Store is a SQLite-backed vector store for a single collection.
type Store struct {
	db         *sql.DB
	collection string
}

// Open opens or creates the store at path for the named collection. It is
// idempotent: the directory, database and collection table are created on
// first use and reused afterwards, so data persists across restarts.
func Open(path, collection string) (*Store, error) {
	if !collectionNameRe.MatchString(collection) {
		return nil, fmt.Errorf("invalid collection name %q", collection)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, collection: collection}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureSchema() error {
	// Collection name is validated against an identifier pattern in Open,
	// so embedding it in the statement is safe.
	_, err := s.db.Exec(fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		id TEXT PRIMARY KEY,
		text TEXT NOT NULL,
		metadata TEXT NOT NULL DEFAULT '{}',
		embedding BLOB NOT NULL
	)`, s.collection))
	if err != nil {
		return fmt.Errorf("creating collection table: %w", err)
	}
	return nil
}

// Add appends records from the four parallel slices inside one
// transaction. A duplicate ID overwrites the prior record.
func (s *Store) Add(ctx context.Context, ids, texts []string, metadatas []map[string]string, embeddings [][]float64) error {
	if len(ids) != len(texts) || len(ids) != len(metadatas) || len(ids) != len(embeddings) {
		return domain.ErrLengthMismatch
	}
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, fmt.Sprintf(
		`INSERT OR REPLACE INTO %s (id, text, metadata, embedding) VALUES (?, ?, ?, ?)`, s.collection))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, id := range ids {
		meta, err := json.Marshal(metadatas[i])
		if err != nil {
			return fmt.Errorf("encode metadata for %s: %w", id, err)
		}
		if _, err := stmt.ExecContext(ctx, id, texts[i], string(meta), encodeEmbedding(embeddings[i])); err != nil {
			return fmt.Errorf("insert %s: %w", id, err)
		}
	}
	return tx.Commit()
}

// Search scans the collection and returns the topK nearest records by
// cosine distance, nearest-first. An empty collection yields an empty
// slice.
func (s *Store) Search(ctx context.Context, embedding []float64, topK int) ([]domain.SearchResult, error) {
	if topK <= 0 {
		topK = 5
	}

	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT id, text, metadata, embedding FROM %s ORDER BY rowid`, s.collection))
	if err != nil {
		return nil, fmt.Errorf("query collection: %w", err)
	}
	defer rows.Close()

	results := make([]domain.SearchResult, 0, topK)
	for rows.Next() {
		var (
			id, text, metaJSON string
			blob               []byte
		)
		if err := rows.Scan(&id, &text, &metaJSON, &blob); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		vec, err := decodeEmbedding(blob)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", id, err)
		}
		var meta map[string]string
		if err := json.Unmarshal([]byte(metaJSON), &meta); err != nil {
			return nil, fmt.Errorf("record %s: decode metadata: %w", id, err)
		}
		results = append(results, domain.SearchResult{
			ID:       id,
			Text:     text,
			Metadata: meta,
			Distance: vectorstore.CosineDistance(embedding, vec),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Distance < results[j].Distance })
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// Count reports the number of stored records.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.collection)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
