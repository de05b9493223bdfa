// Package loader reads documents from a directory, dispatching on file
// extension. Unsupported or unreadable files are skipped with a
// diagnostic; a single bad file never fails the batch.
package loader

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"rag-assistant/internal/domain"
)

// Load enumerates regular files in dir and returns one Document per
// successfully parsed file, in enumeration order. Each document carries a
// "source" metadata entry with the originating filename.
func Load(dir string) ([]domain.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var docs []domain.Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		content, err := loadFile(path)
		if err != nil {
			log.Printf("loader: skipping %s: %v", name, err)
			continue
		}
		if content == "" {
			// Recognised extension but nothing extractable.
			log.Printf("loader: skipping %s: no text content", name)
			continue
		}
		docs = append(docs, domain.Document{
			Content:  content,
			Metadata: map[string]string{"source": name},
		})
	}
	return docs, nil
}

func loadFile(path string) (string, error) {
	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")); ext {
	case "txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case "pdf":
		return extractPDF(path)
	case "doc", "docx":
		return extractDocx(path)
	default:
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
}
