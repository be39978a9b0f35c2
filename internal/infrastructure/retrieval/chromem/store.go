// Package chromem provides the embedded vector store retriever backed by
// chromem-go.
package chromem

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/philippgille/chromem-go"
)

// Config holds the vector store configuration.
type Config struct {
	// DocumentsPath is a text file with one corpus document per line.
	DocumentsPath string
	Collection    string
	// EmbedBaseURL is the Ollama-compatible embeddings endpoint.
	EmbedBaseURL string
	EmbedModel   string
}

// Store implements retrieval.Retriever over an in-memory chromem-go
// collection built from the wellness corpus file at startup.
type Store struct {
	collection *chromem.Collection
	count      int
}

// NewStore creates the store and indexes the corpus file.
func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.DocumentsPath == "" {
		return nil, fmt.Errorf("documents path is required")
	}

	docs, err := readDocuments(cfg.DocumentsPath)
	if err != nil {
		return nil, err
	}

	db := chromem.NewDB()
	embeddingFunc := chromem.NewEmbeddingFuncOllama(cfg.EmbedModel, cfg.EmbedBaseURL)

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, embeddingFunc)
	if err != nil {
		return nil, fmt.Errorf("failed to create collection: %w", err)
	}

	for i, doc := range docs {
		err := collection.AddDocument(ctx, chromem.Document{
			ID:      fmt.Sprintf("doc_%d", i),
			Content: doc,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to index document %d: %w", i, err)
		}
	}

	return &Store{
		collection: collection,
		count:      len(docs),
	}, nil
}

// Search returns up to k documents ranked by similarity, deduplicated by
// their leading 50 characters.
func (s *Store) Search(ctx context.Context, query string, k int) ([]string, error) {
	if s.count == 0 || k <= 0 {
		return nil, nil
	}
	if k > s.count {
		k = s.count
	}

	results, err := s.collection.Query(ctx, query, k, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query collection: %w", err)
	}

	var docs []string
	seen := make(map[string]bool)
	for _, result := range results {
		key := result.Content
		if len(key) > 50 {
			key = key[:50]
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		docs = append(docs, result.Content)
		if len(docs) == k {
			break
		}
	}

	return docs, nil
}

// Count returns the number of documents loaded into the index.
func (s *Store) Count() int {
	return s.count
}

// readDocuments loads the corpus file, one document per non-empty line.
func readDocuments(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open documents file: %w", err)
	}
	defer f.Close()

	var docs []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			docs = append(docs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read documents file: %w", err)
	}

	return docs, nil
}
