// Package retrieval defines the document retriever interface.
package retrieval

import "context"

// Retriever returns documents relevant to a query from the wellness corpus.
// Implementations must deduplicate results and return at most k documents.
type Retriever interface {
	// Search returns up to k documents ranked by relevance to the query.
	Search(ctx context.Context, query string, k int) ([]string, error)

	// Count returns the number of documents loaded into the index.
	Count() int
}

// Type represents the type of retriever backend.
type Type string

const (
	// TypeChromem represents the embedded chromem-go vector store.
	TypeChromem Type = "chromem"
)
