// Package retrieval provides retrieval decorators layered over a base
// document store.
package retrieval

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mindwell/chat-service/internal/core/cache"
	"github.com/mindwell/chat-service/internal/core/retrieval"
)

var whitespace = regexp.MustCompile(`\s+`)

// CachedRetriever wraps a Retriever with a read-through cache keyed on the
// normalized query. Cache failures degrade to a direct search; they are
// never surfaced to callers.
type CachedRetriever struct {
	base  retrieval.Retriever
	cache cache.Client
}

// NewCachedRetriever wraps base with the given cache client.
func NewCachedRetriever(base retrieval.Retriever, cacheClient cache.Client) *CachedRetriever {
	return &CachedRetriever{
		base:  base,
		cache: cacheClient,
	}
}

// Search returns cached results for repeated queries, falling through to
// the base retriever on a miss.
func (r *CachedRetriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	key := cacheKey(query, k)

	if raw, err := r.cache.Get(ctx, key); err == nil && len(raw) > 0 {
		var docs []string
		if err := json.Unmarshal(raw, &docs); err == nil {
			return docs, nil
		}
		log.Warn().Str("key", key).Msg("discarding malformed cached retrieval entry")
	}

	docs, err := r.base.Search(ctx, query, k)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(docs); err == nil {
		if err := r.cache.Set(ctx, key, encoded, 0); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache retrieval results")
		}
	}

	return docs, nil
}

// Count reports the base retriever's document count.
func (r *CachedRetriever) Count() int {
	return r.base.Count()
}

// cacheKey normalizes the query so that trivially different phrasings of
// the same search share an entry.
func cacheKey(query string, k int) string {
	normalized := whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(query)), " ")
	return fmt.Sprintf("retrieval:%d:%s", k, normalized)
}
