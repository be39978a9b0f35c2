// Package retrieval_test provides unit tests for the retrieval decorators.
package retrieval_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/core/cache"
	rediscache "github.com/mindwell/chat-service/internal/infrastructure/cache/redis"
	"github.com/mindwell/chat-service/internal/services/retrieval"
)

type stubRetriever struct {
	docs  []string
	err   error
	calls int
}

func (s *stubRetriever) Search(ctx context.Context, query string, k int) ([]string, error) {
	s.calls++
	return s.docs, s.err
}

func (s *stubRetriever) Count() int { return len(s.docs) }

func setupMiniredis(t *testing.T) cache.Client {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rediscache.NewClient(rediscache.Config{
		Host:     mr.Host(),
		Port:     mr.Port(),
		Password: "",
		DB:       0,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return client
}

func TestCachedRetriever_MissThenHit(t *testing.T) {
	client := setupMiniredis(t)
	base := &stubRetriever{docs: []string{"Practice deep breathing.", "Try a short walk."}}
	cached := retrieval.NewCachedRetriever(base, client)
	ctx := context.Background()

	first, err := cached.Search(ctx, "how to calm anxiety", 2)
	require.NoError(t, err)
	assert.Equal(t, base.docs, first)
	assert.Equal(t, 1, base.calls)

	second, err := cached.Search(ctx, "how to calm anxiety", 2)
	require.NoError(t, err)
	assert.Equal(t, base.docs, second)
	assert.Equal(t, 1, base.calls, "repeat query must be served from cache")
}

func TestCachedRetriever_NormalizesQueries(t *testing.T) {
	client := setupMiniredis(t)
	base := &stubRetriever{docs: []string{"doc"}}
	cached := retrieval.NewCachedRetriever(base, client)
	ctx := context.Background()

	_, err := cached.Search(ctx, "How To Calm Anxiety", 2)
	require.NoError(t, err)

	_, err = cached.Search(ctx, "  how   to calm anxiety ", 2)
	require.NoError(t, err)

	assert.Equal(t, 1, base.calls, "case and whitespace variants share one entry")
}

func TestCachedRetriever_DifferentKIsDifferentEntry(t *testing.T) {
	client := setupMiniredis(t)
	base := &stubRetriever{docs: []string{"doc"}}
	cached := retrieval.NewCachedRetriever(base, client)
	ctx := context.Background()

	_, err := cached.Search(ctx, "query", 2)
	require.NoError(t, err)

	_, err = cached.Search(ctx, "query", 3)
	require.NoError(t, err)

	assert.Equal(t, 2, base.calls)
}

func TestCachedRetriever_BaseErrorPropagates(t *testing.T) {
	client := setupMiniredis(t)
	base := &stubRetriever{err: errors.New("index unavailable")}
	cached := retrieval.NewCachedRetriever(base, client)

	_, err := cached.Search(context.Background(), "query", 2)

	assert.Error(t, err)
}

func TestCachedRetriever_CacheFailureDegradesToDirectSearch(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rediscache.NewClient(rediscache.Config{
		Host: mr.Host(),
		Port: mr.Port(),
	})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	// Take the cache down after the client connects.
	mr.Close()

	base := &stubRetriever{docs: []string{"doc"}}
	cached := retrieval.NewCachedRetriever(base, client)

	docs, err := cached.Search(context.Background(), "query", 2)

	require.NoError(t, err)
	assert.Equal(t, []string{"doc"}, docs)
	assert.Equal(t, 1, base.calls)
}

func TestCachedRetriever_CountPassesThrough(t *testing.T) {
	client := setupMiniredis(t)
	base := &stubRetriever{docs: []string{"a", "b", "c"}}
	cached := retrieval.NewCachedRetriever(base, client)

	assert.Equal(t, 3, cached.Count())
}
