// Package redis_test provides unit tests for the Redis cache.
package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/core/cache"
	rediscache "github.com/mindwell/chat-service/internal/infrastructure/cache/redis"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, cache.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rediscache.NewClient(rediscache.Config{
		Host:       mr.Host(),
		Port:       mr.Port(),
		Password:   "",
		DB:         0,
		DefaultTTL: 5 * time.Minute,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestNewClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := rediscache.NewClient(rediscache.Config{
		Host: mr.Host(),
		Port: mr.Port(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, client)

	client.Close()
}

func TestNewClient_ConnectionFailure(t *testing.T) {
	_, err := rediscache.NewClient(rediscache.Config{
		Host: "127.0.0.1",
		Port: "1",
	})

	assert.Error(t, err)
}

func TestCache_SetAndGet(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.Set(ctx, "retrieval:2:anxiety", []byte(`["doc one","doc two"]`), time.Minute)
	assert.NoError(t, err)

	result, err := client.Get(ctx, "retrieval:2:anxiety")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`["doc one","doc two"]`), result)
}

func TestCache_GetNotFound(t *testing.T) {
	_, client := setupMiniredis(t)

	result, err := client.Get(context.Background(), "non-existent-key")

	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestCache_ZeroTTLUsesDefault(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.Set(ctx, "key", []byte("value"), 0)
	require.NoError(t, err)

	// Still present before the default TTL elapses.
	mr.FastForward(4 * time.Minute)
	result, err := client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, []byte("value"), result)

	// Gone after it.
	mr.FastForward(2 * time.Minute)
	result, err = client.Get(ctx, "key")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestCache_Delete(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "key", []byte("value"), time.Minute))

	deleted, err := client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = client.Delete(ctx, "key")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestCache_Ping(t *testing.T) {
	_, client := setupMiniredis(t)

	assert.NoError(t, client.Ping(context.Background()))
}
