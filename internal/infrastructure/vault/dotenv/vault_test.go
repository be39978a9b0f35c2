// Package dotenv_test provides unit tests for the dotenv vault.
package dotenv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/infrastructure/vault/dotenv"
)

func TestGetSecret_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_GEMINI_KEY", "env-value")
	v := dotenv.NewVault()

	value, err := v.GetSecret(context.Background(), "dotenv://TEST_GEMINI_KEY")

	require.NoError(t, err)
	assert.Equal(t, "env-value", value)
}

func TestGetSecret_FromStore(t *testing.T) {
	v := dotenv.NewVault()
	ctx := context.Background()

	uri, err := v.StoreSecret(ctx, "API_KEY", "stored-value")
	require.NoError(t, err)
	assert.Equal(t, "dotenv://API_KEY", uri)

	value, err := v.GetSecret(ctx, uri)
	require.NoError(t, err)
	assert.Equal(t, "stored-value", value)
}

func TestGetSecret_EnvironmentWinsOverStore(t *testing.T) {
	t.Setenv("SHARED_KEY", "env-value")
	v := dotenv.NewVault()
	ctx := context.Background()

	_, err := v.StoreSecret(ctx, "SHARED_KEY", "stored-value")
	require.NoError(t, err)

	value, err := v.GetSecret(ctx, "dotenv://SHARED_KEY")
	require.NoError(t, err)
	assert.Equal(t, "env-value", value)
}

func TestGetSecret_NotFound(t *testing.T) {
	v := dotenv.NewVault()

	_, err := v.GetSecret(context.Background(), "dotenv://MISSING_KEY")

	assert.Error(t, err)
}

func TestPingAndClose(t *testing.T) {
	v := dotenv.NewVault()

	assert.NoError(t, v.Ping(context.Background()))
	assert.NoError(t, v.Close())
}
