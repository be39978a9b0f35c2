// Package gemini_test provides unit tests for the Gemini generator client.
package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/infrastructure/generation/gemini"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *gemini.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := gemini.NewClient(gemini.Config{
		APIKey:  "test-key",
		Model:   "gemini-2.0-flash",
		BaseURL: server.URL,
	})
	require.NoError(t, err)

	return client
}

func TestNewClient_Validation(t *testing.T) {
	_, err := gemini.NewClient(gemini.Config{Model: "gemini-2.0-flash"})
	assert.Error(t, err)

	_, err = gemini.NewClient(gemini.Config{APIKey: "key"})
	assert.Error(t, err)
}

func TestGenerate_Success(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/gemini-2.0-flash:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Contains(t, body, "systemInstruction")

		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "That sounds hard. 💙"}}}},
			},
		})
	})

	reply, err := client.Generate(context.Background(), "User: rough day", "be kind", 200)

	require.NoError(t, err)
	assert.Equal(t, "That sounds hard. 💙", reply)
}

func TestGenerate_StripsFillerPrefix(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{{"text": "Sure! That sounds hard."}}}},
			},
		})
	})

	reply, err := client.Generate(context.Background(), "prompt", "", 100)

	require.NoError(t, err)
	assert.Equal(t, "That sounds hard.", reply)
}

func TestGenerate_BlockedPromptReturnsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"promptFeedback": map[string]string{"blockReason": "SAFETY"},
		})
	})

	reply, err := client.Generate(context.Background(), "prompt", "", 100)

	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestGenerate_NoCandidatesReturnsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	})

	reply, err := client.Generate(context.Background(), "prompt", "", 100)

	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestGenerate_ServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Generate(context.Background(), "prompt", "", 100)

	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/models/gemini-2.0-flash", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	})

	assert.NoError(t, client.Ping(context.Background()))
}
