// Package ollama_test provides unit tests for the Ollama generator client.
package ollama_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/infrastructure/generation/ollama"
)

func TestNewClient_Validation(t *testing.T) {
	_, err := ollama.NewClient(ollama.Config{Model: "llama3.2:3b"})
	assert.Error(t, err)

	_, err = ollama.NewClient(ollama.Config{BaseURL: "http://localhost:11434"})
	assert.Error(t, err)
}

func TestGenerate_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]any{
			"response": "  You are not alone in this. 💙  ",
			"done":     true,
		})
	}))
	defer server.Close()

	client, err := ollama.NewClient(ollama.Config{BaseURL: server.URL, Model: "llama3.2:3b"})
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "User: I feel low", "be kind", 200)

	require.NoError(t, err)
	assert.Equal(t, "You are not alone in this. 💙", reply)
	assert.Equal(t, "llama3.2:3b", gotBody["model"])
	assert.Equal(t, "User: I feel low", gotBody["prompt"])
	assert.Equal(t, "be kind", gotBody["system"])
	assert.Equal(t, false, gotBody["stream"])

	options, ok := gotBody["options"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(200), options["num_predict"])
}

func TestGenerate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := ollama.NewClient(ollama.Config{BaseURL: server.URL, Model: "llama3.2:3b"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", "", 100)

	assert.Error(t, err)
}

func TestGenerate_OllamaErrorField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"error": "model not found"})
	}))
	defer server.Close()

	client, err := ollama.NewClient(ollama.Config{BaseURL: server.URL, Model: "llama3.2:3b"})
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "prompt", "", 100)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model not found")
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/tags", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := ollama.NewClient(ollama.Config{BaseURL: server.URL, Model: "llama3.2:3b"})
	require.NoError(t, err)

	assert.NoError(t, client.Ping(context.Background()))
}

func TestPing_Unreachable(t *testing.T) {
	client, err := ollama.NewClient(ollama.Config{BaseURL: "http://127.0.0.1:1", Model: "llama3.2:3b"})
	require.NoError(t, err)

	assert.Error(t, client.Ping(context.Background()))
}
