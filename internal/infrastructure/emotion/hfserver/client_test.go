// Package hfserver_test provides unit tests for the emotion inference client.
package hfserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/core/emotion"
	"github.com/mindwell/chat-service/internal/infrastructure/emotion/hfserver"
)

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := hfserver.NewClient(hfserver.Config{})

	assert.Error(t, err)
}

func TestClassify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "I feel hopeless", body["inputs"])

		json.NewEncoder(w).Encode([][]map[string]any{{
			{"label": "sadness", "score": 0.91},
			{"label": "fear", "score": 0.06},
		}})
	}))
	defer server.Close()

	client, err := hfserver.NewClient(hfserver.Config{URL: server.URL})
	require.NoError(t, err)

	predictions, err := client.Classify(context.Background(), "I feel hopeless")

	require.NoError(t, err)
	require.Len(t, predictions, 2)
	assert.Equal(t, emotion.Prediction{Label: "sadness", Score: 0.91}, predictions[0])
}

func TestClassify_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := hfserver.NewClient(hfserver.Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "text")

	assert.Error(t, err)
}

func TestClassify_EmptyBatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]map[string]any{})
	}))
	defer server.Close()

	client, err := hfserver.NewClient(hfserver.Config{URL: server.URL})
	require.NoError(t, err)

	_, err = client.Classify(context.Background(), "text")

	assert.Error(t, err)
}
