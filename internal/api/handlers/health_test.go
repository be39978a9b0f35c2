package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/api/handlers"
)

func TestHealth_ReportsComponentStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := handlers.NewHealthHandler(nil, &stubGenerator{}, &stubRetriever{docs: []string{"a", "b"}}, "llama3.2:3b")
	router.GET("/api/health", handler.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, "llama3.2:3b", resp.Model)
	assert.Equal(t, 2, resp.Documents)
	assert.Equal(t, "online", resp.Components["generator"])
}

func TestHealth_StaysOnlineWithDegradedGenerator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	generator := &stubGenerator{pingErr: errors.New("unreachable")}
	handler := handlers.NewHealthHandler(nil, generator, &stubRetriever{}, "llama3.2:3b")
	router.GET("/api/health", handler.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.Equal(t, "offline", resp.Components["generator"])
}

func TestMeta_Root(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", handlers.NewMetaHandler().Root)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.MetaResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.NotEmpty(t, resp.Features)
}
