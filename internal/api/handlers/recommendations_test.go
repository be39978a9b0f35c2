package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mindwell/chat-service/internal/api/handlers"
	"github.com/mindwell/chat-service/internal/services/recommendations"
)

func newRecommendationsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := handlers.NewRecommendationsHandler(recommendations.NewService())
	router.POST("/api/recommendations", handler.Recommendations)
	return router
}

func TestRecommendations_NegativeMood(t *testing.T) {
	router := newRecommendationsRouter(t)

	w := postJSON(t, router, "/api/recommendations", gin.H{"recent_mood": "very negative"})

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 3)
	assert.Contains(t, resp.Recommendations[0], "breathing exercise")
}

func TestRecommendations_MissingMoodDefaultsToNeutral(t *testing.T) {
	router := newRecommendationsRouter(t)

	w := postJSON(t, router, "/api/recommendations", gin.H{})

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.RecommendationsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Recommendations, 3)
	assert.Contains(t, resp.Recommendations[0], "mindfulness practice")
}
