package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/chat-service/internal/services/recommendations"
)

// RecommendationsHandler handles the recommendations endpoint.
type RecommendationsHandler struct {
	service *recommendations.Service
}

// NewRecommendationsHandler creates a new RecommendationsHandler.
func NewRecommendationsHandler(service *recommendations.Service) *RecommendationsHandler {
	return &RecommendationsHandler{
		service: service,
	}
}

// RecommendationsRequest represents the request body for recommendations.
type RecommendationsRequest struct {
	RecentMood string `json:"recent_mood"`
}

// RecommendationsResponse represents the recommendations response.
type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

// Recommendations handles POST /api/recommendations. A missing or unknown
// mood falls back to the neutral suggestions rather than erroring.
// @Summary Mood-based wellness suggestions
// @Description Returns canned wellness suggestions for the given mood bucket
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body RecommendationsRequest true "Recent mood label"
// @Success 200 {object} RecommendationsResponse
// @Router /api/recommendations [post]
func (h *RecommendationsHandler) Recommendations(c *gin.Context) {
	var req RecommendationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		req.RecentMood = "neutral"
	}

	c.JSON(http.StatusOK, RecommendationsResponse{
		Recommendations: h.service.ForMood(req.RecentMood),
	})
}
