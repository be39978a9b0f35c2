package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MetaHandler handles the service metadata endpoint.
type MetaHandler struct{}

// NewMetaHandler creates a new MetaHandler.
func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// MetaResponse represents the service metadata response.
type MetaResponse struct {
	Name     string   `json:"name"`
	Version  string   `json:"version"`
	Status   string   `json:"status"`
	Features []string `json:"features"`
}

// Root handles GET /
// @Summary Service metadata
// @Description Returns the service name, version, and feature list
// @Tags Meta
// @Produce json
// @Success 200 {object} MetaResponse
// @Router / [get]
func (h *MetaHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, MetaResponse{
		Name:    "Mindwell Chat Service",
		Version: "2.0",
		Status:  "online",
		Features: []string{
			"Instant responses for common queries",
			"Pattern-based message classification",
			"Ensemble sentiment analysis",
			"Retrieval-augmented generation",
		},
	})
}
