package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/chat-service/internal/core/cache"
	"github.com/mindwell/chat-service/internal/core/generation"
	"github.com/mindwell/chat-service/internal/core/retrieval"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cacheClient cache.Client
	generator   generation.Generator
	retriever   retrieval.Retriever
	modelName   string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cacheClient cache.Client, generator generation.Generator, retriever retrieval.Retriever, modelName string) *HealthHandler {
	return &HealthHandler{
		cacheClient: cacheClient,
		generator:   generator,
		retriever:   retriever,
		modelName:   modelName,
	}
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status     string            `json:"status"`
	Model      string            `json:"model"`
	Documents  int               `json:"documents"`
	Components map[string]string `json:"components,omitempty"`
}

// Health handles the /api/health endpoint. The service stays "online" even
// with a degraded generator: template and fallback paths still answer.
// @Summary Health check
// @Description Returns the overall status plus per-component statuses
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse "Service online"
// @Router /api/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx := c.Request.Context()
	components := make(map[string]string)

	if err := h.generator.Ping(ctx); err != nil {
		components["generator"] = "offline"
	} else {
		components["generator"] = "online"
	}

	if h.cacheClient != nil {
		if err := h.cacheClient.Ping(ctx); err != nil {
			components["cache"] = "offline"
		} else {
			components["cache"] = "online"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:     "online",
		Model:      h.modelName,
		Documents:  h.retriever.Count(),
		Components: components,
	})
}

// Live handles the /api/live endpoint.
// @Summary Liveness check
// @Description Returns 200 if the service is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string "Service alive"
// @Router /api/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "alive",
	})
}
