// Package handlers provides HTTP handlers for the API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindwell/chat-service/internal/api/middleware"
	"github.com/mindwell/chat-service/internal/domain/errors"
	"github.com/mindwell/chat-service/internal/domain/models"
	"github.com/mindwell/chat-service/internal/services/chat"
)

// ChatHandler handles the chat endpoint.
type ChatHandler struct {
	composer *chat.Service
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(composer *chat.Service) *ChatHandler {
	return &ChatHandler{
		composer: composer,
	}
}

// ChatRequest represents the request body for sending a chat message.
type ChatRequest struct {
	Message             string               `json:"message" binding:"required"`
	ConversationHistory []models.ChatMessage `json:"conversation_history"`
}

// Chat handles POST /api/chat
// @Summary Send a chat message
// @Description Routes a message through classification, sentiment analysis, and response composition
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "Message and optional conversation history"
// @Success 200 {object} models.ResponsePayload
// @Failure 400 {object} middleware.ErrorResponse
// @Router /api/chat [post]
func (h *ChatHandler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleError(c, errors.NewValidationError("message is required", err.Error()))
		return
	}

	payload := h.composer.Respond(c.Request.Context(), models.IncomingMessage{
		Text:    req.Message,
		History: req.ConversationHistory,
	})

	c.JSON(http.StatusOK, payload)
}
