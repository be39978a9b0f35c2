// Package routes defines the HTTP routes for the Mindwell Chat Service.
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/mindwell/chat-service/internal/api/handlers"
	"github.com/mindwell/chat-service/internal/api/middleware"
)

// Config holds the dependencies for setting up routes.
type Config struct {
	ChatHandler            *handlers.ChatHandler
	HealthHandler          *handlers.HealthHandler
	RecommendationsHandler *handlers.RecommendationsHandler
	MetaHandler            *handlers.MetaHandler
}

// Setup configures all routes on the Gin engine.
func Setup(r *gin.Engine, cfg *Config) {
	r.GET("/", cfg.MetaHandler.Root)

	api := r.Group("/api")
	{
		api.POST("/chat", cfg.ChatHandler.Chat)
		api.POST("/recommendations", cfg.RecommendationsHandler.Recommendations)

		api.GET("/health", cfg.HealthHandler.Health)
		api.GET("/live", cfg.HealthHandler.Live)
	}
}

// SetupWithMiddleware sets up routes with common middleware.
func SetupWithMiddleware(r *gin.Engine, cfg *Config, loggingMw *middleware.LoggingMiddleware, errorMw *middleware.ErrorMiddleware, corsCfg middleware.CORSConfig) {
	// Apply global middleware
	r.Use(loggingMw.Logger())
	r.Use(errorMw.Recovery())
	r.Use(gin.Recovery())
	r.Use(middleware.NewCORSMiddleware(corsCfg))

	// Setup routes
	Setup(r, cfg)
}
