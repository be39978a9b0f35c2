// Package main is the entry point for the Mindwell Chat Service.
// @title Mindwell Chat Service API
// @version 2.0
// @description Stateless mental wellness chat backend with pattern-based routing, ensemble sentiment analysis, and retrieval-augmented generation
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/mindwell/chat-service

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mindwell/chat-service/docs"
	"github.com/mindwell/chat-service/internal/api/handlers"
	"github.com/mindwell/chat-service/internal/api/middleware"
	"github.com/mindwell/chat-service/internal/api/routes"
	"github.com/mindwell/chat-service/internal/config"
	"github.com/mindwell/chat-service/internal/core/cache"
	"github.com/mindwell/chat-service/internal/core/emotion"
	"github.com/mindwell/chat-service/internal/core/generation"
	"github.com/mindwell/chat-service/internal/core/retrieval"
	"github.com/mindwell/chat-service/internal/core/vault"
	rediscache "github.com/mindwell/chat-service/internal/infrastructure/cache/redis"
	"github.com/mindwell/chat-service/internal/infrastructure/emotion/hfserver"
	"github.com/mindwell/chat-service/internal/infrastructure/generation/gemini"
	"github.com/mindwell/chat-service/internal/infrastructure/generation/ollama"
	"github.com/mindwell/chat-service/internal/infrastructure/retrieval/chromem"
	dotenvvault "github.com/mindwell/chat-service/internal/infrastructure/vault/dotenv"
	"github.com/mindwell/chat-service/internal/services/chat"
	"github.com/mindwell/chat-service/internal/services/recommendations"
	cachedretrieval "github.com/mindwell/chat-service/internal/services/retrieval"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	setupLogging(cfg.Log)

	ctx := context.Background()

	// Initialize vault client using factory pattern
	vaultClient := createVaultClient()
	defer vaultClient.Close()

	// Initialize cache client using factory pattern
	cacheClient, err := createCacheClient(cfg.Cache)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize cache client")
	}
	if cacheClient != nil {
		defer cacheClient.Close()
	}

	// Initialize retriever, optionally wrapped with the read-through cache
	retriever, err := createRetriever(ctx, cfg.Retriever, cacheClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize retriever")
	}
	log.Info().Int("documents", retriever.Count()).Msg("retriever ready")

	// Initialize generator using factory pattern
	generator, modelName, err := createGenerator(ctx, cfg.Generator, vaultClient)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize generator")
	}

	// Initialize emotion classifier; the pipeline degrades to keyword-only
	// sentiment without it
	classifier := createEmotionClassifier(cfg.Emotion)

	// Initialize composer service
	composer, err := chat.NewService(&chat.Config{
		Retriever:     retriever,
		Generator:     generator,
		Classifier:    classifier,
		HistoryWindow: cfg.Chat.HistoryWindow,
		RetrievalK:    cfg.Chat.RetrievalK,
		MaxTokens:     cfg.Chat.MaxTokens,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize composer service")
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Setup router
	router := setupRouter(cfg, composer, cacheClient, generator, retriever, modelName)

	// Create HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Address(),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("address", cfg.Server.Address()).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}

// setupLogging configures the global zerolog logger.
func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// createVaultClient creates the secrets vault.
func createVaultClient() vault.Vault {
	return dotenvvault.NewVault()
}

// createCacheClient creates a cache client based on the configuration.
// A nil client means the retrieval cache is disabled.
func createCacheClient(cfg config.CacheConfig) (cache.Client, error) {
	cacheType := cache.Type(cfg.Type)

	switch cacheType {
	case cache.TypeRedis:
		return rediscache.NewClient(rediscache.Config{
			Host:       cfg.Host,
			Port:       cfg.Port,
			Password:   cfg.Password,
			DB:         cfg.DB,
			DefaultTTL: cfg.TTL,
		})
	case cache.TypeNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported cache type: %s", cfg.Type)
	}
}

// createRetriever creates the document retriever, wrapped with the
// read-through cache when a cache client is configured.
func createRetriever(ctx context.Context, cfg config.RetrieverConfig, cacheClient cache.Client) (retrieval.Retriever, error) {
	retrieverType := retrieval.Type(cfg.Type)

	switch retrieverType {
	case retrieval.TypeChromem:
		store, err := chromem.NewStore(ctx, chromem.Config{
			DocumentsPath: cfg.DocumentsPath,
			Collection:    cfg.Collection,
			EmbedBaseURL:  cfg.EmbedBaseURL,
			EmbedModel:    cfg.EmbedModel,
		})
		if err != nil {
			return nil, err
		}
		if cacheClient != nil {
			return cachedretrieval.NewCachedRetriever(store, cacheClient), nil
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported retriever type: %s", cfg.Type)
	}
}

// createGenerator creates the LLM backend based on the configuration and
// returns it with the model name reported by the health endpoint.
func createGenerator(ctx context.Context, cfg config.GeneratorConfig, vaultClient vault.Vault) (generation.Generator, string, error) {
	generatorType := generation.Type(cfg.Type)

	switch generatorType {
	case generation.TypeOllama:
		client, err := ollama.NewClient(ollama.Config{
			BaseURL: cfg.OllamaURL,
			Model:   cfg.OllamaModel,
			Timeout: cfg.Timeout,
		})
		return client, cfg.OllamaModel, err
	case generation.TypeGemini:
		apiKey, err := vaultClient.GetSecret(ctx, cfg.GeminiKeyURI)
		if err != nil {
			return nil, "", fmt.Errorf("gemini api key: %w", err)
		}
		client, err := gemini.NewClient(gemini.Config{
			APIKey:  apiKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.Timeout,
		})
		return client, cfg.GeminiModel, err
	default:
		return nil, "", fmt.Errorf("unsupported generator type: %s", cfg.Type)
	}
}

// createEmotionClassifier creates the external emotion model client. An
// unset URL disables the model; sentiment then runs keyword-only.
func createEmotionClassifier(cfg config.EmotionConfig) emotion.Classifier {
	if cfg.URL == "" {
		log.Warn().Msg("emotion model URL not set, sentiment runs keyword-only")
		return nil
	}

	client, err := hfserver.NewClient(hfserver.Config{
		URL:     cfg.URL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		log.Warn().Err(err).Msg("emotion model unavailable, sentiment runs keyword-only")
		return nil
	}
	return client
}

// setupRouter creates and configures the Gin router.
func setupRouter(cfg *config.Config, composer *chat.Service, cacheClient cache.Client, generator generation.Generator, retriever retrieval.Retriever, modelName string) *gin.Engine {
	router := gin.New()

	// Create middleware
	loggingMw := middleware.NewLoggingMiddleware()
	errorMw := middleware.NewErrorMiddleware()

	// Create handlers
	chatHandler := handlers.NewChatHandler(composer)
	healthHandler := handlers.NewHealthHandler(cacheClient, generator, retriever, modelName)
	recommendationsHandler := handlers.NewRecommendationsHandler(recommendations.NewService())
	metaHandler := handlers.NewMetaHandler()

	// Setup routes
	routesCfg := &routes.Config{
		ChatHandler:            chatHandler,
		HealthHandler:          healthHandler,
		RecommendationsHandler: recommendationsHandler,
		MetaHandler:            metaHandler,
	}

	routes.SetupWithMiddleware(router, routesCfg, loggingMw, errorMw, middleware.DefaultCORSConfig())

	// Swagger documentation endpoint
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
