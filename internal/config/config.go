// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Cache     CacheConfig
	Retriever RetrieverConfig
	Generator GeneratorConfig
	Emotion   EmotionConfig
	Chat      ChatConfig
	Log       LogConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CacheConfig holds the retrieval cache configuration.
type CacheConfig struct {
	Type     string
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

// RetrieverConfig holds vector index configuration.
type RetrieverConfig struct {
	Type          string
	DocumentsPath string
	Collection    string
	EmbedBaseURL  string
	EmbedModel    string
}

// GeneratorConfig holds LLM backend configuration.
type GeneratorConfig struct {
	Type         string
	OllamaURL    string
	OllamaModel  string
	GeminiModel  string
	GeminiKeyURI string
	Timeout      time.Duration
}

// EmotionConfig holds emotion classifier configuration.
type EmotionConfig struct {
	URL     string
	Timeout time.Duration
}

// ChatConfig holds the routing/composition pipeline configuration.
type ChatConfig struct {
	HistoryWindow int
	RetrievalK    int
	MaxTokens     int
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvAsInt("SERVER_PORT", 8080),
			GinMode: getEnv("GIN_MODE", "debug"),
		},
		Cache: CacheConfig{
			Type:     getEnv("CACHE_TYPE", "redis"),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			TTL:      time.Duration(getEnvAsInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Retriever: RetrieverConfig{
			Type:          getEnv("RETRIEVER_TYPE", "chromem"),
			DocumentsPath: getEnv("RETRIEVER_DOCS_PATH", "data/mind_docs.txt"),
			Collection:    getEnv("RETRIEVER_COLLECTION", "wellness"),
			EmbedBaseURL:  getEnv("EMBED_BASE_URL", "http://localhost:11434/api"),
			EmbedModel:    getEnv("EMBED_MODEL", "nomic-embed-text"),
		},
		Generator: GeneratorConfig{
			Type:         getEnv("GENERATOR_TYPE", "ollama"),
			OllamaURL:    getEnv("OLLAMA_URL", "http://localhost:11434"),
			OllamaModel:  getEnv("OLLAMA_MODEL", "llama3.2:3b"),
			GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			GeminiKeyURI: getEnv("GEMINI_API_KEY_URI", "dotenv://GEMINI_API_KEY"),
			Timeout:      time.Duration(getEnvAsInt("GENERATOR_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		Emotion: EmotionConfig{
			URL:     getEnv("EMOTION_MODEL_URL", "http://localhost:8001/classify"),
			Timeout: time.Duration(getEnvAsInt("EMOTION_TIMEOUT_SECONDS", 5)) * time.Second,
		},
		Chat: ChatConfig{
			HistoryWindow: getEnvAsInt("CHAT_HISTORY_WINDOW", 6),
			RetrievalK:    getEnvAsInt("CHAT_RETRIEVAL_K", 2),
			MaxTokens:     getEnvAsInt("CHAT_MAX_TOKENS", 200),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
