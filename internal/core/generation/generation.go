// Package generation defines the text generator interface.
package generation

import "context"

// Generator produces text from a prompt via an LLM backend. An empty string
// with a nil error means the backend declined to answer; callers treat both
// empty output and errors as "no result".
type Generator interface {
	// Generate produces text conditioned on the prompt and an optional
	// system prompt. maxTokens bounds the output length.
	Generate(ctx context.Context, prompt, systemPrompt string, maxTokens int) (string, error)

	// Ping checks if the generator backend is reachable.
	Ping(ctx context.Context) error
}

// Type represents the type of generator backend.
type Type string

const (
	// TypeOllama represents a local Ollama server.
	TypeOllama Type = "ollama"
	// TypeGemini represents the Google Gemini API.
	TypeGemini Type = "gemini"
)
