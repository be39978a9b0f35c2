// Package emotion defines the emotion classification model interface.
package emotion

import "context"

// Prediction is one label/score pair from the emotion model.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classifier scores a text against the fixed emotion label set
// (anger, fear, joy, love, sadness).
type Classifier interface {
	// Classify returns label/score pairs for the text, unordered.
	Classify(ctx context.Context, text string) ([]Prediction, error)
}

// Type represents the type of classifier backend.
type Type string

const (
	// TypeHFServer represents an HTTP text-classification inference server.
	TypeHFServer Type = "hfserver"
)
