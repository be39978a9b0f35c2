// Package recommendations_test provides unit tests for the recommendations package.
package recommendations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/chat-service/internal/services/recommendations"
)

func TestForMood_Buckets(t *testing.T) {
	svc := recommendations.NewService()

	tests := []struct {
		name     string
		mood     string
		fragment string
	}{
		{"positive", "positive", "Keep up the great energy"},
		{"compound positive", "very positive", "Keep up the great energy"},
		{"negative", "negative", "breathing exercise"},
		{"compound negative", "Very Negative", "breathing exercise"},
		{"neutral", "neutral", "mindfulness practice"},
		{"unknown", "melancholic", "mindfulness practice"},
		{"empty", "", "mindfulness practice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.ForMood(tt.mood)

			assert.Len(t, result, 3)
			assert.Contains(t, result[0], tt.fragment)
		})
	}
}
