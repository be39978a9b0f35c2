// Package recommendations provides mood-based wellness suggestions.
package recommendations

import "strings"

// Suggestion lists per mood bucket. These are deliberately canned: the
// endpoint must answer instantly and never depends on the generator.
var (
	positiveSuggestions = []string{
		"Keep up the great energy! Try journaling about what's going well.",
		"You're doing amazing! Consider sharing your positivity with a friend.",
		"Maintain this momentum with a gratitude practice each morning.",
	}

	negativeSuggestions = []string{
		"Try a 5-minute breathing exercise to calm your mind.",
		"Consider taking a short walk outside - movement can shift your mood.",
		"Write down 3 small things you're grateful for today.",
	}

	neutralSuggestions = []string{
		"Start your day with a simple mindfulness practice.",
		"Check in with yourself regularly - set hourly reminders.",
		"Try a new activity this week to bring variety to your routine.",
	}
)

// Service maps a free-form mood description onto a suggestion list.
type Service struct{}

// NewService creates a recommendations service.
func NewService() *Service {
	return &Service{}
}

// ForMood buckets the mood by substring so that compound labels like
// "very negative" land in the right list. Unknown moods are neutral.
func (s *Service) ForMood(recentMood string) []string {
	mood := strings.ToLower(recentMood)

	switch {
	case strings.Contains(mood, "positive"):
		return positiveSuggestions
	case strings.Contains(mood, "negative"):
		return negativeSuggestions
	default:
		return neutralSuggestions
	}
}
