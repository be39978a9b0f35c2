package chat

import (
	"regexp"
	"strings"

	"github.com/mindwell/chat-service/internal/domain/models"
)

// Canonical intent rule tables. Patterns match against the lowered, trimmed
// message; evaluation order and priority are fixed (crisis always first).
var (
	crisisPatterns = compileAll(
		`\b(suicid(e|al)|kill\s+myself|end\s+(it|my\s+life))\b`,
		`\bhurt\s+(myself|me)\b`,
		`\bdon'?t\s+want\s+to\s+live\b`,
		`\bbetter\s+off\s+dead\b`,
	)

	greetingPatterns = compileAll(
		`\b(hi|hey|hello|sup|yo|hiya|howdy)\b`,
		`\bgood\s+(morning|afternoon|evening|night)\b`,
		`\bwhat'?s\s+up\b`,
		`\bhow\s+are\s+you\b`,
		`\bhow'?s\s+it\s+going\b`,
	)

	botInfoPatterns = compileAll(
		`\b(who|what)\s+are\s+you\b`,
		`\btell\s+me\s+about\s+(yourself|you)\b`,
		`\bhow\s+do\s+you\s+work\b`,
		`\bwhat\s+(can|do)\s+you\s+(do|help)\b`,
		`\bwhat\s+is\s+(this|your\s+name)\b`,
		`\b(your|you're)\s+name\b`,
	)

	gratitudePatterns = compileAll(
		`\bthank(s| you)\b`,
		`\bappreciate\b`,
		`\bhelpful\b`,
		`\byou'?re\s+(great|amazing|awesome|helpful)\b`,
	)

	achievementPatterns = compileAll(
		`\b(got|landed|achieved|finished|completed|won|passed|succeeded)\s+(a|an|the|my)?\s*(job|offer|promotion|exam|test|project|goal|degree)\b`,
		`\bi\s+(made|did)\s+it\b`,
		`\baccomplished\b`,
		`\bproud\s+of\s+(myself|me)\b`,
	)

	casualPatterns = compileAll(
		`\bhow\s+was\s+your\s+day\b`,
		`\bwhat\s+do\s+you\s+think\s+about\b`,
		`\b(ok|okay|alright|cool|nice)\b$`,
	)
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}

func anyMatch(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// ClassifyMessage assigns the intent category that gates the response path.
// First match wins; the crisis check runs before everything else, including
// the length gate, and is never skipped.
func ClassifyMessage(message string) models.Classification {
	lower := strings.ToLower(strings.TrimSpace(message))

	if anyMatch(crisisPatterns, lower) {
		return models.Classification{Type: models.TypeCrisis, Confidence: 1.0}
	}

	if len(lower) < 2 {
		return models.Classification{Type: models.TypeInvalid, Confidence: 1.0}
	}

	wordCount := len(strings.Fields(message))

	if wordCount <= 5 && anyMatch(greetingPatterns, lower) {
		return models.Classification{Type: models.TypeGreeting, Confidence: 0.9}
	}

	if anyMatch(botInfoPatterns, lower) {
		return models.Classification{Type: models.TypeBotInfo, Confidence: 0.85}
	}

	if anyMatch(gratitudePatterns, lower) {
		return models.Classification{Type: models.TypeGratitude, Confidence: 0.8}
	}

	if anyMatch(achievementPatterns, lower) {
		return models.Classification{Type: models.TypeAchievement, Confidence: 0.8}
	}

	if wordCount <= 3 && anyMatch(casualPatterns, lower) {
		return models.Classification{Type: models.TypeCasual, Confidence: 0.7}
	}

	return models.Classification{Type: models.TypeMentalHealth, Confidence: 0.5}
}
