package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mindwell/chat-service/internal/domain/models"
)

func TestDetectLanguage_English(t *testing.T) {
	tests := []string{
		"I feel really down today",
		"my week was exhausting",
		"",
	}

	for _, text := range tests {
		assert.Equal(t, models.LanguageEnglish, DetectLanguage(text), "text: %q", text)
	}
}

func TestDetectLanguage_HinglishMarkers(t *testing.T) {
	tests := []string{
		"yaar I am so tired",
		"kya I should even say anything",
		"sab theek but I feel weird",
	}

	for _, text := range tests {
		assert.Equal(t, models.LanguageHinglish, DetectLanguage(text), "text: %q", text)
	}
}

func TestDetectLanguage_UrduScript(t *testing.T) {
	assert.Equal(t, models.LanguageUrdu, DetectLanguage("میں بہت اداس ہوں"))
}

func TestDetectLanguage_MinorityScriptIsHinglish(t *testing.T) {
	// A few script runes inside mostly Latin text reads as code-switching,
	// not Urdu.
	text := "I am feeling دل broken today and nothing seems to be going well for me at all"

	assert.Equal(t, models.LanguageHinglish, DetectLanguage(text))
}

func TestDetectLanguage_IgnoresHistory(t *testing.T) {
	// Detection is per message; the same text always yields the same result.
	first := DetectLanguage("I feel really down today")
	second := DetectLanguage("I feel really down today")

	assert.Equal(t, first, second)
}
