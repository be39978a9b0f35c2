package chat

import (
	"strings"

	"github.com/mindwell/chat-service/internal/domain/models"
)

// Roman Urdu / Hinglish marker words. A single hit is enough to classify the
// message as hinglish; the list favors precision over recall.
var hinglishMarkers = []string{
	"abay", "abey", "yaar", "yr", "hai", "kya", "acha", "aur", "maza", "koi",
	"bhi", "nahi", "haan", "theek", "dekho", "bol", "kar", "karo", "dost", "bhai",
}

// DetectLanguage classifies text as english, hinglish, or urdu. Pure and
// deterministic: history never influences the result.
func DetectLanguage(text string) models.Language {
	var scriptRunes, totalRunes int
	for _, r := range text {
		totalRunes++
		// Arabic (Urdu) and Devanagari (Hindi) script blocks.
		if (r >= 0x0600 && r <= 0x06FF) || (r >= 0x0900 && r <= 0x097F) {
			scriptRunes++
		}
	}

	if totalRunes == 0 {
		return models.LanguageEnglish
	}

	if float64(scriptRunes) > float64(totalRunes)*0.3 {
		return models.LanguageUrdu
	}

	lower := strings.ToLower(text)
	for _, marker := range hinglishMarkers {
		if strings.Contains(lower, marker) {
			return models.LanguageHinglish
		}
	}
	if scriptRunes > 0 {
		return models.LanguageHinglish
	}

	return models.LanguageEnglish
}
