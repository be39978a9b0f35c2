package chat

import (
	"context"
	"errors"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mindwell/chat-service/internal/core/emotion"
	"github.com/mindwell/chat-service/internal/domain/models"
)

// Keyword lexicons for the high-precision sentiment source. Matching is
// substring-based on the lowered text, mirroring the rule tables the
// classifier model is validated against.
var (
	greetingWords       = []string{"hello", "hi", "hey", "kessay", "kaisay", "kaise"}
	strongNegativeWords = []string{"worst", "terrible", "awful", "hate", "horrible"}
	sadnessWords        = []string{"sad", "depressed", "lonely", "cry", "udaas", "darr"}
	fearWords           = []string{"anxious", "worried", "scared", "fear", "stress"}
	positiveWords       = []string{"happy", "great", "wonderful", "amazing", "excited", "khush"}
	loveWords           = []string{"love", "adore", "pyar"}

	// Validation lexicons for cross-checking the model's claims.
	negativeEvidenceWords = []string{"worst", "terrible", "awful", "sad", "lonely", "hate", "depressed", "anxious", "stressed"}
	positiveEvidenceWords = []string{"happy", "great", "wonderful", "amazing", "excited", "love"}
	negationWords         = []string{"not", "no", "never"}
)

// Emotion label buckets for the 5-label custom model.
var (
	negativeEmotions = map[models.Emotion]bool{
		models.EmotionSadness: true,
		models.EmotionAnger:   true,
		models.EmotionFear:    true,
	}
	positiveEmotions = map[models.Emotion]bool{
		models.EmotionJoy:  true,
		models.EmotionLove: true,
	}
)

var errNoClassifier = errors.New("no emotion classifier configured")

// SentimentAnalyzer combines a keyword source and an external emotion model
// into a precision-first override chain: high-confidence keyword evidence
// wins outright, the model fills in only when keywords found nothing, and
// model claims that contradict direct lexical evidence are rejected.
type SentimentAnalyzer struct {
	classifier emotion.Classifier
}

// NewSentimentAnalyzer creates an analyzer over the given emotion model.
// A nil classifier is allowed; the analyzer then runs keyword-only.
func NewSentimentAnalyzer(classifier emotion.Classifier) *SentimentAnalyzer {
	return &SentimentAnalyzer{classifier: classifier}
}

// Analyze derives a sentiment result for the text. Messages under three
// words carry too little signal and are reported as neutral at zero
// confidence.
func (a *SentimentAnalyzer) Analyze(ctx context.Context, text string) models.SentimentResult {
	if len(strings.Fields(text)) < 3 {
		return models.NeutralSentiment()
	}

	keywordResult := keywordSentiment(text)

	// Direct lexical evidence is high precision; trust it outright.
	if keywordResult.Confidence >= 0.7 {
		return keywordResult
	}

	if keywordResult.Sentiment == models.SentimentNeutral && keywordResult.Confidence < 0.6 {
		modelResult, err := a.modelSentiment(ctx, text)
		if err != nil {
			log.Warn().Err(err).Msg("emotion model unavailable, using keyword sentiment")
			return keywordResult
		}

		if modelResult.Confidence > 0.7 {
			return validateModelResult(text, modelResult)
		}
	}

	return keywordResult
}

// keywordSentiment is the lexicon source. Greeting words are forced to
// neutral so that pleasantries never read as emotional content.
func keywordSentiment(text string) models.SentimentResult {
	lower := strings.ToLower(text)

	if containsAny(lower, greetingWords) {
		return models.SentimentResult{Sentiment: models.SentimentNeutral, Emotions: []models.Emotion{}, Confidence: 0.8}
	}
	if containsAny(lower, strongNegativeWords) {
		return models.SentimentResult{Sentiment: models.SentimentNegative, Emotions: []models.Emotion{models.EmotionAnger}, Confidence: 0.7}
	}
	if containsAny(lower, sadnessWords) {
		return models.SentimentResult{Sentiment: models.SentimentNegative, Emotions: []models.Emotion{models.EmotionSadness}, Confidence: 0.7}
	}
	if containsAny(lower, fearWords) {
		return models.SentimentResult{Sentiment: models.SentimentNegative, Emotions: []models.Emotion{models.EmotionFear}, Confidence: 0.7}
	}
	if containsAny(lower, positiveWords) {
		return models.SentimentResult{Sentiment: models.SentimentPositive, Emotions: []models.Emotion{models.EmotionJoy}, Confidence: 0.7}
	}
	if containsAny(lower, loveWords) {
		return models.SentimentResult{Sentiment: models.SentimentPositive, Emotions: []models.Emotion{models.EmotionLove}, Confidence: 0.7}
	}

	return models.SentimentResult{Sentiment: models.SentimentNeutral, Emotions: []models.Emotion{}, Confidence: 0.5}
}

// modelSentiment maps the external classifier's top-2 predictions onto the
// sentiment scale, with the "very" prefix above 0.7 confidence.
func (a *SentimentAnalyzer) modelSentiment(ctx context.Context, text string) (models.SentimentResult, error) {
	if a.classifier == nil {
		return models.SentimentResult{}, errNoClassifier
	}

	predictions, err := a.classifier.Classify(ctx, text)
	if err != nil {
		return models.SentimentResult{}, err
	}
	if len(predictions) == 0 {
		return models.SentimentResult{}, errNoClassifier
	}

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].Score > predictions[j].Score
	})

	emotions := make([]models.Emotion, 0, 2)
	seen := make(map[models.Emotion]bool)
	for _, p := range predictions {
		e := models.Emotion(strings.ToLower(p.Label))
		if seen[e] {
			continue
		}
		seen[e] = true
		emotions = append(emotions, e)
		if len(emotions) == 2 {
			break
		}
	}

	primary := emotions[0]
	score := predictions[0].Score

	var sentiment models.Sentiment
	switch {
	case negativeEmotions[primary] && score > 0.7:
		sentiment = models.SentimentVeryNegative
	case negativeEmotions[primary]:
		sentiment = models.SentimentNegative
	case positiveEmotions[primary] && score > 0.7:
		sentiment = models.SentimentVeryPositive
	case positiveEmotions[primary]:
		sentiment = models.SentimentPositive
	default:
		sentiment = models.SentimentNeutral
	}

	return models.SentimentResult{
		Sentiment:  sentiment,
		Emotions:   emotions,
		Confidence: math.Round(score*100) / 100,
	}, nil
}

// validateModelResult sanity-checks the model against direct lexical
// evidence. The override direction is asymmetric on purpose: a positive
// claim falls to any negative evidence, while a negative claim survives
// unless positive evidence appears without a nearby negation.
func validateModelResult(text string, modelResult models.SentimentResult) models.SentimentResult {
	lower := strings.ToLower(text)

	if modelResult.Sentiment == models.SentimentPositive || modelResult.Sentiment == models.SentimentVeryPositive {
		if containsAny(lower, negativeEvidenceWords) {
			return models.SentimentResult{
				Sentiment:  models.SentimentNegative,
				Emotions:   []models.Emotion{models.EmotionSadness},
				Confidence: 0.8,
			}
		}
	}

	if modelResult.Sentiment == models.SentimentNegative || modelResult.Sentiment == models.SentimentVeryNegative {
		if containsAny(lower, positiveEvidenceWords) && !containsAny(lower, negationWords) {
			return models.SentimentResult{
				Sentiment:  models.SentimentPositive,
				Emotions:   []models.Emotion{models.EmotionJoy},
				Confidence: 0.8,
			}
		}
	}

	return modelResult
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
