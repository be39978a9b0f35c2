// Package models defines the domain data model for the chat service.
package models

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is a single turn of caller-supplied conversation history.
type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// IncomingMessage is one chat request: the message text plus the history the
// caller carries between calls. The service itself is stateless; history
// persistence is the caller's responsibility.
type IncomingMessage struct {
	Text    string
	History []ChatMessage
}

// MessageType is the coarse intent category assigned to a message. It
// determines which response path the composer takes.
type MessageType string

const (
	TypeInvalid      MessageType = "invalid"
	TypeCrisis       MessageType = "crisis"
	TypeGreeting     MessageType = "greeting"
	TypeBotInfo      MessageType = "bot_info"
	TypeGratitude    MessageType = "gratitude"
	TypeAchievement  MessageType = "achievement"
	TypeCasual       MessageType = "casual"
	TypeMentalHealth MessageType = "mental_health"
)

// Classification is the result of intent classification. Derived per request,
// never persisted.
type Classification struct {
	Type       MessageType `json:"type"`
	Confidence float64     `json:"confidence"`
}

// Language is the detected language of the incoming text.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageUrdu     Language = "urdu"
)

// Sentiment is a coarse five-level sentiment label.
type Sentiment string

const (
	SentimentVeryNegative Sentiment = "very negative"
	SentimentNegative     Sentiment = "negative"
	SentimentNeutral      Sentiment = "neutral"
	SentimentPositive     Sentiment = "positive"
	SentimentVeryPositive Sentiment = "very positive"
)

// Emotion is one of the five labels the emotion model is trained on.
type Emotion string

const (
	EmotionAnger   Emotion = "anger"
	EmotionFear    Emotion = "fear"
	EmotionJoy     Emotion = "joy"
	EmotionLove    Emotion = "love"
	EmotionSadness Emotion = "sadness"
)

// SentimentResult is the outcome of sentiment analysis: an overall sentiment
// plus at most two emotion tags, ordered by strength.
type SentimentResult struct {
	Sentiment  Sentiment `json:"sentiment"`
	Emotions   []Emotion `json:"emotions"`
	Confidence float64   `json:"confidence"`
}

// NeutralSentiment returns the zero-signal sentiment result used for very
// short messages and the invalid path.
func NeutralSentiment() SentimentResult {
	return SentimentResult{
		Sentiment:  SentimentNeutral,
		Emotions:   []Emotion{},
		Confidence: 0.0,
	}
}

// ResponsePayload is the body returned for every syntactically valid chat
// request, including degraded and fallback cases.
type ResponsePayload struct {
	Response       string          `json:"response"`
	Sentiment      SentimentResult `json:"sentiment"`
	ProcessingTime float64         `json:"processing_time"`
	ResponseType   string          `json:"response_type"`
}
