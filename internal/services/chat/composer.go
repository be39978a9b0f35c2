package chat

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mindwell/chat-service/internal/core/emotion"
	"github.com/mindwell/chat-service/internal/core/generation"
	"github.com/mindwell/chat-service/internal/core/retrieval"
	"github.com/mindwell/chat-service/internal/domain/models"
)

// Topical lexicon deciding whether retrieved documents are attached to the
// generation prompt. Distinct from the classifier's category: it gates
// retrieval, never routing.
var mentalHealthKeywords = []string{
	"anxious", "anxiety", "depressed", "depression", "stressed", "stress",
	"panic", "worried", "fear", "scared", "sad", "lonely", "overwhelmed",
	"can't sleep", "insomnia", "therapy", "therapist", "help me",
}

// Role-label artifacts the generator sometimes prepends to its reply.
var rolePrefix = regexp.MustCompile(`(?i)^(Emma:|Assistant:|AI:|User:)\s*`)

const casualSystemPrompt = "You are Emma, a friendly companion. Respond in 1-2 sentences, casually and warmly."

const englishSystemPrompt = `You are Emma, a warm mental wellness companion.
- Be conversational like a supportive friend
- Respond in 2-3 sentences
- Use emojis occasionally 💙
- Ask follow-up questions
- For serious issues, suggest professional help
- Be human and relatable`

const hinglishSystemPrompt = `You are Emma, a friendly mental wellness companion.

CRITICAL LANGUAGE RULE: User speaks Roman Urdu/Hinglish. You MUST reply in Roman Urdu/Hinglish.

Examples of correct responses:
- "Yaar, that sounds really tough. Kya hua? Tell me more."
- "Acha, I understand. Theek hai, let's talk about it."
- "Dekho, you're not alone in this. Main yahan hoon for you."

Use words: yaar, kya, hai, acha, theek, dekho, suno, mujhe, tumhe, etc.
Keep it casual, warm, and supportive. 2-3 sentences max.`

const urduSystemPrompt = `You are Emma, a friendly mental wellness companion.

IMPORTANT: Respond in Urdu script. Be warm and supportive.`

// Config holds the composer dependencies and tuning knobs.
type Config struct {
	Retriever  retrieval.Retriever
	Generator  generation.Generator
	Classifier emotion.Classifier

	// HistoryWindow is the number of trailing history entries summarized
	// into the generation prompt. Defaults to 6.
	HistoryWindow int
	// RetrievalK is the number of documents attached to topical prompts.
	// Defaults to 2.
	RetrievalK int
	// MaxTokens bounds generated replies. Defaults to 200.
	MaxTokens int
	// Pick selects an index in [0, n) for randomized template choice;
	// nil uses the default source. Injected for deterministic tests.
	Pick func(n int) int
}

// Service is the response composer: it classifies an incoming message,
// decides the response path (template, quick generation, or RAG), and
// assembles the outgoing payload with deterministic fallback behavior when
// any collaborator fails. Exactly one path is taken per request.
type Service struct {
	retriever retrieval.Retriever
	generator generation.Generator
	analyzer  *SentimentAnalyzer
	fallback  *FallbackResponder

	historyWindow int
	retrievalK    int
	maxTokens     int
	pick          func(n int) int
}

// NewService creates the composer. Retriever and Generator are required;
// the emotion classifier is optional (sentiment degrades to keyword-only).
func NewService(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if cfg.Retriever == nil {
		return nil, fmt.Errorf("retriever is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}

	historyWindow := cfg.HistoryWindow
	if historyWindow == 0 {
		historyWindow = 6
	}
	retrievalK := cfg.RetrievalK
	if retrievalK == 0 {
		retrievalK = 2
	}
	maxTokens := cfg.MaxTokens
	if maxTokens == 0 {
		maxTokens = 200
	}
	pick := cfg.Pick
	if pick == nil {
		pick = rand.Intn
	}

	return &Service{
		retriever:     cfg.Retriever,
		generator:     cfg.Generator,
		analyzer:      NewSentimentAnalyzer(cfg.Classifier),
		fallback:      NewFallbackResponder(pick),
		historyWindow: historyWindow,
		retrievalK:    retrievalK,
		maxTokens:     maxTokens,
		pick:          pick,
	}, nil
}

// Respond runs the full routing pipeline for one message and always returns
// a payload with a non-empty response. Collaborator failures degrade the
// reply; they never propagate.
func (s *Service) Respond(ctx context.Context, msg models.IncomingMessage) models.ResponsePayload {
	start := time.Now()
	text := strings.TrimSpace(msg.Text)

	classification := ClassifyMessage(text)

	if classification.Type == models.TypeInvalid {
		return s.payload(invalidReply, models.NeutralSentiment(), classification.Type, start)
	}

	language := DetectLanguage(text)

	// Safety override: crisis short-circuits every other path, for every
	// language.
	if classification.Type == models.TypeCrisis {
		return s.payload(crisisMessage(language), s.analyzer.Analyze(ctx, text), classification.Type, start)
	}

	// Template replies exist only in English; other languages escalate to
	// generation so the reply matches the user's language.
	if language == models.LanguageEnglish {
		if templates := templateFor(classification.Type); templates != nil {
			reply := templates[s.pick(len(templates))]
			return s.payload(reply, s.analyzer.Analyze(ctx, text), classification.Type, start)
		}

		if classification.Type == models.TypeCasual {
			return s.respondCasual(ctx, text, start)
		}
	}

	return s.respondRAG(ctx, text, msg.History, language, start)
}

// respondCasual is the quick generation path: a short model call with no
// retrieval, degrading to a fixed filler line.
func (s *Service) respondCasual(ctx context.Context, text string, start time.Time) models.ResponsePayload {
	prompt := fmt.Sprintf("User said: '%s'\n\nRespond naturally and briefly:", text)

	reply, err := s.generator.Generate(ctx, prompt, casualSystemPrompt, 100)
	if err != nil {
		log.Warn().Err(err).Msg("generator failed on casual path")
		reply = ""
	}
	if reply == "" {
		reply = casualFillerReply
	}

	return s.payload(cleanReply(reply), s.analyzer.Analyze(ctx, text), models.TypeCasual, start)
}

// respondRAG is the full path: conversation context, optional retrieval,
// language-selected system prompt, generation, and rule-based fallback.
func (s *Service) respondRAG(ctx context.Context, text string, history []models.ChatMessage, language models.Language, start time.Time) models.ResponsePayload {
	sentiment := s.analyzer.Analyze(ctx, text)
	cc := buildConversationContext(history, s.historyWindow)

	var docContext string
	if isMentalHealthTopic(text) {
		docs, err := s.retriever.Search(ctx, text, s.retrievalK)
		if err != nil {
			log.Warn().Err(err).Msg("retriever failed, continuing without context")
		}
		docContext = strings.Join(docs, "\n")
	}

	prompt := buildPrompt(text, cc.formatted, docContext)

	reply, err := s.generator.Generate(ctx, prompt, systemPromptFor(language), s.maxTokens)
	if err != nil {
		log.Warn().Err(err).Msg("generator failed, using fallback responder")
		reply = ""
	}

	if reply == "" {
		if language == models.LanguageHinglish {
			reply = hinglishRetryReply
		} else {
			reply = s.fallback.Respond(text, history, sentiment)
		}
	}

	return s.payload(cleanReply(reply), sentiment, models.TypeMentalHealth, start)
}

func (s *Service) payload(response string, sentiment models.SentimentResult, responseType models.MessageType, start time.Time) models.ResponsePayload {
	return models.ResponsePayload{
		Response:       response,
		Sentiment:      sentiment,
		ProcessingTime: math.Round(time.Since(start).Seconds()*1000) / 1000,
		ResponseType:   string(responseType),
	}
}

func isMentalHealthTopic(text string) bool {
	return containsAny(strings.ToLower(text), mentalHealthKeywords)
}

func systemPromptFor(language models.Language) string {
	switch language {
	case models.LanguageHinglish:
		return hinglishSystemPrompt
	case models.LanguageUrdu:
		return urduSystemPrompt
	default:
		return englishSystemPrompt
	}
}

// buildPrompt assembles the generation prompt from the conversation
// transcript, the user message, and any retrieved reference material.
func buildPrompt(text, conversation, docContext string) string {
	if docContext != "" {
		return fmt.Sprintf("Previous conversation:\n%s\n\nUser: %s\n\nHelpful techniques:\n%s\n\nRespond with empathy (2-3 sentences):", conversation, text, docContext)
	}
	return fmt.Sprintf("Previous conversation:\n%s\n\nUser: %s\n\nRespond naturally as a supportive friend (2-3 sentences):", conversation, text)
}

// cleanReply strips role-label artifacts and truncates runaway generations
// to their first three sentences.
func cleanReply(reply string) string {
	reply = strings.TrimSpace(reply)
	reply = rolePrefix.ReplaceAllString(reply, "")
	reply = strings.TrimSpace(reply)

	if len(strings.Fields(reply)) > 80 {
		sentences := splitSentences(reply)
		if len(sentences) > 3 {
			reply = strings.Join(sentences[:3], " ") + "."
		}
	}

	return reply
}

// splitSentences splits on sentence-terminating punctuation followed by
// whitespace, keeping the punctuation with its sentence.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			sentences = append(sentences, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		sentences = append(sentences, rest)
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
