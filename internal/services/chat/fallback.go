package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/mindwell/chat-service/internal/domain/models"
)

// FallbackResponder is the rule-based reply engine used when the generator
// is unavailable or returns nothing. It is a deliberate first-fit cascade:
// rule order is part of the contract, and a broad early rule (like the
// question mark check) shadows every later, more specific one.
type FallbackResponder struct {
	pick func(n int) int
}

// NewFallbackResponder creates a responder. pick selects an index in [0, n)
// for the randomized reply sets; pass nil for the default source.
func NewFallbackResponder(pick func(n int) int) *FallbackResponder {
	if pick == nil {
		pick = rand.Intn
	}
	return &FallbackResponder{pick: pick}
}

var (
	followUpWords = []string{
		"who", "what", "which", "they", "them", "that person", "this person",
		"we were talking", "you said", "earlier", "before",
	}
	deathWords = []string{"died", "death", "dead", "passed away", "funeral", "grave", "burial", "killed"}
	griefRelations = []string{
		"grandpa", "grandma", "grandfather", "grandmother", "parent", "mom", "dad",
		"mother", "father", "brother", "sister", "sibling", "friend", "pet", "family",
	}
	abandonmentWords = []string{"alone", "everyone leave", "everyone i love", "why me", "abandoned"}
	departureWords   = []string{"leave", "left", "gone", "died"}
	redFlagWords     = []string{"mean", "hurt", "rude", "ignore", "cruel", "toxic", "pushing me away"}
	relationshipCtx  = []string{"boy", "girl", "boyfriend", "girlfriend", "partner", "relationship"}
	romanticWords    = []string{"in love", "butterflies", "fall for", "crush"}
	problematicWords = []string{"mean", "hurt", "toxic"}
	decisionPhrases  = []string{"right option", "right person", "should i"}
	obsessivePhrases = []string{"24/7", "all the time", "can't stop thinking"}
	rejectionPhrases = []string{"what if", "what will happen", "doesn't fall for me", "doesn't like me"}
	advicePhrases    = []string{
		"what would you do", "what would u do", "what should i do", "what do i do",
		"give me advice", "give advice", "any advice", "some advice", "need advice",
		"suggest", "suggestion", "recommend",
	}
	familyCtxWords     = []string{"cousin", "family", "relative", "sibling", "parent"}
	friendCtxWords     = []string{"friend", "friendship", "toxic friend"}
	partnerCtxWords    = []string{"relationship", "boyfriend", "girlfriend", "partner"}
	philosophyPhrases  = []string{"view", "think about", "opinion", "life", "philosophy", "meaning"}
	ambivalenceWords   = []string{"complex", "conflicted", "confused", "mixed feelings", "don't know"}
	meetingWords       = []string{"met", "new", "someone"}
	personWords        = []string{"boy", "girl", "person", "guy"}
	negativeReflection = []string{"sad", "anxious", "depressed", "worried", "scared", "angry", "upset"}
)

var emotionReplies = map[models.Emotion][]string{
	models.EmotionSadness: {
		"I can hear the sadness in what you're sharing. 💙 It's okay to feel this way. What's weighing heaviest on your heart right now?",
		"That sounds really painful. 😔 Sometimes sadness needs space to be felt. Would you like to talk about what's making you feel this way?",
	},
	models.EmotionAnger: {
		"I sense some frustration and anger in what you're saying. 💙 Those are valid feelings. What's at the root of this anger?",
		"It sounds like something has really upset you. 😤 Anger often comes from feeling hurt or unheard. What triggered this?",
	},
	models.EmotionFear: {
		"I can feel the worry and fear in your words. 💙 It's scary when we're uncertain. What are you most afraid of right now?",
		"Anxiety and fear can be overwhelming. 😟 You're not alone in this. What's making you feel unsafe or worried?",
	},
	models.EmotionJoy: {
		"I love hearing this positive energy from you! ✨ What's bringing you this happiness?",
		"Your joy is wonderful! 😊 It's great to celebrate good moments. What's going well?",
	},
	models.EmotionLove: {
		"I can feel the warmth and affection in your words! 💕 Love is such a powerful emotion. Tell me more about what you're feeling?",
		"That's beautiful! 💗 It's wonderful when we connect deeply with others. What makes this feeling special for you?",
	},
}

var genericReplies = []string{
	"Tell me more about what you're experiencing. I'm here to listen. 💙",
	"I'm hearing you. What else is on your mind about this? 💭",
	"That's a lot to process. How are you feeling about all of this? 🌟",
	"I want to understand better. Can you share more about what this means to you? 💙",
}

// Respond produces a deterministic empathetic reply from the message, the
// recent history, and the detected sentiment. It always returns non-empty
// text and performs no external calls.
func (f *FallbackResponder) Respond(message string, history []models.ChatMessage, sentiment models.SentimentResult) string {
	lower := strings.ToLower(message)
	cc := buildConversationContext(history, 6)

	// 1. Follow-up reference to a previously mentioned person.
	if containsAny(lower, followUpWords) && cc.hasPeople() {
		person := cc.people[0]
		if containsAny(lower, []string{"who", "which", "what"}) {
			quality := "difficult"
			if cc.hasTopic("toxic") {
				quality = "toxic"
			}
			return fmt.Sprintf("We were just talking about your %s! 💙 You mentioned they were being %s. How are you feeling about the situation now?", person, quality)
		}
		if len(cc.topics) > 0 {
			return fmt.Sprintf("I'm still here to talk about your %s and the %s situation. 💙 What else is on your mind about this?", person, cc.topics[0])
		}
	}

	// 2. Death, grief, loss.
	if containsAny(lower, deathWords) {
		if containsAny(lower, griefRelations) {
			return "I'm so deeply sorry for your loss. 💔 Losing someone we love is one of the hardest things we can go through. It's completely normal to feel overwhelmed right now. What would help you most - would you like to talk about your memories of them, or would you prefer some support for coping with grief?"
		}
		return "I'm so sorry you're dealing with loss. 💔 That's incredibly painful. I'm here to listen if you want to talk about it, or I can suggest some ways to cope with grief. What feels right for you?"
	}

	// 3. Abandonment.
	if containsAny(lower, abandonmentWords) && containsAny(lower, departureWords) {
		return "Feeling abandoned and alone is such a painful experience. 💙 I want you to know that even though people may leave physically, the love and impact they had on your life stays with you. You're not alone right now - I'm here, and there are people who care. Would it help to talk about these feelings?"
	}

	// 4. Relationship red flags.
	if containsAny(lower, redFlagWords) && containsAny(lower, relationshipCtx) {
		return "I'm concerned about what you're sharing. 💙 Being treated meanly or pushed away isn't how healthy relationships work. You deserve someone who treats you with consistent kindness and respect. Can we talk about what red flags you're seeing and how this makes you feel?"
	}

	// 5. Romantic feelings without red-flag terms.
	if containsAny(lower, romanticWords) && !containsAny(lower, problematicWords) {
		return "Love and attraction are powerful feelings! 💕 It sounds like you're experiencing something intense. What qualities about this person are drawing you to them? And how do they treat you?"
	}

	// 6. Decision anxiety.
	if containsAny(lower, decisionPhrases) {
		return "That's a really important question to sit with. 🤔 Sometimes our gut feelings know things before our mind catches up. When you imagine your future, how do you feel when this person is part of it? What does your intuition tell you?"
	}

	// 7. Obsessive thoughts.
	if containsAny(lower, obsessivePhrases) {
		return "It sounds like this is really occupying your thoughts. 💭 When something takes up that much mental space, it can be exhausting. What do you think your mind is trying to work through?"
	}

	// 8. Fear of rejection.
	if containsAny(lower, rejectionPhrases) {
		return "Fear of rejection is so real and vulnerable. 💙 But I want you to consider - what about what YOU want? Sometimes we focus so much on whether someone will choose us that we forget to ask if they're the right choice for us. What do you genuinely want from this situation?"
	}

	// 9. Explicit advice request, with context-specific suggestions.
	if containsAny(lower, advicePhrases) {
		switch {
		case containsAny(lower, familyCtxWords):
			return "Family dynamics can be so tricky. 💙 Here's what I'd suggest: 1) Set clear boundaries about what behavior you'll accept, 2) Limit your exposure if they're toxic, 3) Talk to someone neutral (like a counselor) about healthy ways to cope. Remember, you can't change them, but you can protect your peace. What feels doable for you?"
		case containsAny(lower, friendCtxWords):
			return "Toxic friendships are exhausting. Here's my suggestion: 1) Have an honest conversation about how you feel (if it's safe), 2) Start creating distance gradually, 3) Build connections with people who uplift you. True friends shouldn't make you feel drained. What's your gut telling you to do?"
		case containsAny(lower, partnerCtxWords):
			return "In a relationship situation, here's what often helps: 1) Trust your instincts - if something feels wrong, it usually is, 2) Talk openly about your needs and boundaries, 3) Don't ignore red flags hoping they'll change. You deserve to feel safe and valued. What's your heart telling you?"
		default:
			return "I'd love to help you think through this! 💙 Here's my approach: 1) Listen to your gut feeling - what's it telling you? 2) Consider what you'd tell a friend in this situation, 3) Think about what aligns with your values and well-being. What feels most important to you right now?"
		}
	}

	// 10. Philosophy / meaning of life.
	if containsAny(lower, philosophyPhrases) {
		return "That's a deep question! 🤔 I think life is about finding meaning in our connections and experiences. What's prompting this reflection for you?"
	}

	// 11. Ambivalence / confusion.
	if containsAny(lower, ambivalenceWords) {
		return "It's totally normal for feelings to be complicated! 💭 Sometimes we can feel multiple things at once - attraction and concern, hope and doubt. What are the different feelings you're noticing?"
	}

	// 12. Met someone new.
	if containsAny(lower, meetingWords) && containsAny(lower, personWords) {
		return "Meeting someone new can bring up lots of emotions! 😊 What's been on your mind about this person?"
	}

	// 13. Any question mark, sentiment-gated.
	if strings.Contains(message, "?") {
		if sentiment.Sentiment == models.SentimentNegative {
			return "That's an important question to explore. 💙 I'm here to help you think through it. What's been weighing on you about this?"
		}
		return "Great question! 🌟 What are your own thoughts on this? Sometimes talking it through helps us discover what we already know inside."
	}

	// 14. Negative sentiment: reflect the first named emotion word.
	if sentiment.Sentiment == models.SentimentNegative {
		named := "difficulty"
		for _, word := range negativeReflection {
			if strings.Contains(lower, word) {
				named = word
				break
			}
		}
		return fmt.Sprintf("I can hear the %s in what you're sharing. 💙 These feelings are valid. Would you like to talk more about what's contributing to how you're feeling, or would some coping strategies be helpful right now?", named)
	}

	// 15. Positive sentiment.
	if sentiment.Sentiment == models.SentimentPositive {
		return "I love your positive energy! ✨ It's wonderful to hear you sounding good. What's bringing you joy right now?"
	}

	// 16. Emotion-specific reply sets.
	if len(sentiment.Emotions) > 0 {
		if replies, ok := emotionReplies[sentiment.Emotions[0]]; ok {
			return replies[f.pick(len(replies))]
		}
	}

	// 17. Generic open-ended prompt.
	return genericReplies[f.pick(len(genericReplies))]
}
