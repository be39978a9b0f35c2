package chat

import (
	"strings"

	"github.com/mindwell/chat-service/internal/domain/models"
)

// Relationship-role keywords scanned out of recent history. Values are the
// role names used when the fallback engine refers back to a person.
var peopleKeywords = []string{
	"cousin", "boyfriend", "girlfriend", "friend", "mom", "dad", "parent",
	"brother", "sister", "partner", "husband", "wife", "boss", "coworker",
}

// Topic keywords scanned out of recent history.
var topicKeywords = []string{
	"toxic", "mean", "advice", "relationship", "family", "work",
	"boundaries", "help", "struggle", "angry", "sad", "anxious",
}

// conversationContext is an ephemeral summary of the recent history window,
// rebuilt per request.
type conversationContext struct {
	// formatted is the role-labeled transcript used in generation prompts.
	formatted string
	// people and topics are keyword hits used only by the fallback engine.
	// Both preserve first-mention order.
	people []string
	topics []string
}

// buildConversationContext summarizes the last window entries of history.
// The input history is never mutated.
func buildConversationContext(history []models.ChatMessage, window int) conversationContext {
	var cc conversationContext
	if len(history) == 0 {
		return cc
	}

	recent := history
	if len(recent) > window {
		recent = recent[len(recent)-window:]
	}

	lines := make([]string, 0, len(recent))
	seenPeople := make(map[string]bool)
	seenTopics := make(map[string]bool)

	for _, msg := range recent {
		role := "Emma"
		if msg.Role == models.RoleUser {
			role = "User"
		}
		lines = append(lines, role+": "+msg.Content)

		content := strings.ToLower(msg.Content)
		for _, person := range peopleKeywords {
			if strings.Contains(content, person) && !seenPeople[person] {
				seenPeople[person] = true
				cc.people = append(cc.people, person)
			}
		}
		for _, topic := range topicKeywords {
			if strings.Contains(content, topic) && !seenTopics[topic] {
				seenTopics[topic] = true
				cc.topics = append(cc.topics, topic)
			}
		}
	}

	cc.formatted = strings.Join(lines, "\n")
	return cc
}

func (cc conversationContext) hasPeople() bool {
	return len(cc.people) > 0
}

func (cc conversationContext) hasTopic(topic string) bool {
	for _, t := range cc.topics {
		if t == topic {
			return true
		}
	}
	return false
}
