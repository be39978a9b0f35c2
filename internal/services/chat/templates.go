package chat

import "github.com/mindwell/chat-service/internal/domain/models"

// Canned replies for low-effort intents. Selection is uniform over each
// list; tests assert membership, not exact strings.
var (
	greetingTemplates = []string{
		"Hey there! 👋 How are you doing today?",
		"Hi! 😊 What's on your mind?",
		"Hello! How's your day going?",
		"Hey! Good to hear from you. How are you feeling?",
		"Hi there! 🌟 How can I support you today?",
	}

	botInfoTemplates = []string{
		"I'm Emma, your mental wellness companion! 🌸 I'm here to listen, offer support, and share evidence-based wellness techniques. Think of me as a friendly space to talk about what's on your mind. What would you like to chat about?",
		"I'm Emma! 💙 I help with mental wellness through supportive conversation. I can listen to your thoughts, suggest coping strategies, and provide a safe space to express yourself. How are you feeling today?",
	}

	gratitudeTemplates = []string{
		"You're very welcome! 💕 I'm here whenever you need to talk.",
		"Happy to help! 😊 Remember, I'm always here for you.",
		"Anytime! That's what I'm here for. 🌟",
		"Glad I could help! Feel free to reach out whenever you need support. 💙",
	}

	achievementTemplates = []string{
		"That's amazing! 🎉 You should be so proud of yourself! Tell me more about it!",
		"Congratulations! 🌟 That's a huge accomplishment! How does it feel?",
		"Wow, that's fantastic news! 🎊 You worked hard for this. How are you celebrating?",
		"I'm so happy for you! 🥳 You deserve this success!",
	}
)

// Crisis messages are canonical per language family and never varied.
var crisisMessages = map[models.Language]string{
	models.LanguageEnglish: "I'm really concerned about what you're sharing. Please reach out to a crisis helpline immediately:\n\n🆘 National Suicide Prevention Lifeline: 988 (call or text)\n🆘 Crisis Text Line: Text HOME to 741741\n\nYou matter, and professional help is available 24/7. Will you reach out to them?",
	models.LanguageHinglish: "Yaar, I'm really worried about what you're sharing. Please abhi kisi crisis helpline se baat karo:\n\n🆘 National Suicide Prevention Lifeline: 988 (call or text)\n🆘 Crisis Text Line: Text HOME to 741741\n\nTum matter karte ho, aur professional help 24/7 available hai. Will you reach out to them?",
	models.LanguageUrdu:     "میں آپ کی بات سن کر بہت فکرمند ہوں۔ براہ کرم فوراً کسی کرائسس ہیلپ لائن سے رابطہ کریں:\n\n🆘 National Suicide Prevention Lifeline: 988\n🆘 Crisis Text Line: HOME لکھ کر 741741 پر بھیجیں\n\nآپ اہم ہیں، اور پیشہ ورانہ مدد ہر وقت دستیاب ہے۔",
}

const invalidReply = "I didn't quite catch that. Could you tell me more?"

const casualFillerReply = "I'm here with you. What's on your mind?"

const hinglishRetryReply = "Yaar, I'm having trouble understanding right now. Can you say that again? 💙"

// templateFor returns the template list for an intent, or nil when the
// intent has no canned replies.
func templateFor(msgType models.MessageType) []string {
	switch msgType {
	case models.TypeGreeting:
		return greetingTemplates
	case models.TypeBotInfo:
		return botInfoTemplates
	case models.TypeGratitude:
		return gratitudeTemplates
	case models.TypeAchievement:
		return achievementTemplates
	default:
		return nil
	}
}

// crisisMessage returns the canonical crisis reply for a language, falling
// back to the English message.
func crisisMessage(lang models.Language) string {
	if msg, ok := crisisMessages[lang]; ok {
		return msg
	}
	return crisisMessages[models.LanguageEnglish]
}
