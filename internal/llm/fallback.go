package llm

import (
	"strings"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

// TemplateResponder is the deterministic terminal fallback. It is a pure
// function of its inputs, never fails, and performs no I/O.
type TemplateResponder struct{}

var fallbackGreetings = map[model.Personality]string{
	model.PersonalitySweet:   "Hello there! 👋 I'm so glad you're here. How can I help you today? 💖",
	model.PersonalityAngry:   "Yeah, hi. What do you want? 🙄",
	model.PersonalityGrandpa: "Well hello there, young one! Come on in, have a seat. What brings you by today? 🪑",
}

var fallbackThanks = map[model.Personality]string{
	model.PersonalitySweet:   "You're so welcome! 😊 I'm always happy to help. Let me know if you need anything else! ✨",
	model.PersonalityAngry:   "Yeah, yeah, whatever. Glad I could help, I guess. 🙄",
	model.PersonalityGrandpa: "Ah, you're a polite one! That's nice. Happy to help, always glad to assist the young folks. 🎩",
}

var fallbackDefaults = map[model.Personality]string{
	model.PersonalitySweet:   "That's an interesting thought! 💖 I'm here to help you explore this further. What would you like to know more about? ✨",
	model.PersonalityAngry:   "Look, I get it. Just tell me specifically what you want to know, and I'll give you a straight answer. 😤",
	model.PersonalityGrandpa: "Hmm, interesting you mention that. Back in my day... let me think about that for you. 🎩",
}

// Respond returns the canned reply for the message category and personality.
// Unknown personalities fall back to the sweet set.
func (TemplateResponder) Respond(message string, p model.Personality) string {
	lower := strings.ToLower(message)

	if strings.Contains(lower, "hello") || strings.Contains(lower, "hi") || strings.Contains(lower, "hey") {
		return pick(fallbackGreetings, p)
	}
	if strings.Contains(lower, "thank") {
		return pick(fallbackThanks, p)
	}
	return pick(fallbackDefaults, p)
}

func pick(table map[model.Personality]string, p model.Personality) string {
	if s, ok := table[p]; ok {
		return s
	}
	return table[model.PersonalitySweet]
}
