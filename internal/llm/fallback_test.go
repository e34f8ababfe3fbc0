package llm

import (
	"testing"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

func TestTemplateResponder_Pure(t *testing.T) {
	var r TemplateResponder
	a := r.Respond("Hello", model.PersonalitySweet)
	b := r.Respond("Hello", model.PersonalitySweet)
	if a != b {
		t.Fatalf("responder not deterministic: %q vs %q", a, b)
	}
	if a == "" {
		t.Fatal("empty fallback reply")
	}
}

func TestTemplateResponder_Categories(t *testing.T) {
	var r TemplateResponder

	cases := []struct {
		message string
		want    string
	}{
		{"Hey there", fallbackGreetings[model.PersonalityAngry]},
		{"thanks a lot", fallbackThanks[model.PersonalityAngry]},
		{"explain quicksort", fallbackDefaults[model.PersonalityAngry]},
	}
	for _, tc := range cases {
		if got := r.Respond(tc.message, model.PersonalityAngry); got != tc.want {
			t.Errorf("Respond(%q) = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestTemplateResponder_AllPersonalitiesCovered(t *testing.T) {
	var r TemplateResponder
	for _, p := range model.Personalities() {
		for _, msg := range []string{"hello", "thank you", "what is go"} {
			if r.Respond(msg, p) == "" {
				t.Errorf("empty reply for %s / %q", p, msg)
			}
		}
	}
}

func TestTemplateResponder_UnknownPersonalityUsesSweet(t *testing.T) {
	var r TemplateResponder
	if got := r.Respond("hello", "martian"); got != fallbackGreetings[model.PersonalitySweet] {
		t.Fatalf("Respond unknown personality = %q", got)
	}
}
