package personality

import (
	"errors"
	"strings"
	"testing"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

func TestSystemPrompt_Closed(t *testing.T) {
	for _, p := range All() {
		prompt, err := SystemPrompt(p)
		if err != nil {
			t.Fatalf("SystemPrompt(%s): %v", p, err)
		}
		if prompt == "" {
			t.Fatalf("SystemPrompt(%s): empty", p)
		}
		again, _ := SystemPrompt(p)
		if again != prompt {
			t.Fatalf("SystemPrompt(%s): not stable", p)
		}
	}
}

func TestSystemPrompt_Unknown(t *testing.T) {
	if _, err := SystemPrompt("martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSystemPrompt_PersonaIdentity(t *testing.T) {
	cases := map[model.Personality]string{
		model.PersonalitySweet:   "Sweet Bot",
		model.PersonalityAngry:   "Angry Bot",
		model.PersonalityGrandpa: "Grandpa Bot",
	}
	for p, want := range cases {
		prompt, err := SystemPrompt(p)
		if err != nil {
			t.Fatalf("SystemPrompt(%s): %v", p, err)
		}
		if !strings.Contains(prompt, want) {
			t.Errorf("SystemPrompt(%s) does not mention %q", p, want)
		}
	}
}

func TestExampleFor(t *testing.T) {
	for _, p := range All() {
		ex, err := ExampleFor(p)
		if err != nil || ex.User == "" || ex.Bot == "" {
			t.Fatalf("ExampleFor(%s): ex=%+v err=%v", p, ex, err)
		}
	}
	if _, err := ExampleFor("martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}
