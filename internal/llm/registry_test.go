package llm

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

func TestRegistry_ListOrder(t *testing.T) {
	reg := NewRegistry(config.NewForTesting())
	want := []string{"openai", "gemini", "huggingface", "cohere"}
	if got := reg.List(); !reflect.DeepEqual(got, want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry(config.NewForTesting())
	if _, err := reg.Resolve("martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("Resolve unknown: err = %v, want ErrValidation", err)
	}
	if !reg.IsValid("cohere") || reg.IsValid("martian") {
		t.Fatal("IsValid misclassified")
	}
}

func TestRegistry_DefaultFallsBackToOpenAI(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.AIProvider = "not-a-provider"
	if got := NewRegistry(cfg).Default(); got != "openai" {
		t.Fatalf("Default() = %q, want openai", got)
	}

	cfg.AIProvider = "gemini"
	if got := NewRegistry(cfg).Default(); got != "gemini" {
		t.Fatalf("Default() = %q, want gemini", got)
	}
}

func TestRegistry_Statuses(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.CohereAPIKey = "test-key"
	reg := NewRegistry(cfg)

	statuses := reg.Statuses()
	if len(statuses) != 4 {
		t.Fatalf("statuses = %d, want 4", len(statuses))
	}
	for _, st := range statuses {
		wantConfigured := st.ID == "cohere"
		if st.Configured != wantConfigured {
			t.Errorf("%s configured = %v", st.ID, st.Configured)
		}
		if st.Default != (st.ID == "openai") {
			t.Errorf("%s default = %v", st.ID, st.Default)
		}
	}
}
