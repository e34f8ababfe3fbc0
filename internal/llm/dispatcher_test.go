package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

func newTestDispatcher(cfg *config.Config) *Dispatcher {
	return NewDispatcher(NewRegistry(cfg), zerolog.Nop())
}

func TestDispatcher_UnknownPersonality(t *testing.T) {
	d := newTestDispatcher(config.NewForTesting())
	if _, err := d.Generate(context.Background(), "hi", "martian", "openai"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestDispatcher_UnknownProvider(t *testing.T) {
	d := newTestDispatcher(config.NewForTesting())
	if _, err := d.Generate(context.Background(), "hi", model.PersonalitySweet, "martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

// Every valid (personality, provider) pair yields text and no error, even
// with zero credentials configured.
func TestDispatcher_AlwaysRepliesWhenUnconfigured(t *testing.T) {
	d := newTestDispatcher(config.NewForTesting())
	for _, p := range model.Personalities() {
		for _, providerID := range []string{"openai", "gemini", "huggingface", "cohere"} {
			res, err := d.Generate(context.Background(), "explain recursion", p, providerID)
			if err != nil {
				t.Fatalf("Generate(%s, %s): %v", p, providerID, err)
			}
			if res.Text == "" {
				t.Fatalf("Generate(%s, %s): empty text", p, providerID)
			}
			if res.Source != SourceFallback {
				t.Fatalf("Generate(%s, %s): source = %q", p, providerID, res.Source)
			}
		}
	}
}

func TestDispatcher_ModelReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"model says hi"}}]}`))
	}))
	defer srv.Close()

	cfg := config.NewForTesting()
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIBaseURL = srv.URL
	d := newTestDispatcher(cfg)

	res, err := d.Generate(context.Background(), "hi", model.PersonalitySweet, "openai")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceModel || res.Text != "model says hi" {
		t.Fatalf("got %+v, want model reply", res)
	}
}

func TestDispatcher_ProviderErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	cfg := config.NewForTesting()
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIBaseURL = srv.URL
	d := newTestDispatcher(cfg)

	res, err := d.Generate(context.Background(), "hello", model.PersonalityGrandpa, "openai")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", res.Source)
	}
	if res.Text != fallbackGreetings[model.PersonalityGrandpa] {
		t.Fatalf("text = %q, want grandpa greeting", res.Text)
	}
}

func TestDispatcher_EmptyModelTextFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	}))
	defer srv.Close()

	cfg := config.NewForTesting()
	cfg.OpenAIAPIKey = "test-key"
	cfg.OpenAIBaseURL = srv.URL
	d := newTestDispatcher(cfg)

	res, err := d.Generate(context.Background(), "thanks", model.PersonalitySweet, "openai")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Source != SourceFallback || res.Text != fallbackThanks[model.PersonalitySweet] {
		t.Fatalf("got %+v, want sweet thanks template", res)
	}
}
