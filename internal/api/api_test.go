package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	"github.com/ayushi-devx/Virtual-Assistant/internal/llm"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/services"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store/sqlite"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	st, err := sqlite.New(filepath.Join(t.TempDir(), "api-test.db"))
	if err != nil {
		t.Fatalf("sqlite: %v", err)
	}
	reg := llm.NewRegistry(config.NewForTesting())
	disp := llm.NewDispatcher(reg, zerolog.Nop())
	convSvc := services.NewConversationService(st, disp, reg, zerolog.Nop())
	return NewRouter(Deps{
		Store:     st,
		Registry:  reg,
		ConvSvc:   convSvc,
		IsHealthy: func() bool { return true },
		Log:       zerolog.Nop(),
	})
}

func doJSON(t *testing.T, h http.Handler, method, path, owner string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if owner != "" {
		req.Header.Set("X-User-ID", owner)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v (body %s)", err, rr.Body.String())
	}
	return out
}

func TestHealth_NoAuthNeeded(t *testing.T) {
	h := newTestRouter(t)
	rr := doJSON(t, h, http.MethodGet, "/api/v1/health", "", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode[map[string]string](t, rr)
	if body["status"] != "healthy" {
		t.Fatalf("status = %q", body["status"])
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	h := newTestRouter(t)
	rr := doJSON(t, h, http.MethodGet, "/api/v1/conversations", "", nil)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestConversationLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/api/v1/conversations", "u1", map[string]string{"title": "study help"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	conv := decode[model.Conversation](t, rr)
	if conv.Personality != model.PersonalitySweet || conv.Provider != "openai" {
		t.Fatalf("defaults: %+v", conv)
	}

	path := "/api/v1/conversations/" + conv.ConversationID

	// With no provider configured the reply comes from the template set.
	rr = doJSON(t, h, http.MethodPost, path+"/messages", "u1", map[string]string{"text": "hello"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("send status = %d: %s", rr.Code, rr.Body.String())
	}
	ex := decode[model.Exchange](t, rr)
	if ex.UserMessage.Text != "hello" || ex.BotMessage.Text == "" {
		t.Fatalf("exchange: %+v", ex)
	}
	if ex.BotMessage.Sender != model.SenderBot {
		t.Fatalf("bot sender = %q", ex.BotMessage.Sender)
	}

	rr = doJSON(t, h, http.MethodPut, path+"/personality", "u1", map[string]string{"personality": "grandpa"})
	if rr.Code != http.StatusOK {
		t.Fatalf("personality status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, h, http.MethodPut, path+"/provider", "u1", map[string]string{"provider": "cohere"})
	if rr.Code != http.StatusOK {
		t.Fatalf("provider status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, h, http.MethodPut, path+"/title", "u1", map[string]string{"title": "renamed"})
	if rr.Code != http.StatusOK {
		t.Fatalf("title status = %d: %s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, h, http.MethodGet, path, "u1", nil)
	got := decode[model.Conversation](t, rr)
	if got.Title != "renamed" || got.Personality != model.PersonalityGrandpa || got.Provider != "cohere" {
		t.Fatalf("conversation after updates: %+v", got)
	}
	if len(got.Messages) != 2 {
		t.Fatalf("messages = %d", len(got.Messages))
	}

	rr = doJSON(t, h, http.MethodPost, path+"/archive", "u1", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("archive status = %d", rr.Code)
	}
	rr = doJSON(t, h, http.MethodGet, "/api/v1/conversations", "u1", nil)
	page := decode[model.ConversationPage](t, rr)
	if page.Total != 0 {
		t.Fatalf("archived conversation still listed: %+v", page)
	}
}

func TestConversation_ErrorMapping(t *testing.T) {
	h := newTestRouter(t)

	// Unknown personality on create -> 400
	rr := doJSON(t, h, http.MethodPost, "/api/v1/conversations", "u1", map[string]string{"personality": "martian"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad personality status = %d", rr.Code)
	}

	// Unknown provider on create -> 400
	rr = doJSON(t, h, http.MethodPost, "/api/v1/conversations", "u1", map[string]string{"provider": "martian"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad provider status = %d", rr.Code)
	}

	// Missing conversation -> 404
	rr = doJSON(t, h, http.MethodGet, "/api/v1/conversations/nope", "u1", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing conversation status = %d", rr.Code)
	}

	// Cross-owner access -> 404
	rr = doJSON(t, h, http.MethodPost, "/api/v1/conversations", "u1", map[string]string{})
	conv := decode[model.Conversation](t, rr)
	rr = doJSON(t, h, http.MethodGet, "/api/v1/conversations/"+conv.ConversationID, "u2", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("cross-owner status = %d", rr.Code)
	}

	// Blank message -> 400
	rr = doJSON(t, h, http.MethodPost, "/api/v1/conversations/"+conv.ConversationID+"/messages", "u1", map[string]string{"text": "  "})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("blank message status = %d", rr.Code)
	}
}

func TestProviders_List(t *testing.T) {
	h := newTestRouter(t)
	rr := doJSON(t, h, http.MethodGet, "/api/v1/providers", "u1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	body := decode[struct {
		Providers []llm.ProviderStatus `json:"providers"`
	}](t, rr)
	if len(body.Providers) != 4 {
		t.Fatalf("providers = %d, want 4", len(body.Providers))
	}
}

func TestBlogLifecycle(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/api/v1/blogs", "author1", map[string]any{
		"title": "Go Tips", "content": "Use interfaces sparingly.", "isPublished": true,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rr.Code, rr.Body.String())
	}
	blog := decode[model.Blog](t, rr)

	// Published listing visible to other users.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/blogs", "reader1", nil)
	page := decode[model.BlogPage](t, rr)
	if page.Total != 1 {
		t.Fatalf("published total = %d", page.Total)
	}

	// View counter bumps on read.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/blogs/"+blog.BlogID, "reader1", nil)
	got := decode[model.Blog](t, rr)
	if got.Views != 1 {
		t.Fatalf("views = %d, want 1", got.Views)
	}

	// Only the author may delete.
	rr = doJSON(t, h, http.MethodDelete, "/api/v1/blogs/"+blog.BlogID, "reader1", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("delete by non-author status = %d", rr.Code)
	}
	rr = doJSON(t, h, http.MethodDelete, "/api/v1/blogs/"+blog.BlogID, "author1", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d", rr.Code)
	}
}

func TestDeckAndCardEndpoints(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/api/v1/decks", "u1", map[string]any{"title": "Biology", "category": "Science"})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create deck status = %d: %s", rr.Code, rr.Body.String())
	}
	deck := decode[model.FlashcardDeck](t, rr)

	rr = doJSON(t, h, http.MethodPost, "/api/v1/decks/"+deck.DeckID+"/cards", "u1", map[string]string{
		"question": "What is a cell?", "answer": "The basic unit of life",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("add card status = %d: %s", rr.Code, rr.Body.String())
	}
	card := decode[model.Flashcard](t, rr)

	rr = doJSON(t, h, http.MethodGet, "/api/v1/decks/"+deck.DeckID, "u1", nil)
	got := decode[model.FlashcardDeck](t, rr)
	if len(got.Cards) != 1 {
		t.Fatalf("cards = %d", len(got.Cards))
	}

	rr = doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/v1/decks/%s/cards/%s", deck.DeckID, card.CardID), "u1", nil)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("remove card status = %d", rr.Code)
	}
}

func TestSavedAnswersAndSearch(t *testing.T) {
	h := newTestRouter(t)

	rr := doJSON(t, h, http.MethodPost, "/api/v1/saved-answers", "u1", map[string]string{
		"chatMessage": "what is photosynthesis", "botResponse": "How plants make food from light", "category": "biology",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("save status = %d: %s", rr.Code, rr.Body.String())
	}

	// Short query rejected.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/search?q=a", "u1", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("short query status = %d", rr.Code)
	}

	// Unknown type filter rejected.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/search?q=photo&type=martian", "u1", nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("bad type status = %d", rr.Code)
	}

	rr = doJSON(t, h, http.MethodGet, "/api/v1/search?q=photosynthesis", "u1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("search status = %d: %s", rr.Code, rr.Body.String())
	}
	results := decode[model.SearchResults](t, rr)
	if len(results.SavedAnswers) != 1 {
		t.Fatalf("saved answer hits = %d", len(results.SavedAnswers))
	}

	// Owner isolation.
	rr = doJSON(t, h, http.MethodGet, "/api/v1/search?q=photosynthesis", "u2", nil)
	results = decode[model.SearchResults](t, rr)
	if len(results.SavedAnswers) != 0 {
		t.Fatalf("cross-owner saved answer hits = %d", len(results.SavedAnswers))
	}
}
