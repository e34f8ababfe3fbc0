package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/config"
	"github.com/ayushi-devx/Virtual-Assistant/internal/llm"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// --- Fakes ---

type fakeStore struct {
	convs *fakeConversations
}

func newFakeStore() *fakeStore {
	return &fakeStore{convs: &fakeConversations{
		byID: map[string]*model.Conversation{},
		msgs: map[string][]*model.Message{},
	}}
}

func (f *fakeStore) Conversations() store.Conversations   { return f.convs }
func (f *fakeStore) Blogs() store.Blogs                   { panic("unused") }
func (f *fakeStore) FlashcardDecks() store.FlashcardDecks { panic("unused") }
func (f *fakeStore) SavedAnswers() store.SavedAnswers     { panic("unused") }

type fakeConversations struct {
	byID map[string]*model.Conversation
	msgs map[string][]*model.Message
	seq  int
}

func (f *fakeConversations) Create(_ context.Context, c *model.Conversation) (*model.Conversation, error) {
	out := *c
	f.seq++
	if out.ConversationID == "" {
		out.ConversationID = fmt.Sprintf("conv-%d", f.seq)
	}
	if out.Personality == "" {
		out.Personality = model.PersonalitySweet
	}
	if !out.Personality.Valid() {
		return nil, fmt.Errorf("unknown personality: %w", model.ErrValidation)
	}
	f.byID[out.ConversationID] = &out
	return &out, nil
}

func (f *fakeConversations) Get(_ context.Context, ownerID, conversationID string) (*model.Conversation, error) {
	c, ok := f.byID[conversationID]
	if !ok || c.OwnerID != ownerID {
		return nil, model.ErrNotFound
	}
	out := *c
	out.Messages = append([]*model.Message(nil), f.msgs[conversationID]...)
	return &out, nil
}

func (f *fakeConversations) List(_ context.Context, ownerID string, page, pageSize int) (*model.ConversationPage, error) {
	panic("unused")
}

func (f *fakeConversations) AppendMessage(_ context.Context, m *model.Message) (*model.Message, error) {
	c, ok := f.byID[m.ConversationID]
	if !ok || c.OwnerID != m.OwnerID {
		return nil, model.ErrNotFound
	}
	if !m.Sender.Valid() || strings.TrimSpace(m.Text) == "" {
		return nil, model.ErrValidation
	}
	out := *m
	f.seq++
	out.MessageID = fmt.Sprintf("msg-%d", f.seq)
	f.msgs[m.ConversationID] = append(f.msgs[m.ConversationID], &out)
	return &out, nil
}

func (f *fakeConversations) SetPersonality(_ context.Context, ownerID, conversationID string, p model.Personality) (*model.Conversation, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown personality: %w", model.ErrValidation)
	}
	c, ok := f.byID[conversationID]
	if !ok || c.OwnerID != ownerID {
		return nil, model.ErrNotFound
	}
	c.Personality = p
	return c, nil
}

func (f *fakeConversations) SetProvider(_ context.Context, ownerID, conversationID, provider string) (*model.Conversation, error) {
	c, ok := f.byID[conversationID]
	if !ok || c.OwnerID != ownerID {
		return nil, model.ErrNotFound
	}
	c.Provider = provider
	return c, nil
}

func (f *fakeConversations) Rename(_ context.Context, ownerID, conversationID, title string) (*model.Conversation, error) {
	panic("unused")
}
func (f *fakeConversations) Archive(_ context.Context, ownerID, conversationID string) error {
	panic("unused")
}
func (f *fakeConversations) Search(_ context.Context, ownerID, query string, limit int) ([]*model.Conversation, error) {
	panic("unused")
}

type fakeCatalog struct{}

func (fakeCatalog) IsValid(id string) bool {
	switch id {
	case "openai", "gemini", "huggingface", "cohere":
		return true
	}
	return false
}
func (fakeCatalog) Default() string { return "openai" }

type fakeResponder struct {
	fn func(message string, p model.Personality, providerID string) (llm.Result, error)
}

func (f *fakeResponder) Generate(_ context.Context, message string, p model.Personality, providerID string) (llm.Result, error) {
	return f.fn(message, p, providerID)
}

func echoResponder() *fakeResponder {
	return &fakeResponder{fn: func(message string, _ model.Personality, _ string) (llm.Result, error) {
		return llm.Result{Text: "echo: " + message, Source: llm.SourceModel}, nil
	}}
}

func newService(fs *fakeStore, r Responder) *ConversationService {
	return NewConversationService(fs, r, fakeCatalog{}, zerolog.Nop())
}

// --- Tests ---

func TestCreateConversation_Defaults(t *testing.T) {
	svc := newService(newFakeStore(), echoResponder())

	conv, err := svc.CreateConversation(context.Background(), &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if conv.Personality != model.PersonalitySweet {
		t.Errorf("personality = %q, want sweet", conv.Personality)
	}
	if conv.Provider != "openai" {
		t.Errorf("provider = %q, want openai", conv.Provider)
	}
	if conv.Title == "" {
		t.Errorf("title should default to a timestamp-derived value")
	}
}

func TestCreateConversation_UnknownProvider(t *testing.T) {
	svc := newService(newFakeStore(), echoResponder())

	_, err := svc.CreateConversation(context.Background(), &model.Conversation{OwnerID: "u1", Provider: "martian"})
	if !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
}

func TestSendMessage_AlternatingSequence(t *testing.T) {
	fs := newFakeStore()
	svc := newService(fs, echoResponder())
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}

	const n = 3
	for i := 0; i < n; i++ {
		ex, err := svc.SendMessage(ctx, "u1", conv.ConversationID, fmt.Sprintf("turn %d", i))
		if err != nil {
			t.Fatalf("SendMessage %d: %v", i, err)
		}
		if ex.UserMessage.Text != fmt.Sprintf("turn %d", i) {
			t.Fatalf("user text = %q", ex.UserMessage.Text)
		}
		if ex.BotMessage.Text == "" {
			t.Fatalf("empty bot reply on turn %d", i)
		}
	}

	got, err := svc.GetConversation(ctx, "u1", conv.ConversationID)
	if err != nil {
		t.Fatalf("GetConversation: %v", err)
	}
	if len(got.Messages) != 2*n {
		t.Fatalf("messages = %d, want %d", len(got.Messages), 2*n)
	}
	for i, m := range got.Messages {
		want := model.SenderUser
		if i%2 == 1 {
			want = model.SenderBot
		}
		if m.Sender != want {
			t.Errorf("message %d sender = %q, want %q", i, m.Sender, want)
		}
	}
}

// With no provider configured, the real dispatcher must absorb the failure
// into a template reply; the turn still persists both messages.
func TestSendMessage_UnconfiguredProvidersFallBack(t *testing.T) {
	fs := newFakeStore()
	reg := llm.NewRegistry(config.NewForTesting())
	disp := llm.NewDispatcher(reg, zerolog.Nop())
	svc := NewConversationService(fs, disp, reg, zerolog.Nop())
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}

	ex, err := svc.SendMessage(ctx, "u1", conv.ConversationID, "hi")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if ex.UserMessage.Text != "hi" {
		t.Errorf("user text = %q", ex.UserMessage.Text)
	}
	want := "Hello there! 👋 I'm so glad you're here. How can I help you today? 💖"
	if ex.BotMessage.Text != want {
		t.Errorf("bot text = %q, want sweet greeting template", ex.BotMessage.Text)
	}

	got, _ := svc.GetConversation(ctx, "u1", conv.ConversationID)
	if len(got.Messages) != 2 {
		t.Fatalf("messages = %d, want 2", len(got.Messages))
	}
}

func TestSendMessage_StructuralErrorStillReplies(t *testing.T) {
	fs := newFakeStore()
	failing := &fakeResponder{fn: func(string, model.Personality, string) (llm.Result, error) {
		return llm.Result{}, errors.New("boom")
	}}
	svc := newService(fs, failing)
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	ex, err := svc.SendMessage(ctx, "u1", conv.ConversationID, "anything")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if ex.BotMessage.Text != apologyText {
		t.Errorf("bot text = %q, want apology", ex.BotMessage.Text)
	}
}

func TestSendMessage_NotFoundForWrongOwner(t *testing.T) {
	fs := newFakeStore()
	svc := newService(fs, echoResponder())
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if _, err := svc.SendMessage(ctx, "u2", conv.ConversationID, "hi"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetConversation(ctx, "u2", conv.ConversationID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetConversation err = %v, want ErrNotFound", err)
	}
}

func TestSetPersonality_InvalidLeavesConversationUnchanged(t *testing.T) {
	fs := newFakeStore()
	svc := newService(fs, echoResponder())
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if _, err := svc.SetPersonality(ctx, "u1", conv.ConversationID, "martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	got, _ := svc.GetConversation(ctx, "u1", conv.ConversationID)
	if got.Personality != model.PersonalitySweet {
		t.Errorf("personality changed to %q after rejected update", got.Personality)
	}
}

func TestSetProvider_Validated(t *testing.T) {
	fs := newFakeStore()
	svc := newService(fs, echoResponder())
	ctx := context.Background()

	conv, err := svc.CreateConversation(ctx, &model.Conversation{OwnerID: "u1"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if _, err := svc.SetProvider(ctx, "u1", conv.ConversationID, "martian"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("err = %v, want ErrValidation", err)
	}
	if up, err := svc.SetProvider(ctx, "u1", conv.ConversationID, "cohere"); err != nil || up.Provider != "cohere" {
		t.Fatalf("SetProvider: got=%v err=%v", up, err)
	}
}
