package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// Implementations should provide a clean, isolated store from makeStore.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	ownerID := "u-" + uuid.New().String()

	// Conversations
	conv, err := s.Conversations().Create(ctx, &model.Conversation{OwnerID: ownerID, Title: "first chat"})
	if err != nil {
		t.Fatalf("CreateConversation: %v", err)
	}
	if conv.ConversationID == "" {
		t.Fatalf("CreateConversation: empty conversation id")
	}
	if conv.Personality != model.PersonalitySweet {
		t.Fatalf("CreateConversation: default personality = %q", conv.Personality)
	}
	if _, err := s.Conversations().Create(ctx, &model.Conversation{OwnerID: ownerID, Personality: "rude"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("CreateConversation bad personality: err=%v", err)
	}

	got, err := s.Conversations().Get(ctx, ownerID, conv.ConversationID)
	if err != nil || got.Title != "first chat" {
		t.Fatalf("GetConversation: got=%v err=%v", got, err)
	}
	if _, err := s.Conversations().Get(ctx, ownerID, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetConversation missing: err=%v", err)
	}
	if _, err := s.Conversations().Get(ctx, "other-owner", conv.ConversationID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetConversation cross-owner: err=%v", err)
	}

	// Messages keep append order
	m1, err := s.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: conv.ConversationID, OwnerID: ownerID, Sender: model.SenderUser, Text: "hello there",
	})
	if err != nil {
		t.Fatalf("AppendMessage m1: %v", err)
	}
	m2, err := s.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: conv.ConversationID, OwnerID: ownerID, Sender: model.SenderBot, Text: "hi, how can I help?",
	})
	if err != nil {
		t.Fatalf("AppendMessage m2: %v", err)
	}
	got, err = s.Conversations().Get(ctx, ownerID, conv.ConversationID)
	if err != nil || len(got.Messages) != 2 {
		t.Fatalf("GetConversation messages: n=%d err=%v", len(got.Messages), err)
	}
	if got.Messages[0].MessageID != m1.MessageID || got.Messages[1].MessageID != m2.MessageID {
		t.Fatalf("message order: got %q,%q", got.Messages[0].MessageID, got.Messages[1].MessageID)
	}
	if _, err := s.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: "missing", OwnerID: ownerID, Sender: model.SenderUser, Text: "x",
	}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("AppendMessage missing conversation: err=%v", err)
	}
	if _, err := s.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: conv.ConversationID, OwnerID: ownerID, Sender: "system", Text: "x",
	}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("AppendMessage bad sender: err=%v", err)
	}
	if _, err := s.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: conv.ConversationID, OwnerID: ownerID, Sender: model.SenderUser, Text: "  ",
	}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("AppendMessage blank text: err=%v", err)
	}

	// Updates
	if up, err := s.Conversations().SetPersonality(ctx, ownerID, conv.ConversationID, model.PersonalityGrandpa); err != nil || up.Personality != model.PersonalityGrandpa {
		t.Fatalf("SetPersonality: got=%v err=%v", up, err)
	}
	if _, err := s.Conversations().SetPersonality(ctx, ownerID, conv.ConversationID, "rude"); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("SetPersonality invalid: err=%v", err)
	}
	once, err := s.Conversations().SetPersonality(ctx, ownerID, conv.ConversationID, model.PersonalityGrandpa)
	if err != nil {
		t.Fatalf("SetPersonality repeat: %v", err)
	}
	twice, err := s.Conversations().SetPersonality(ctx, ownerID, conv.ConversationID, model.PersonalityGrandpa)
	if err != nil || !twice.UpdateTime.Equal(once.UpdateTime) {
		t.Fatalf("SetPersonality not idempotent: %v vs %v err=%v", twice.UpdateTime, once.UpdateTime, err)
	}
	if up, err := s.Conversations().SetProvider(ctx, ownerID, conv.ConversationID, "gemini"); err != nil || up.Provider != "gemini" {
		t.Fatalf("SetProvider: got=%v err=%v", up, err)
	}
	if up, err := s.Conversations().Rename(ctx, ownerID, conv.ConversationID, "renamed"); err != nil || up.Title != "renamed" {
		t.Fatalf("Rename: got=%v err=%v", up, err)
	}
	if _, err := s.Conversations().Rename(ctx, ownerID, "missing", "x"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Rename missing: err=%v", err)
	}

	// List excludes archived, newest-updated first
	other, err := s.Conversations().Create(ctx, &model.Conversation{OwnerID: ownerID, Title: "second chat"})
	if err != nil {
		t.Fatalf("CreateConversation second: %v", err)
	}
	page, err := s.Conversations().List(ctx, ownerID, 1, 10)
	if err != nil || page.Total != 2 || len(page.Conversations) != 2 {
		t.Fatalf("ListConversations: total=%d n=%d err=%v", page.Total, len(page.Conversations), err)
	}
	if page.Conversations[0].Messages != nil {
		t.Fatalf("ListConversations: summaries should not carry messages")
	}
	if err := s.Conversations().Archive(ctx, ownerID, other.ConversationID); err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if err := s.Conversations().Archive(ctx, ownerID, other.ConversationID); err != nil {
		t.Fatalf("Archive twice: %v", err)
	}
	if got, err := s.Conversations().Get(ctx, ownerID, other.ConversationID); err != nil || !got.IsArchived {
		t.Fatalf("Get archived: archived=%v err=%v", got != nil && got.IsArchived, err)
	}
	page, err = s.Conversations().List(ctx, ownerID, 1, 10)
	if err != nil || page.Total != 1 {
		t.Fatalf("ListConversations after archive: total=%d err=%v", page.Total, err)
	}
	if err := s.Conversations().Archive(ctx, ownerID, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("Archive missing: err=%v", err)
	}

	// Conversation search matches titles and message bodies, case-insensitively
	hits, err := s.Conversations().Search(ctx, ownerID, "HELLO", 5)
	if err != nil || len(hits) != 1 || hits[0].ConversationID != conv.ConversationID {
		t.Fatalf("SearchConversations by message: n=%d err=%v", len(hits), err)
	}
	hits, err = s.Conversations().Search(ctx, ownerID, "renamed", 5)
	if err != nil || len(hits) != 1 {
		t.Fatalf("SearchConversations by title: n=%d err=%v", len(hits), err)
	}

	runBlogs(t, s, ownerID)
	runDecks(t, s, ownerID)
	runSavedAnswers(t, s, ownerID)
}

func runBlogs(t *testing.T, s store.Store, ownerID string) {
	t.Helper()
	ctx := context.Background()

	b, err := s.Blogs().Create(ctx, &model.Blog{
		AuthorID: ownerID, Title: "Learning Go", Content: "body", Excerpt: "short",
		Tags: []string{"go", "notes"}, IsPublished: true,
	})
	if err != nil {
		t.Fatalf("CreateBlog: %v", err)
	}
	if b.Category != "Other" {
		t.Fatalf("CreateBlog: default category = %q", b.Category)
	}
	draft, err := s.Blogs().Create(ctx, &model.Blog{AuthorID: ownerID, Title: "Draft", Content: "wip", Category: "Technology"})
	if err != nil {
		t.Fatalf("CreateBlog draft: %v", err)
	}

	got, err := s.Blogs().Get(ctx, b.BlogID)
	if err != nil || got.Title != "Learning Go" || len(got.Tags) != 2 {
		t.Fatalf("GetBlog: got=%v err=%v", got, err)
	}

	pub, err := s.Blogs().ListPublished(ctx, "", 1, 10)
	if err != nil || pub.Total != 1 {
		t.Fatalf("ListPublished: total=%d err=%v", pub.Total, err)
	}
	pub, err = s.Blogs().ListPublished(ctx, "Technology", 1, 10)
	if err != nil || pub.Total != 0 {
		t.Fatalf("ListPublished by category: total=%d err=%v", pub.Total, err)
	}
	mine, err := s.Blogs().ListByAuthor(ctx, ownerID, 1, 10)
	if err != nil || mine.Total != 2 {
		t.Fatalf("ListByAuthor: total=%d err=%v", mine.Total, err)
	}

	if err := s.Blogs().IncrementViews(ctx, b.BlogID); err != nil {
		t.Fatalf("IncrementViews: %v", err)
	}
	got, _ = s.Blogs().Get(ctx, b.BlogID)
	if got.Views != 1 {
		t.Fatalf("IncrementViews: views=%d", got.Views)
	}

	draft.Title = "Published now"
	draft.IsPublished = true
	if up, err := s.Blogs().Update(ctx, draft); err != nil || up.Title != "Published now" || !up.IsPublished {
		t.Fatalf("UpdateBlog: got=%v err=%v", up, err)
	}

	hits, err := s.Blogs().Search(ctx, "learning", 5)
	if err != nil || len(hits) != 1 {
		t.Fatalf("SearchBlogs: n=%d err=%v", len(hits), err)
	}

	if err := s.Blogs().Delete(ctx, "other-owner", b.BlogID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteBlog cross-owner: err=%v", err)
	}
	if err := s.Blogs().Delete(ctx, ownerID, b.BlogID); err != nil {
		t.Fatalf("DeleteBlog: %v", err)
	}
	if _, err := s.Blogs().Get(ctx, b.BlogID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetBlog after delete: err=%v", err)
	}
}

func runDecks(t *testing.T, s store.Store, ownerID string) {
	t.Helper()
	ctx := context.Background()

	d, err := s.FlashcardDecks().Create(ctx, &model.FlashcardDeck{OwnerID: ownerID, Title: "Spanish vocab", Category: "Language"})
	if err != nil {
		t.Fatalf("CreateDeck: %v", err)
	}

	c1, err := s.FlashcardDecks().AddCard(ctx, ownerID, &model.Flashcard{DeckID: d.DeckID, Question: "hola", Answer: "hello"})
	if err != nil {
		t.Fatalf("AddCard: %v", err)
	}
	if _, err := s.FlashcardDecks().AddCard(ctx, ownerID, &model.Flashcard{DeckID: d.DeckID, Question: "adios", Answer: "goodbye"}); err != nil {
		t.Fatalf("AddCard second: %v", err)
	}
	if _, err := s.FlashcardDecks().AddCard(ctx, ownerID, &model.Flashcard{DeckID: "missing", Question: "q", Answer: "a"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("AddCard missing deck: err=%v", err)
	}
	if _, err := s.FlashcardDecks().AddCard(ctx, ownerID, &model.Flashcard{DeckID: d.DeckID, Question: " ", Answer: "a"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("AddCard blank question: err=%v", err)
	}

	got, err := s.FlashcardDecks().Get(ctx, ownerID, d.DeckID)
	if err != nil || len(got.Cards) != 2 {
		t.Fatalf("GetDeck: cards=%d err=%v", len(got.Cards), err)
	}
	if got.Cards[0].CardID != c1.CardID {
		t.Fatalf("GetDeck: card order")
	}

	lst, err := s.FlashcardDecks().List(ctx, ownerID)
	if err != nil || len(lst) != 1 {
		t.Fatalf("ListDecks: n=%d err=%v", len(lst), err)
	}

	d.Description = "travel prep"
	if up, err := s.FlashcardDecks().Update(ctx, d); err != nil || up.Description != "travel prep" {
		t.Fatalf("UpdateDeck: got=%v err=%v", up, err)
	}

	hits, err := s.FlashcardDecks().Search(ctx, ownerID, "adios", 5)
	if err != nil || len(hits) != 1 {
		t.Fatalf("SearchDecks by card: n=%d err=%v", len(hits), err)
	}

	if err := s.FlashcardDecks().RemoveCard(ctx, ownerID, d.DeckID, c1.CardID); err != nil {
		t.Fatalf("RemoveCard: %v", err)
	}
	if err := s.FlashcardDecks().RemoveCard(ctx, ownerID, d.DeckID, c1.CardID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("RemoveCard twice: err=%v", err)
	}

	if err := s.FlashcardDecks().Delete(ctx, ownerID, d.DeckID); err != nil {
		t.Fatalf("DeleteDeck: %v", err)
	}
	if _, err := s.FlashcardDecks().Get(ctx, ownerID, d.DeckID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetDeck after delete: err=%v", err)
	}
}

func runSavedAnswers(t *testing.T, s store.Store, ownerID string) {
	t.Helper()
	ctx := context.Background()

	a, err := s.SavedAnswers().Create(ctx, &model.SavedAnswer{
		OwnerID: ownerID, ChatMessage: "what is a goroutine?", BotResponse: "a lightweight thread", Category: "programming",
	})
	if err != nil {
		t.Fatalf("CreateSavedAnswer: %v", err)
	}
	if _, err := s.SavedAnswers().Create(ctx, &model.SavedAnswer{OwnerID: ownerID, ChatMessage: "", BotResponse: "x"}); !errors.Is(err, model.ErrValidation) {
		t.Fatalf("CreateSavedAnswer blank: err=%v", err)
	}

	got, err := s.SavedAnswers().Get(ctx, ownerID, a.AnswerID)
	if err != nil || got.BotResponse != "a lightweight thread" {
		t.Fatalf("GetSavedAnswer: got=%v err=%v", got, err)
	}

	page, err := s.SavedAnswers().List(ctx, ownerID, 1, 10)
	if err != nil || page.Total != 1 {
		t.Fatalf("ListSavedAnswers: total=%d err=%v", page.Total, err)
	}

	if up, err := s.SavedAnswers().UpdateCategory(ctx, ownerID, a.AnswerID, "go"); err != nil || up.Category != "go" {
		t.Fatalf("UpdateCategory: got=%v err=%v", up, err)
	}

	hits, err := s.SavedAnswers().Search(ctx, ownerID, "goroutine", 5)
	if err != nil || len(hits) != 1 {
		t.Fatalf("SearchSavedAnswers: n=%d err=%v", len(hits), err)
	}

	if err := s.SavedAnswers().Delete(ctx, ownerID, a.AnswerID); err != nil {
		t.Fatalf("DeleteSavedAnswer: %v", err)
	}
	if err := s.SavedAnswers().Delete(ctx, ownerID, a.AnswerID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteSavedAnswer twice: err=%v", err)
	}
}
