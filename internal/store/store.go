package store

import (
	"context"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
)

// Store exposes persistence operations required by services.
// Implementations live under internal/store/<driver>/ (postgres, sqlite).
type Store interface {
	Conversations() Conversations
	Blogs() Blogs
	FlashcardDecks() FlashcardDecks
	SavedAnswers() SavedAnswers
}

// Conversations persists the chat aggregate. Every operation is scoped to an
// owner; a conversation held by a different owner is indistinguishable from
// an absent one (model.ErrNotFound either way).
type Conversations interface {
	Create(ctx context.Context, c *model.Conversation) (*model.Conversation, error)
	// Get returns the conversation with all messages in chronological order.
	Get(ctx context.Context, ownerID, conversationID string) (*model.Conversation, error)
	// List returns summaries without messages, most recently updated first,
	// excluding archived conversations.
	List(ctx context.Context, ownerID string, page, pageSize int) (*model.ConversationPage, error)
	// AppendMessage appends to the end of the sequence and bumps the
	// conversation's update time. The sequence is append-only.
	AppendMessage(ctx context.Context, m *model.Message) (*model.Message, error)
	SetPersonality(ctx context.Context, ownerID, conversationID string, p model.Personality) (*model.Conversation, error)
	SetProvider(ctx context.Context, ownerID, conversationID, provider string) (*model.Conversation, error)
	Rename(ctx context.Context, ownerID, conversationID, title string) (*model.Conversation, error)
	// Archive sets the soft flag; idempotent. Archived conversations stay
	// retrievable by id.
	Archive(ctx context.Context, ownerID, conversationID string) error
	// Search matches query case-insensitively against titles and message
	// text, returning summaries.
	Search(ctx context.Context, ownerID, query string, limit int) ([]*model.Conversation, error)
}

type Blogs interface {
	Create(ctx context.Context, b *model.Blog) (*model.Blog, error)
	Get(ctx context.Context, blogID string) (*model.Blog, error)
	ListPublished(ctx context.Context, category string, page, pageSize int) (*model.BlogPage, error)
	ListByAuthor(ctx context.Context, authorID string, page, pageSize int) (*model.BlogPage, error)
	Update(ctx context.Context, b *model.Blog) (*model.Blog, error)
	Delete(ctx context.Context, authorID, blogID string) error
	IncrementViews(ctx context.Context, blogID string) error
	// Search matches published posts by title, excerpt, or tags.
	Search(ctx context.Context, query string, limit int) ([]*model.Blog, error)
}

type FlashcardDecks interface {
	Create(ctx context.Context, d *model.FlashcardDeck) (*model.FlashcardDeck, error)
	// Get returns the deck with its cards in insertion order.
	Get(ctx context.Context, ownerID, deckID string) (*model.FlashcardDeck, error)
	List(ctx context.Context, ownerID string) ([]*model.FlashcardDeck, error)
	Update(ctx context.Context, d *model.FlashcardDeck) (*model.FlashcardDeck, error)
	Delete(ctx context.Context, ownerID, deckID string) error
	AddCard(ctx context.Context, ownerID string, card *model.Flashcard) (*model.Flashcard, error)
	RemoveCard(ctx context.Context, ownerID, deckID, cardID string) error
	// Search matches the caller's decks by title or card text.
	Search(ctx context.Context, ownerID, query string, limit int) ([]*model.FlashcardDeck, error)
}

type SavedAnswers interface {
	Create(ctx context.Context, a *model.SavedAnswer) (*model.SavedAnswer, error)
	Get(ctx context.Context, ownerID, answerID string) (*model.SavedAnswer, error)
	List(ctx context.Context, ownerID string, page, pageSize int) (*model.SavedAnswerPage, error)
	UpdateCategory(ctx context.Context, ownerID, answerID, category string) (*model.SavedAnswer, error)
	Delete(ctx context.Context, ownerID, answerID string) error
	Search(ctx context.Context, ownerID, query string, limit int) ([]*model.SavedAnswer, error)
}
