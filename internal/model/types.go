package model

import "time"

// Personality is the persona applied to generated replies.
type Personality string

const (
	PersonalitySweet   Personality = "sweet"
	PersonalityAngry   Personality = "angry"
	PersonalityGrandpa Personality = "grandpa"
)

// Personalities lists the closed set in a stable order.
func Personalities() []Personality {
	return []Personality{PersonalitySweet, PersonalityAngry, PersonalityGrandpa}
}

// Valid reports whether p is a member of the closed set.
func (p Personality) Valid() bool {
	switch p {
	case PersonalitySweet, PersonalityAngry, PersonalityGrandpa:
		return true
	}
	return false
}

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Valid reports whether s is a member of the closed set.
func (s Sender) Valid() bool {
	return s == SenderUser || s == SenderBot
}

// Message is one immutable turn inside a conversation.
type Message struct {
	MessageID      string    `json:"messageId"`
	ConversationID string    `json:"conversationId"`
	OwnerID        string    `json:"-"`
	Sender         Sender    `json:"sender"`
	Text           string    `json:"text"`
	CreationTime   time.Time `json:"timestamp"`
}

// Conversation is the aggregate root of the chat core. Messages is populated
// only on single-conversation reads; listings ship summaries without it.
type Conversation struct {
	ConversationID string      `json:"conversationId"`
	OwnerID        string      `json:"ownerId"`
	Title          string      `json:"title"`
	Personality    Personality `json:"personality"`
	Provider       string      `json:"provider"`
	IsArchived     bool        `json:"isArchived"`
	Messages       []*Message  `json:"messages,omitempty"`
	CreationTime   time.Time   `json:"creationTime"`
	UpdateTime     time.Time   `json:"updateTime"`
}

// ConversationPage is one page of conversation summaries.
type ConversationPage struct {
	Conversations []*Conversation `json:"conversations"`
	Page          int             `json:"page"`
	Pages         int             `json:"pages"`
	Total         int             `json:"total"`
}

// Exchange pairs the persisted user message with the bot reply for one turn.
type Exchange struct {
	UserMessage *Message `json:"userMessage"`
	BotMessage  *Message `json:"botMessage"`
}

// Blog is an author-owned post. Unpublished posts are visible to the author only.
type Blog struct {
	BlogID       string    `json:"blogId"`
	AuthorID     string    `json:"authorId"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Excerpt      string    `json:"excerpt,omitempty"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	Views        int       `json:"views"`
	IsPublished  bool      `json:"isPublished"`
	CoverImage   string    `json:"coverImage,omitempty"`
	CreationTime time.Time `json:"creationTime"`
	UpdateTime   time.Time `json:"updateTime"`
}

// BlogCategories is the closed category set for blog posts.
var BlogCategories = []string{"Technology", "AI", "Campus Life", "Study Tips", "Other"}

// BlogPage is one page of blog summaries.
type BlogPage struct {
	Blogs []*Blog `json:"blogs"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
	Total int     `json:"total"`
}

// Flashcard is one question/answer card embedded in a deck.
type Flashcard struct {
	CardID       string    `json:"cardId"`
	DeckID       string    `json:"deckId"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	CreationTime time.Time `json:"creationTime"`
}

// FlashcardDeck is an owner-scoped collection of cards.
type FlashcardDeck struct {
	DeckID       string       `json:"deckId"`
	OwnerID      string       `json:"ownerId"`
	Title        string       `json:"title"`
	Description  string       `json:"description,omitempty"`
	Category     string       `json:"category"`
	IsPublic     bool         `json:"isPublic"`
	Cards        []*Flashcard `json:"cards,omitempty"`
	CreationTime time.Time    `json:"creationTime"`
	UpdateTime   time.Time    `json:"updateTime"`
}

// DeckCategories is the closed category set for flashcard decks.
var DeckCategories = []string{"Mathematics", "Science", "Language", "History", "Technology", "Other"}

// SavedAnswer is an owner-scoped snippet pairing a chat message with the bot reply.
type SavedAnswer struct {
	AnswerID     string    `json:"answerId"`
	OwnerID      string    `json:"-"`
	ChatMessage  string    `json:"chatMessage"`
	BotResponse  string    `json:"botResponse"`
	Category     string    `json:"category,omitempty"`
	CreationTime time.Time `json:"creationTime"`
}

// SavedAnswerPage is one page of saved answers.
type SavedAnswerPage struct {
	Answers []*SavedAnswer `json:"answers"`
	Page    int            `json:"page"`
	Pages   int            `json:"pages"`
	Total   int            `json:"total"`
}

// SearchResults groups per-type hits for a global search query.
type SearchResults struct {
	Conversations []*Conversation  `json:"conversations"`
	Blogs         []*Blog          `json:"blogs"`
	SavedAnswers  []*SavedAnswer   `json:"savedAnswers"`
	Decks         []*FlashcardDeck `json:"decks"`
}
