// Package postgres implements store.Store on PostgreSQL via the pgx stdlib
// driver.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// Open opens a PostgreSQL connection using the pgx stdlib driver and verifies
// connectivity.
func Open(dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres DSN is empty")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// New opens a connection and bootstraps the schema.
func New(dsn string) (store.Store, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return NewWithDB(db)
}

// NewWithDB wires an existing connection (used by factory and tests).
func NewWithDB(db *sql.DB) (store.Store, error) {
	if err := bootstrapSchema(db); err != nil {
		return nil, err
	}
	return &pgStore{db: db}, nil
}

type pgStore struct{ db *sql.DB }

func (s *pgStore) Conversations() store.Conversations   { return &conversations{db: s.db} }
func (s *pgStore) Blogs() store.Blogs                   { return &blogs{db: s.db} }
func (s *pgStore) FlashcardDecks() store.FlashcardDecks { return &decks{db: s.db} }
func (s *pgStore) SavedAnswers() store.SavedAnswers     { return &savedAnswers{db: s.db} }

// HealthPing implements health.HealthPinger.
func (s *pgStore) HealthPing(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func normalizePage(page, pageSize int) (limit, offset, p, ps int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize, page, pageSize
}

func pageCount(total, pageSize int) int {
	if total == 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}

func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

func rowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// --- Conversations ---

type conversations struct{ db *sql.DB }

const conversationCols = `conversation_id, owner_id, title, personality, provider, is_archived, creation_time, update_time`

func scanConversation(row interface{ Scan(...any) error }) (*model.Conversation, error) {
	var out model.Conversation
	var pers string
	err := row.Scan(&out.ConversationID, &out.OwnerID, &out.Title, &pers, &out.Provider,
		&out.IsArchived, &out.CreationTime, &out.UpdateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	out.Personality = model.Personality(pers)
	return &out, nil
}

func (c *conversations) Create(ctx context.Context, m *model.Conversation) (*model.Conversation, error) {
	out := *m
	if out.OwnerID == "" {
		return nil, fmt.Errorf("owner is required: %w", model.ErrValidation)
	}
	if out.ConversationID == "" {
		out.ConversationID = uuid.New().String()
	}
	if out.Personality == "" {
		out.Personality = model.PersonalitySweet
	}
	if !out.Personality.Valid() {
		return nil, fmt.Errorf("unknown personality %q: %w", out.Personality, model.ErrValidation)
	}
	now := time.Now().UTC()
	out.CreationTime = now
	out.UpdateTime = now
	out.Messages = nil

	_, err := c.db.ExecContext(ctx, `INSERT INTO conversations
		(conversation_id, owner_id, title, personality, provider, is_archived, creation_time, update_time)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		out.ConversationID, out.OwnerID, out.Title, string(out.Personality), out.Provider, out.IsArchived, now, now)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *conversations) Get(ctx context.Context, ownerID, conversationID string) (*model.Conversation, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT `+conversationCols+` FROM conversations WHERE owner_id = $1 AND conversation_id = $2`,
		ownerID, conversationID)
	out, err := scanConversation(row)
	if err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT message_id, conversation_id, owner_id, sender, text, creation_time
		 FROM messages WHERE conversation_id = $1 ORDER BY seq`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var m model.Message
		var sender string
		if err := rows.Scan(&m.MessageID, &m.ConversationID, &m.OwnerID, &sender, &m.Text, &m.CreationTime); err != nil {
			return nil, err
		}
		m.Sender = model.Sender(sender)
		out.Messages = append(out.Messages, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *conversations) List(ctx context.Context, ownerID string, page, pageSize int) (*model.ConversationPage, error) {
	limit, offset, p, ps := normalizePage(page, pageSize)

	var total int
	if err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE owner_id = $1 AND NOT is_archived`,
		ownerID).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := c.db.QueryContext(ctx,
		`SELECT `+conversationCols+` FROM conversations
		 WHERE owner_id = $1 AND NOT is_archived
		 ORDER BY update_time DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.ConversationPage{Conversations: []*model.Conversation{}, Page: p, Pages: pageCount(total, ps), Total: total}
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out.Conversations = append(out.Conversations, conv)
	}
	return out, rows.Err()
}

func (c *conversations) AppendMessage(ctx context.Context, m *model.Message) (*model.Message, error) {
	if !m.Sender.Valid() {
		return nil, fmt.Errorf("unknown sender %q: %w", m.Sender, model.ErrValidation)
	}
	if strings.TrimSpace(m.Text) == "" {
		return nil, fmt.Errorf("message text is required: %w", model.ErrValidation)
	}

	out := *m
	out.MessageID = uuid.New().String()
	out.CreationTime = time.Now().UTC()

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT 1 FROM conversations WHERE owner_id = $1 AND conversation_id = $2`,
		m.OwnerID, m.ConversationID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	if _, err := tx.ExecContext(ctx, `INSERT INTO messages
		(message_id, conversation_id, owner_id, sender, text, creation_time)
		VALUES ($1,$2,$3,$4,$5,$6)`,
		out.MessageID, out.ConversationID, out.OwnerID, string(out.Sender), out.Text, out.CreationTime); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`UPDATE conversations SET update_time = $1 WHERE conversation_id = $2`,
		out.CreationTime, out.ConversationID); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetPersonality is a no-op when the value is already current, so repeated
// calls with the same personality leave the conversation untouched.
func (c *conversations) SetPersonality(ctx context.Context, ownerID, conversationID string, p model.Personality) (*model.Conversation, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("unknown personality %q: %w", p, model.ErrValidation)
	}
	cur, err := c.Get(ctx, ownerID, conversationID)
	if err != nil {
		return nil, err
	}
	if cur.Personality == p {
		return cur, nil
	}
	res, err := c.db.ExecContext(ctx,
		`UPDATE conversations SET personality = $1, update_time = $2 WHERE owner_id = $3 AND conversation_id = $4`,
		string(p), time.Now().UTC(), ownerID, conversationID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return c.Get(ctx, ownerID, conversationID)
}

func (c *conversations) SetProvider(ctx context.Context, ownerID, conversationID, provider string) (*model.Conversation, error) {
	if provider == "" {
		return nil, fmt.Errorf("provider is required: %w", model.ErrValidation)
	}
	res, err := c.db.ExecContext(ctx,
		`UPDATE conversations SET provider = $1, update_time = $2 WHERE owner_id = $3 AND conversation_id = $4`,
		provider, time.Now().UTC(), ownerID, conversationID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return c.Get(ctx, ownerID, conversationID)
}

func (c *conversations) Rename(ctx context.Context, ownerID, conversationID, title string) (*model.Conversation, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", model.ErrValidation)
	}
	res, err := c.db.ExecContext(ctx,
		`UPDATE conversations SET title = $1, update_time = $2 WHERE owner_id = $3 AND conversation_id = $4`,
		title, time.Now().UTC(), ownerID, conversationID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return c.Get(ctx, ownerID, conversationID)
}

func (c *conversations) Archive(ctx context.Context, ownerID, conversationID string) error {
	res, err := c.db.ExecContext(ctx,
		`UPDATE conversations SET is_archived = TRUE WHERE owner_id = $1 AND conversation_id = $2`,
		ownerID, conversationID)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (c *conversations) Search(ctx context.Context, ownerID, query string, limit int) ([]*model.Conversation, error) {
	pattern := likePattern(query)
	rows, err := c.db.QueryContext(ctx,
		`SELECT DISTINCT c.conversation_id, c.owner_id, c.title, c.personality, c.provider,
		        c.is_archived, c.creation_time, c.update_time
		 FROM conversations c
		 LEFT JOIN messages m ON m.conversation_id = c.conversation_id
		 WHERE c.owner_id = $1 AND (LOWER(c.title) LIKE $2 OR LOWER(m.text) LIKE $2)
		 ORDER BY c.update_time DESC LIMIT $3`,
		ownerID, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Conversation
	for rows.Next() {
		conv, err := scanConversation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

// --- Blogs ---

type blogs struct{ db *sql.DB }

const blogCols = `blog_id, author_id, title, content, excerpt, category, tags, views, is_published, cover_image, creation_time, update_time`

func scanBlog(row interface{ Scan(...any) error }) (*model.Blog, error) {
	var out model.Blog
	var tags string
	err := row.Scan(&out.BlogID, &out.AuthorID, &out.Title, &out.Content, &out.Excerpt,
		&out.Category, &tags, &out.Views, &out.IsPublished, &out.CoverImage,
		&out.CreationTime, &out.UpdateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(tags), &out.Tags); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *blogs) Create(ctx context.Context, m *model.Blog) (*model.Blog, error) {
	out := *m
	if out.BlogID == "" {
		out.BlogID = uuid.New().String()
	}
	if out.Category == "" {
		out.Category = "Other"
	}
	now := time.Now().UTC()
	out.CreationTime = now
	out.UpdateTime = now
	if out.Tags == nil {
		out.Tags = []string{}
	}
	tags, err := json.Marshal(out.Tags)
	if err != nil {
		return nil, err
	}

	_, err = b.db.ExecContext(ctx,
		`INSERT INTO blogs (`+blogCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		out.BlogID, out.AuthorID, out.Title, out.Content, out.Excerpt, out.Category,
		string(tags), out.Views, out.IsPublished, out.CoverImage, now, now)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *blogs) Get(ctx context.Context, blogID string) (*model.Blog, error) {
	row := b.db.QueryRowContext(ctx, `SELECT `+blogCols+` FROM blogs WHERE blog_id = $1`, blogID)
	return scanBlog(row)
}

func (b *blogs) collect(rows *sql.Rows) ([]*model.Blog, error) {
	defer rows.Close()
	var out []*model.Blog
	for rows.Next() {
		blog, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, blog)
	}
	return out, rows.Err()
}

func (b *blogs) ListPublished(ctx context.Context, category string, page, pageSize int) (*model.BlogPage, error) {
	limit, offset, p, ps := normalizePage(page, pageSize)

	var total int
	var rows *sql.Rows
	var err error
	if category != "" {
		if err = b.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM blogs WHERE is_published AND category = $1`, category).Scan(&total); err != nil {
			return nil, err
		}
		rows, err = b.db.QueryContext(ctx,
			`SELECT `+blogCols+` FROM blogs WHERE is_published AND category = $1
			 ORDER BY creation_time DESC LIMIT $2 OFFSET $3`, category, limit, offset)
	} else {
		if err = b.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM blogs WHERE is_published`).Scan(&total); err != nil {
			return nil, err
		}
		rows, err = b.db.QueryContext(ctx,
			`SELECT `+blogCols+` FROM blogs WHERE is_published
			 ORDER BY creation_time DESC LIMIT $1 OFFSET $2`, limit, offset)
	}
	if err != nil {
		return nil, err
	}
	items, err := b.collect(rows)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Blog{}
	}
	return &model.BlogPage{Blogs: items, Page: p, Pages: pageCount(total, ps), Total: total}, nil
}

func (b *blogs) ListByAuthor(ctx context.Context, authorID string, page, pageSize int) (*model.BlogPage, error) {
	limit, offset, p, ps := normalizePage(page, pageSize)

	var total int
	if err := b.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM blogs WHERE author_id = $1`, authorID).Scan(&total); err != nil {
		return nil, err
	}
	rows, err := b.db.QueryContext(ctx,
		`SELECT `+blogCols+` FROM blogs WHERE author_id = $1
		 ORDER BY creation_time DESC LIMIT $2 OFFSET $3`, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	items, err := b.collect(rows)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.Blog{}
	}
	return &model.BlogPage{Blogs: items, Page: p, Pages: pageCount(total, ps), Total: total}, nil
}

func (b *blogs) Update(ctx context.Context, m *model.Blog) (*model.Blog, error) {
	tags, err := json.Marshal(m.Tags)
	if err != nil {
		return nil, err
	}
	res, err := b.db.ExecContext(ctx, `UPDATE blogs SET
		title = $1, content = $2, excerpt = $3, category = $4, tags = $5, is_published = $6,
		cover_image = $7, update_time = $8
		WHERE blog_id = $9 AND author_id = $10`,
		m.Title, m.Content, m.Excerpt, m.Category, string(tags), m.IsPublished, m.CoverImage,
		time.Now().UTC(), m.BlogID, m.AuthorID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return b.Get(ctx, m.BlogID)
}

func (b *blogs) Delete(ctx context.Context, authorID, blogID string) error {
	res, err := b.db.ExecContext(ctx,
		`DELETE FROM blogs WHERE blog_id = $1 AND author_id = $2`, blogID, authorID)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (b *blogs) IncrementViews(ctx context.Context, blogID string) error {
	_, err := b.db.ExecContext(ctx, `UPDATE blogs SET views = views + 1 WHERE blog_id = $1`, blogID)
	return err
}

func (b *blogs) Search(ctx context.Context, query string, limit int) ([]*model.Blog, error) {
	pattern := likePattern(query)
	rows, err := b.db.QueryContext(ctx,
		`SELECT `+blogCols+` FROM blogs
		 WHERE is_published AND (LOWER(title) LIKE $1 OR LOWER(excerpt) LIKE $1 OR LOWER(tags) LIKE $1)
		 ORDER BY creation_time DESC LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, err
	}
	return b.collect(rows)
}

// --- Flashcard decks ---

type decks struct{ db *sql.DB }

const deckCols = `deck_id, owner_id, title, description, category, is_public, creation_time, update_time`

func scanDeck(row interface{ Scan(...any) error }) (*model.FlashcardDeck, error) {
	var out model.FlashcardDeck
	err := row.Scan(&out.DeckID, &out.OwnerID, &out.Title, &out.Description, &out.Category,
		&out.IsPublic, &out.CreationTime, &out.UpdateTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (d *decks) Create(ctx context.Context, m *model.FlashcardDeck) (*model.FlashcardDeck, error) {
	out := *m
	if out.DeckID == "" {
		out.DeckID = uuid.New().String()
	}
	if out.Category == "" {
		out.Category = "Other"
	}
	now := time.Now().UTC()
	out.CreationTime = now
	out.UpdateTime = now
	out.Cards = nil

	_, err := d.db.ExecContext(ctx,
		`INSERT INTO flashcard_decks (`+deckCols+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		out.DeckID, out.OwnerID, out.Title, out.Description, out.Category, out.IsPublic, now, now)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *decks) Get(ctx context.Context, ownerID, deckID string) (*model.FlashcardDeck, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT `+deckCols+` FROM flashcard_decks WHERE owner_id = $1 AND deck_id = $2`, ownerID, deckID)
	out, err := scanDeck(row)
	if err != nil {
		return nil, err
	}

	rows, err := d.db.QueryContext(ctx,
		`SELECT card_id, deck_id, question, answer, creation_time FROM flashcards
		 WHERE deck_id = $1 ORDER BY creation_time, card_id`, deckID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var c model.Flashcard
		if err := rows.Scan(&c.CardID, &c.DeckID, &c.Question, &c.Answer, &c.CreationTime); err != nil {
			return nil, err
		}
		out.Cards = append(out.Cards, &c)
	}
	return out, rows.Err()
}

func (d *decks) List(ctx context.Context, ownerID string) ([]*model.FlashcardDeck, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+deckCols+` FROM flashcard_decks WHERE owner_id = $1 ORDER BY creation_time DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*model.FlashcardDeck{}
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, deck)
	}
	return out, rows.Err()
}

func (d *decks) Update(ctx context.Context, m *model.FlashcardDeck) (*model.FlashcardDeck, error) {
	res, err := d.db.ExecContext(ctx, `UPDATE flashcard_decks SET
		title = $1, description = $2, category = $3, is_public = $4, update_time = $5
		WHERE owner_id = $6 AND deck_id = $7`,
		m.Title, m.Description, m.Category, m.IsPublic, time.Now().UTC(), m.OwnerID, m.DeckID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return d.Get(ctx, m.OwnerID, m.DeckID)
}

func (d *decks) Delete(ctx context.Context, ownerID, deckID string) error {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM flashcard_decks WHERE owner_id = $1 AND deck_id = $2`, ownerID, deckID)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (d *decks) AddCard(ctx context.Context, ownerID string, card *model.Flashcard) (*model.Flashcard, error) {
	if strings.TrimSpace(card.Question) == "" || strings.TrimSpace(card.Answer) == "" {
		return nil, fmt.Errorf("question and answer are required: %w", model.ErrValidation)
	}

	var exists int
	err := d.db.QueryRowContext(ctx,
		`SELECT 1 FROM flashcard_decks WHERE owner_id = $1 AND deck_id = $2`,
		ownerID, card.DeckID).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}

	out := *card
	out.CardID = uuid.New().String()
	out.CreationTime = time.Now().UTC()
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO flashcards (card_id, deck_id, question, answer, creation_time) VALUES ($1,$2,$3,$4,$5)`,
		out.CardID, out.DeckID, out.Question, out.Answer, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (d *decks) RemoveCard(ctx context.Context, ownerID, deckID, cardID string) error {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM flashcards WHERE card_id = $1 AND deck_id IN
		 (SELECT deck_id FROM flashcard_decks WHERE owner_id = $2 AND deck_id = $3)`,
		cardID, ownerID, deckID)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (d *decks) Search(ctx context.Context, ownerID, query string, limit int) ([]*model.FlashcardDeck, error) {
	pattern := likePattern(query)
	rows, err := d.db.QueryContext(ctx,
		`SELECT DISTINCT d.deck_id, d.owner_id, d.title, d.description, d.category,
		        d.is_public, d.creation_time, d.update_time
		 FROM flashcard_decks d
		 LEFT JOIN flashcards f ON f.deck_id = d.deck_id
		 WHERE d.owner_id = $1 AND (LOWER(d.title) LIKE $2 OR LOWER(f.question) LIKE $2 OR LOWER(f.answer) LIKE $2)
		 ORDER BY d.creation_time DESC LIMIT $3`,
		ownerID, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.FlashcardDeck
	for rows.Next() {
		deck, err := scanDeck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, deck)
	}
	return out, rows.Err()
}

// --- Saved answers ---

type savedAnswers struct{ db *sql.DB }

const savedAnswerCols = `answer_id, owner_id, chat_message, bot_response, category, creation_time`

func scanSavedAnswer(row interface{ Scan(...any) error }) (*model.SavedAnswer, error) {
	var out model.SavedAnswer
	err := row.Scan(&out.AnswerID, &out.OwnerID, &out.ChatMessage, &out.BotResponse,
		&out.Category, &out.CreationTime)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (sa *savedAnswers) Create(ctx context.Context, m *model.SavedAnswer) (*model.SavedAnswer, error) {
	if strings.TrimSpace(m.ChatMessage) == "" || strings.TrimSpace(m.BotResponse) == "" {
		return nil, fmt.Errorf("chatMessage and botResponse are required: %w", model.ErrValidation)
	}
	out := *m
	if out.AnswerID == "" {
		out.AnswerID = uuid.New().String()
	}
	out.CreationTime = time.Now().UTC()

	_, err := sa.db.ExecContext(ctx,
		`INSERT INTO saved_answers (`+savedAnswerCols+`) VALUES ($1,$2,$3,$4,$5,$6)`,
		out.AnswerID, out.OwnerID, out.ChatMessage, out.BotResponse, out.Category, out.CreationTime)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (sa *savedAnswers) Get(ctx context.Context, ownerID, answerID string) (*model.SavedAnswer, error) {
	row := sa.db.QueryRowContext(ctx,
		`SELECT `+savedAnswerCols+` FROM saved_answers WHERE owner_id = $1 AND answer_id = $2`,
		ownerID, answerID)
	return scanSavedAnswer(row)
}

func (sa *savedAnswers) List(ctx context.Context, ownerID string, page, pageSize int) (*model.SavedAnswerPage, error) {
	limit, offset, p, ps := normalizePage(page, pageSize)

	var total int
	if err := sa.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM saved_answers WHERE owner_id = $1`, ownerID).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := sa.db.QueryContext(ctx,
		`SELECT `+savedAnswerCols+` FROM saved_answers WHERE owner_id = $1
		 ORDER BY creation_time DESC LIMIT $2 OFFSET $3`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := &model.SavedAnswerPage{Answers: []*model.SavedAnswer{}, Page: p, Pages: pageCount(total, ps), Total: total}
	for rows.Next() {
		a, err := scanSavedAnswer(rows)
		if err != nil {
			return nil, err
		}
		out.Answers = append(out.Answers, a)
	}
	return out, rows.Err()
}

func (sa *savedAnswers) UpdateCategory(ctx context.Context, ownerID, answerID, category string) (*model.SavedAnswer, error) {
	res, err := sa.db.ExecContext(ctx,
		`UPDATE saved_answers SET category = $1 WHERE owner_id = $2 AND answer_id = $3`,
		category, ownerID, answerID)
	if err != nil {
		return nil, err
	}
	if err := rowsAffected(res); err != nil {
		return nil, err
	}
	return sa.Get(ctx, ownerID, answerID)
}

func (sa *savedAnswers) Delete(ctx context.Context, ownerID, answerID string) error {
	res, err := sa.db.ExecContext(ctx,
		`DELETE FROM saved_answers WHERE owner_id = $1 AND answer_id = $2`, ownerID, answerID)
	if err != nil {
		return err
	}
	return rowsAffected(res)
}

func (sa *savedAnswers) Search(ctx context.Context, ownerID, query string, limit int) ([]*model.SavedAnswer, error) {
	pattern := likePattern(query)
	rows, err := sa.db.QueryContext(ctx,
		`SELECT `+savedAnswerCols+` FROM saved_answers
		 WHERE owner_id = $1 AND (LOWER(chat_message) LIKE $2 OR LOWER(bot_response) LIKE $2 OR LOWER(category) LIKE $2)
		 ORDER BY creation_time DESC LIMIT $3`,
		ownerID, pattern, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.SavedAnswer
	for rows.Next() {
		a, err := scanSavedAnswer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
