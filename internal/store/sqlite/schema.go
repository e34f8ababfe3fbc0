package sqlite

import "database/sql"

// schemaDDL bootstraps the embedded database on open. Statements are
// idempotent so repeated opens are safe.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS conversations (
		conversation_id TEXT PRIMARY KEY,
		owner_id        TEXT NOT NULL,
		title           TEXT NOT NULL,
		personality     TEXT NOT NULL,
		provider        TEXT NOT NULL,
		is_archived     BOOLEAN NOT NULL DEFAULT 0,
		creation_time   TIMESTAMP NOT NULL,
		update_time     TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_owner_updated
		ON conversations (owner_id, update_time DESC)`,
	`CREATE TABLE IF NOT EXISTS messages (
		seq             INTEGER PRIMARY KEY AUTOINCREMENT,
		message_id      TEXT NOT NULL UNIQUE,
		conversation_id TEXT NOT NULL REFERENCES conversations(conversation_id),
		owner_id        TEXT NOT NULL,
		sender          TEXT NOT NULL,
		text            TEXT NOT NULL,
		creation_time   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_messages_conversation
		ON messages (conversation_id, seq)`,
	`CREATE TABLE IF NOT EXISTS blogs (
		blog_id       TEXT PRIMARY KEY,
		author_id     TEXT NOT NULL,
		title         TEXT NOT NULL,
		content       TEXT NOT NULL,
		excerpt       TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL,
		tags          TEXT NOT NULL DEFAULT '[]',
		views         INTEGER NOT NULL DEFAULT 0,
		is_published  BOOLEAN NOT NULL DEFAULT 0,
		cover_image   TEXT NOT NULL DEFAULT '',
		creation_time TIMESTAMP NOT NULL,
		update_time   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_author ON blogs (author_id, creation_time DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_blogs_category ON blogs (category, creation_time DESC)`,
	`CREATE TABLE IF NOT EXISTS flashcard_decks (
		deck_id       TEXT PRIMARY KEY,
		owner_id      TEXT NOT NULL,
		title         TEXT NOT NULL,
		description   TEXT NOT NULL DEFAULT '',
		category      TEXT NOT NULL,
		is_public     BOOLEAN NOT NULL DEFAULT 0,
		creation_time TIMESTAMP NOT NULL,
		update_time   TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_decks_owner ON flashcard_decks (owner_id, creation_time DESC)`,
	`CREATE TABLE IF NOT EXISTS flashcards (
		card_id       TEXT PRIMARY KEY,
		deck_id       TEXT NOT NULL REFERENCES flashcard_decks(deck_id) ON DELETE CASCADE,
		question      TEXT NOT NULL,
		answer        TEXT NOT NULL,
		creation_time TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_flashcards_deck ON flashcards (deck_id, creation_time)`,
	`CREATE TABLE IF NOT EXISTS saved_answers (
		answer_id     TEXT PRIMARY KEY,
		owner_id      TEXT NOT NULL,
		chat_message  TEXT NOT NULL,
		bot_response  TEXT NOT NULL,
		category      TEXT NOT NULL DEFAULT '',
		creation_time TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_answers_owner ON saved_answers (owner_id, creation_time DESC)`,
}

func bootstrapSchema(db *sql.DB) error {
	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
