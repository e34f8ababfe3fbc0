package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/llm"
	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// apologyText is persisted as the bot turn when a reply cannot be generated
// at all. Provider failures do not reach this path; the dispatcher absorbs
// those into template replies.
const apologyText = "I'm sorry, I wasn't able to come up with a reply just now. Please try again."

// Responder produces one bot reply for a user message.
type Responder interface {
	Generate(ctx context.Context, message string, p model.Personality, providerID string) (llm.Result, error)
}

// ProviderCatalog answers which provider identifiers are usable.
type ProviderCatalog interface {
	IsValid(id string) bool
	Default() string
}

type ConversationService struct {
	store     store.Store
	responder Responder
	providers ProviderCatalog
	log       zerolog.Logger
}

func NewConversationService(s store.Store, r Responder, p ProviderCatalog, log zerolog.Logger) *ConversationService {
	return &ConversationService{store: s, responder: r, providers: p, log: log}
}

// CreateConversation fills defaults (title from the clock, provider from
// configuration) and validates any explicit provider choice.
func (s *ConversationService) CreateConversation(ctx context.Context, c *model.Conversation) (*model.Conversation, error) {
	if c.Provider == "" {
		c.Provider = s.providers.Default()
	} else if !s.providers.IsValid(c.Provider) {
		return nil, fmt.Errorf("unknown provider %q: %w", c.Provider, model.ErrValidation)
	}
	if c.Title == "" {
		c.Title = "Chat from " + time.Now().UTC().Format("Jan 2, 2006 15:04")
	}
	return s.store.Conversations().Create(ctx, c)
}

func (s *ConversationService) GetConversation(ctx context.Context, ownerID, conversationID string) (*model.Conversation, error) {
	return s.store.Conversations().Get(ctx, ownerID, conversationID)
}
func (s *ConversationService) ListConversations(ctx context.Context, ownerID string, page, pageSize int) (*model.ConversationPage, error) {
	return s.store.Conversations().List(ctx, ownerID, page, pageSize)
}
func (s *ConversationService) SetPersonality(ctx context.Context, ownerID, conversationID string, p model.Personality) (*model.Conversation, error) {
	return s.store.Conversations().SetPersonality(ctx, ownerID, conversationID, p)
}
func (s *ConversationService) RenameConversation(ctx context.Context, ownerID, conversationID, title string) (*model.Conversation, error) {
	return s.store.Conversations().Rename(ctx, ownerID, conversationID, title)
}
func (s *ConversationService) ArchiveConversation(ctx context.Context, ownerID, conversationID string) error {
	return s.store.Conversations().Archive(ctx, ownerID, conversationID)
}

// SetProvider validates the id against the registry before touching storage;
// the store column is free-form text.
func (s *ConversationService) SetProvider(ctx context.Context, ownerID, conversationID, provider string) (*model.Conversation, error) {
	if !s.providers.IsValid(provider) {
		return nil, fmt.Errorf("unknown provider %q: %w", provider, model.ErrValidation)
	}
	return s.store.Conversations().SetProvider(ctx, ownerID, conversationID, provider)
}

// SendMessage runs one chat turn: persist the user message, generate a reply
// under the conversation's personality and provider, persist the bot message.
// The user turn is durable before generation starts, so a crash mid-turn
// leaves a conversation that ends on a user message, never a dangling bot one.
func (s *ConversationService) SendMessage(ctx context.Context, ownerID, conversationID, text string) (*model.Exchange, error) {
	conv, err := s.store.Conversations().Get(ctx, ownerID, conversationID)
	if err != nil {
		return nil, err
	}

	userMsg, err := s.store.Conversations().AppendMessage(ctx, &model.Message{
		ConversationID: conversationID,
		OwnerID:        ownerID,
		Sender:         model.SenderUser,
		Text:           text,
	})
	if err != nil {
		return nil, err
	}

	// Once the user turn is stored the exchange must complete even if the
	// caller disconnects.
	turnCtx := context.WithoutCancel(ctx)

	res, err := s.responder.Generate(turnCtx, text, conv.Personality, conv.Provider)
	if err != nil {
		s.log.Error().Err(err).
			Str("conversationId", conversationID).
			Str("provider", conv.Provider).
			Msg("reply generation failed structurally")
		res = llm.Result{Text: apologyText, Source: llm.SourceFallback}
	}
	if res.Source == llm.SourceFallback {
		s.log.Info().Str("conversationId", conversationID).Msg("turn answered from template fallback")
	}

	botMsg, err := s.store.Conversations().AppendMessage(turnCtx, &model.Message{
		ConversationID: conversationID,
		OwnerID:        ownerID,
		Sender:         model.SenderBot,
		Text:           res.Text,
	})
	if err != nil {
		return nil, err
	}

	return &model.Exchange{UserMessage: userMsg, BotMessage: botMsg}, nil
}
