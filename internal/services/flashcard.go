package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

type FlashcardService struct {
	store store.Store
}

func NewFlashcardService(s store.Store) *FlashcardService {
	return &FlashcardService{store: s}
}

func (s *FlashcardService) CreateDeck(ctx context.Context, d *model.FlashcardDeck) (*model.FlashcardDeck, error) {
	if err := validateDeck(d); err != nil {
		return nil, err
	}
	return s.store.FlashcardDecks().Create(ctx, d)
}

func (s *FlashcardService) GetDeck(ctx context.Context, ownerID, deckID string) (*model.FlashcardDeck, error) {
	return s.store.FlashcardDecks().Get(ctx, ownerID, deckID)
}
func (s *FlashcardService) ListDecks(ctx context.Context, ownerID string) ([]*model.FlashcardDeck, error) {
	return s.store.FlashcardDecks().List(ctx, ownerID)
}
func (s *FlashcardService) DeleteDeck(ctx context.Context, ownerID, deckID string) error {
	return s.store.FlashcardDecks().Delete(ctx, ownerID, deckID)
}

func (s *FlashcardService) UpdateDeck(ctx context.Context, d *model.FlashcardDeck) (*model.FlashcardDeck, error) {
	if err := validateDeck(d); err != nil {
		return nil, err
	}
	return s.store.FlashcardDecks().Update(ctx, d)
}

func (s *FlashcardService) AddCard(ctx context.Context, ownerID string, card *model.Flashcard) (*model.Flashcard, error) {
	return s.store.FlashcardDecks().AddCard(ctx, ownerID, card)
}
func (s *FlashcardService) RemoveCard(ctx context.Context, ownerID, deckID, cardID string) error {
	return s.store.FlashcardDecks().RemoveCard(ctx, ownerID, deckID, cardID)
}

func validateDeck(d *model.FlashcardDeck) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title is required: %w", model.ErrValidation)
	}
	if d.Category != "" {
		for _, known := range model.DeckCategories {
			if d.Category == known {
				return nil
			}
		}
		return fmt.Errorf("unknown category %q: %w", d.Category, model.ErrValidation)
	}
	return nil
}
