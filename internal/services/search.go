package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// searchCap bounds the number of hits returned per result type.
const searchCap = 5

type SearchService struct {
	store store.Store
}

func NewSearchService(s store.Store) *SearchService {
	return &SearchService{store: s}
}

// Search runs one query across the caller's conversations, decks and saved
// answers plus all published blogs. typeFilter narrows to a single result
// type; empty or "all" searches everything.
func (s *SearchService) Search(ctx context.Context, ownerID, query, typeFilter string) (*model.SearchResults, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, fmt.Errorf("query must be at least 2 characters: %w", model.ErrValidation)
	}

	switch typeFilter {
	case "", "all", "conversations", "blogs", "savedAnswers", "decks":
	default:
		return nil, fmt.Errorf("unknown search type %q: %w", typeFilter, model.ErrValidation)
	}
	want := func(t string) bool {
		return typeFilter == "" || typeFilter == "all" || typeFilter == t
	}

	out := &model.SearchResults{
		Conversations: []*model.Conversation{},
		Blogs:         []*model.Blog{},
		SavedAnswers:  []*model.SavedAnswer{},
		Decks:         []*model.FlashcardDeck{},
	}

	if want("conversations") {
		hits, err := s.store.Conversations().Search(ctx, ownerID, query, searchCap)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			out.Conversations = hits
		}
	}
	if want("blogs") {
		hits, err := s.store.Blogs().Search(ctx, query, searchCap)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			out.Blogs = hits
		}
	}
	if want("savedAnswers") {
		hits, err := s.store.SavedAnswers().Search(ctx, ownerID, query, searchCap)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			out.SavedAnswers = hits
		}
	}
	if want("decks") {
		hits, err := s.store.FlashcardDecks().Search(ctx, ownerID, query, searchCap)
		if err != nil {
			return nil, err
		}
		if hits != nil {
			out.Decks = hits
		}
	}
	return out, nil
}
