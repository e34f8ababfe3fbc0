package services

import (
	"context"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

type SavedAnswerService struct {
	store store.Store
}

func NewSavedAnswerService(s store.Store) *SavedAnswerService {
	return &SavedAnswerService{store: s}
}

func (s *SavedAnswerService) SaveAnswer(ctx context.Context, a *model.SavedAnswer) (*model.SavedAnswer, error) {
	return s.store.SavedAnswers().Create(ctx, a)
}
func (s *SavedAnswerService) GetAnswer(ctx context.Context, ownerID, answerID string) (*model.SavedAnswer, error) {
	return s.store.SavedAnswers().Get(ctx, ownerID, answerID)
}
func (s *SavedAnswerService) ListAnswers(ctx context.Context, ownerID string, page, pageSize int) (*model.SavedAnswerPage, error) {
	return s.store.SavedAnswers().List(ctx, ownerID, page, pageSize)
}
func (s *SavedAnswerService) UpdateCategory(ctx context.Context, ownerID, answerID, category string) (*model.SavedAnswer, error) {
	return s.store.SavedAnswers().UpdateCategory(ctx, ownerID, answerID, category)
}
func (s *SavedAnswerService) DeleteAnswer(ctx context.Context, ownerID, answerID string) error {
	return s.store.SavedAnswers().Delete(ctx, ownerID, answerID)
}
