package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

const (
	excerptMaxLen       = 200
	defaultBlogCategory = "Other"
)

type BlogService struct {
	store store.Store
}

func NewBlogService(s store.Store) *BlogService {
	return &BlogService{store: s}
}

func (s *BlogService) CreateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	if err := validateBlog(b); err != nil {
		return nil, err
	}
	if b.Excerpt == "" {
		b.Excerpt = deriveExcerpt(b.Content)
	}
	return s.store.Blogs().Create(ctx, b)
}

// GetBlog returns the blog and bumps its view counter. A failed bump is not
// worth failing the read over.
func (s *BlogService) GetBlog(ctx context.Context, blogID string) (*model.Blog, error) {
	b, err := s.store.Blogs().Get(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Blogs().IncrementViews(ctx, blogID); err == nil {
		b.Views++
	}
	return b, nil
}

func (s *BlogService) ListPublished(ctx context.Context, category string, page, pageSize int) (*model.BlogPage, error) {
	if category != "" && !validBlogCategory(category) {
		return nil, fmt.Errorf("unknown category %q: %w", category, model.ErrValidation)
	}
	return s.store.Blogs().ListPublished(ctx, category, page, pageSize)
}

func (s *BlogService) ListMine(ctx context.Context, authorID string, page, pageSize int) (*model.BlogPage, error) {
	return s.store.Blogs().ListByAuthor(ctx, authorID, page, pageSize)
}

// UpdateBlog applies a full replace of the mutable fields. Only the author
// may update; a mismatched author surfaces as not found.
func (s *BlogService) UpdateBlog(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	if err := validateBlog(b); err != nil {
		return nil, err
	}
	if b.Category == "" {
		b.Category = defaultBlogCategory
	}
	if b.Excerpt == "" {
		b.Excerpt = deriveExcerpt(b.Content)
	}
	return s.store.Blogs().Update(ctx, b)
}

func (s *BlogService) DeleteBlog(ctx context.Context, authorID, blogID string) error {
	return s.store.Blogs().Delete(ctx, authorID, blogID)
}

func validateBlog(b *model.Blog) error {
	if strings.TrimSpace(b.Title) == "" {
		return fmt.Errorf("title is required: %w", model.ErrValidation)
	}
	if strings.TrimSpace(b.Content) == "" {
		return fmt.Errorf("content is required: %w", model.ErrValidation)
	}
	if b.Category != "" && !validBlogCategory(b.Category) {
		return fmt.Errorf("unknown category %q: %w", b.Category, model.ErrValidation)
	}
	return nil
}

func validBlogCategory(c string) bool {
	for _, known := range model.BlogCategories {
		if c == known {
			return true
		}
	}
	return false
}

// deriveExcerpt cuts on a rune boundary so non-ASCII content never yields an
// invalid-UTF-8 excerpt.
func deriveExcerpt(content string) string {
	content = strings.TrimSpace(content)
	if len(content) <= excerptMaxLen {
		return content
	}
	cut := excerptMaxLen
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut] + "..."
}
