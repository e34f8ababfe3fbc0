package services

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ayushi-devx/Virtual-Assistant/internal/model"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

type blogOnlyStore struct {
	blogs *recordingBlogs
}

func (f *blogOnlyStore) Conversations() store.Conversations   { panic("unused") }
func (f *blogOnlyStore) Blogs() store.Blogs                   { return f.blogs }
func (f *blogOnlyStore) FlashcardDecks() store.FlashcardDecks { panic("unused") }
func (f *blogOnlyStore) SavedAnswers() store.SavedAnswers     { panic("unused") }

// recordingBlogs captures the last write so tests can inspect what the
// service handed to the store.
type recordingBlogs struct {
	lastCreate *model.Blog
	lastUpdate *model.Blog
}

func (r *recordingBlogs) Create(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	r.lastCreate = b
	return b, nil
}

func (r *recordingBlogs) Get(ctx context.Context, blogID string) (*model.Blog, error) {
	return nil, model.ErrNotFound
}

func (r *recordingBlogs) ListPublished(ctx context.Context, category string, page, pageSize int) (*model.BlogPage, error) {
	return &model.BlogPage{Blogs: []*model.Blog{}}, nil
}

func (r *recordingBlogs) ListByAuthor(ctx context.Context, authorID string, page, pageSize int) (*model.BlogPage, error) {
	return &model.BlogPage{Blogs: []*model.Blog{}}, nil
}

func (r *recordingBlogs) Update(ctx context.Context, b *model.Blog) (*model.Blog, error) {
	r.lastUpdate = b
	return b, nil
}

func (r *recordingBlogs) Delete(ctx context.Context, authorID, blogID string) error { return nil }
func (r *recordingBlogs) IncrementViews(ctx context.Context, blogID string) error   { return nil }

func (r *recordingBlogs) Search(ctx context.Context, query string, limit int) ([]*model.Blog, error) {
	return nil, nil
}

func TestDeriveExcerpt(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"short content unchanged", "a short post", "a short post"},
		{"ascii cut at limit", strings.Repeat("x", 250), strings.Repeat("x", 200) + "..."},
		{"multibyte rune straddling limit", strings.Repeat("a", 199) + "été garanti", strings.Repeat("a", 199) + "..."},
	}
	for _, tc := range cases {
		got := deriveExcerpt(tc.content)
		if got != tc.want {
			t.Fatalf("%s: got %q, want %q", tc.name, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Fatalf("%s: excerpt is not valid UTF-8: %q", tc.name, got)
		}
	}
}

func TestUpdateBlog_EmptyCategoryDefaults(t *testing.T) {
	blogs := &recordingBlogs{}
	svc := NewBlogService(&blogOnlyStore{blogs: blogs})

	_, err := svc.UpdateBlog(context.Background(), &model.Blog{
		BlogID:   "b1",
		AuthorID: "owner_1",
		Title:    "updated title",
		Content:  "updated content",
	})
	if err != nil {
		t.Fatalf("UpdateBlog: %v", err)
	}
	if blogs.lastUpdate == nil {
		t.Fatal("store never saw the update")
	}
	if got := blogs.lastUpdate.Category; got != "Other" {
		t.Fatalf("category = %q, want %q", got, "Other")
	}
}
