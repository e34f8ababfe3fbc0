package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/ayushi-devx/Virtual-Assistant/internal/api/recovery"
	"github.com/ayushi-devx/Virtual-Assistant/internal/llm"
	"github.com/ayushi-devx/Virtual-Assistant/internal/services"
	"github.com/ayushi-devx/Virtual-Assistant/internal/store"
)

// Deps carries everything the router needs, wired by run.go.
type Deps struct {
	Store     store.Store
	Registry  *llm.Registry
	ConvSvc   *services.ConversationService
	IsHealthy func() bool
	Log       zerolog.Logger
}

// NewRouter builds the full /api/v1 route table. All routes except health
// require the X-User-ID header.
func NewRouter(d Deps) *mux.Router {
	router := mux.NewRouter()
	router.Use(recovery.Middleware(d.Log))

	convH := NewConversationHandler(d.ConvSvc)
	provH := NewProviderHandler(d.Registry)
	blogH := NewBlogHandler(services.NewBlogService(d.Store))
	deckH := NewFlashcardHandler(services.NewFlashcardService(d.Store))
	saveH := NewSavedAnswerHandler(services.NewSavedAnswerService(d.Store))
	searchH := NewSearchHandler(services.NewSearchService(d.Store))
	healthH := NewHealthHandler(d.IsHealthy)

	router.HandleFunc("/api/v1/health", healthH.CheckHealth).Methods(http.MethodGet)

	v1 := router.PathPrefix("/api/v1").Subrouter()
	v1.Use(RequireOwner)

	// Conversations
	v1.HandleFunc("/conversations", convH.CreateConversation).Methods(http.MethodPost)
	v1.HandleFunc("/conversations", convH.ListConversations).Methods(http.MethodGet)
	v1.HandleFunc("/conversations/{conversationId}", convH.GetConversation).Methods(http.MethodGet)
	v1.HandleFunc("/conversations/{conversationId}/messages", convH.SendMessage).Methods(http.MethodPost)
	v1.HandleFunc("/conversations/{conversationId}/personality", convH.SetPersonality).Methods(http.MethodPut)
	v1.HandleFunc("/conversations/{conversationId}/provider", convH.SetProvider).Methods(http.MethodPut)
	v1.HandleFunc("/conversations/{conversationId}/title", convH.RenameConversation).Methods(http.MethodPut)
	v1.HandleFunc("/conversations/{conversationId}/archive", convH.ArchiveConversation).Methods(http.MethodPost)

	// Providers
	v1.HandleFunc("/providers", provH.ListProviders).Methods(http.MethodGet)

	// Blogs
	v1.HandleFunc("/blogs", blogH.CreateBlog).Methods(http.MethodPost)
	v1.HandleFunc("/blogs", blogH.ListBlogs).Methods(http.MethodGet)
	v1.HandleFunc("/blogs/mine", blogH.ListMyBlogs).Methods(http.MethodGet)
	v1.HandleFunc("/blogs/{blogId}", blogH.GetBlog).Methods(http.MethodGet)
	v1.HandleFunc("/blogs/{blogId}", blogH.UpdateBlog).Methods(http.MethodPut)
	v1.HandleFunc("/blogs/{blogId}", blogH.DeleteBlog).Methods(http.MethodDelete)

	// Flashcard decks
	v1.HandleFunc("/decks", deckH.CreateDeck).Methods(http.MethodPost)
	v1.HandleFunc("/decks", deckH.ListDecks).Methods(http.MethodGet)
	v1.HandleFunc("/decks/{deckId}", deckH.GetDeck).Methods(http.MethodGet)
	v1.HandleFunc("/decks/{deckId}", deckH.UpdateDeck).Methods(http.MethodPut)
	v1.HandleFunc("/decks/{deckId}", deckH.DeleteDeck).Methods(http.MethodDelete)
	v1.HandleFunc("/decks/{deckId}/cards", deckH.AddCard).Methods(http.MethodPost)
	v1.HandleFunc("/decks/{deckId}/cards/{cardId}", deckH.RemoveCard).Methods(http.MethodDelete)

	// Saved answers
	v1.HandleFunc("/saved-answers", saveH.SaveAnswer).Methods(http.MethodPost)
	v1.HandleFunc("/saved-answers", saveH.ListAnswers).Methods(http.MethodGet)
	v1.HandleFunc("/saved-answers/{answerId}", saveH.GetAnswer).Methods(http.MethodGet)
	v1.HandleFunc("/saved-answers/{answerId}", saveH.UpdateCategory).Methods(http.MethodPut)
	v1.HandleFunc("/saved-answers/{answerId}", saveH.DeleteAnswer).Methods(http.MethodDelete)

	// Global search
	v1.HandleFunc("/search", searchH.Search).Methods(http.MethodGet)

	return router
}
